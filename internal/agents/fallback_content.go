package agents

import "github.com/shubh-37/calmmind/internal/models"

var activityTable = map[models.StressLevel][]models.Activity{
	models.StressLow: {
		{Suggestion: "🌳 Take a short walk", Rationale: "A few minutes of movement and fresh air lowers tension before it builds up."},
		{Suggestion: "🎧 Listen to calm music", Rationale: "Slow music helps your breathing and heart rate settle."},
	},
	models.StressMedium: {
		{Suggestion: "🧘 Try a 5-minute meditation", Rationale: "A short pause breaks the loop of racing thoughts and restores focus."},
		{Suggestion: "📋 Prioritize your tasks", Rationale: "Writing down what matters most turns a vague pile into a few next steps."},
	},
	models.StressHigh: {
		{Suggestion: "📞 Talk to a friend or therapist", Rationale: "Sharing the weight with someone you trust makes it lighter, and you don't have to carry it alone."},
		{Suggestion: "✍️ Journal or reflect deeply", Rationale: "Putting feelings into words gives them shape and makes them easier to work through."},
	},
}

var fallbackQuotes = map[models.StressLevel][]string{
	models.StressLow: {
		"\"Almost everything will work again if you unplug it for a few minutes, including you.\" - Anne Lamott",
		"\"Breathe. Let go. And remind yourself that this very moment is the only one you know you have for sure.\" - Oprah Winfrey",
		"\"Slow down and everything you are chasing will come around and catch you.\" - John De Paola",
	},
	models.StressMedium: {
		"\"It's not the load that breaks you down, it's the way you carry it.\" - Lou Holtz",
		"\"You don't have to see the whole staircase, just take the first step.\" - Martin Luther King Jr.",
		"\"Do what you can, with what you have, where you are.\" - Theodore Roosevelt",
	},
	models.StressHigh: {
		"\"You have been assigned this mountain to show others it can be moved.\" - Mel Robbins",
		"\"Even the darkest night will end and the sun will rise.\" - Victor Hugo",
		"\"There is hope, even when your brain tells you there isn't.\" - John Green",
	},
}

var fallbackStories = []string{
	"🌱 J.K. Rowling was a single mother living on welfare, grieving her mother and battling depression, when she began writing in cafés while her daughter slept. Twelve publishers rejected her manuscript. She kept going one page at a time, and that story became Harry Potter. She later said rock bottom became the solid foundation on which she rebuilt her life. Your hardest chapter can be where something new begins.",
	"🌄 Abraham Lincoln lived through deep bouts of melancholy, lost his mother young, failed in business and lost several elections. He wrote openly about his sadness and leaned on friends and humor to get through the dark stretches. He kept showing up, and went on to lead his country through its hardest years. Struggle is not the end of the story.",
	"💡 Thomas Edison's lab burned down in 1914, destroying years of work. Watching the fire, he told his son to bring his mother because she would never see anything like it again. The next morning he said there is great value in disaster, since all our mistakes are burned up. Within weeks he was building again. A setback can clear space for a fresh start.",
	"🎶 Ludwig van Beethoven began losing his hearing in his late twenties and wrote to his brothers that despair had brought him close to giving up. Instead he chose to continue, one composition at a time, and wrote some of his greatest music, including the Ninth Symphony, when he could no longer hear it. Feeling broken and doing meaningful work can exist side by side.",
}
