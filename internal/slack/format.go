package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shubh-37/calmmind/internal/models"
	"github.com/shubh-37/calmmind/internal/trend"
)

func formatSupport(result *models.SupportResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌞 *Daily Affirmation:* _%s_\n\n", result.Affirmation)
	fmt.Fprintf(&b, "🧠 *Stress Level: %s*\n\n", strings.ToUpper(string(result.StressLevel)))

	b.WriteString(formatQuotes(result.Quotes))
	b.WriteString("\n")

	b.WriteString("*💡 Tips to Try*\n")
	for _, a := range result.Activities {
		fmt.Fprintf(&b, "• %s: %s\n", a.Suggestion, a.Rationale)
	}
	b.WriteString("\n")

	b.WriteString("*🎥 Watch Helpful Videos*\n")
	for _, v := range result.Videos {
		fmt.Fprintf(&b, "• *%s* → <%s|Search YouTube>\n", v.Title, v.URL)
	}
	b.WriteString("\n")

	b.WriteString(formatStory(result.Story))

	if result.LogError != "" {
		b.WriteString("\n\n⚠️ _This check-in couldn't be saved to your log._")
	}
	b.WriteString("\n\n_React with 🔁 for new quotes or 📖 for a new story._")

	return b.String()
}

func formatQuotes(quotes []string) string {
	var b strings.Builder
	b.WriteString("*💬 Personalized Quotes*\n")
	for _, q := range quotes {
		fmt.Fprintf(&b, "> %s\n", q)
	}
	return b.String()
}

func formatStory(story string) string {
	return "*🌟 Inspired Success Story*\n" + story
}

func formatJournal(records []*models.InteractionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📓 *Your Journal Entries* (%d)\n\n", len(records))

	for _, r := range records {
		preview := truncateRunes(r.Text, 100)
		fmt.Fprintf(&b, "*%s* · %s · %s\n%s\n", r.Date, r.Mood, r.StressLevel, preview)
		if r.Journal != "" {
			fmt.Fprintf(&b, "_%s_\n", r.Journal)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// truncateRunes cuts s to at most n runes, marking the cut with "...".
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func formatTrend(points []trend.Point) string {
	return "📊 *Your Stress Log Overview*\n```\n" + trend.RenderChart(points, 15) + "\n```\n_1 = low, 2 = medium, 3 = high_"
}

func formatStats(s trend.Summary) string {
	var b strings.Builder
	b.WriteString("*Check-in Statistics*\n\n")
	fmt.Fprintf(&b, "Total check-ins: *%d*\n", s.Total)
	if s.FirstDate != "" {
		fmt.Fprintf(&b, "From %s to %s\n", s.FirstDate, s.LastDate)
	}
	fmt.Fprintf(&b, "Average stress: *%.2f*\n\n", s.MeanScore)

	b.WriteString("*By Level:*\n")
	for _, level := range models.StressLevels {
		fmt.Fprintf(&b, "• %s: %d\n", level, s.ByLevel[level])
	}
	b.WriteString("\n*By Mood:*\n")
	for _, mood := range models.Moods {
		fmt.Fprintf(&b, "• %s: %d\n", mood, s.ByMood[mood])
	}

	return strings.TrimRight(b.String(), "\n")
}

const helpText = `*CalmMind* 🧘

Tell me how you're feeling and I'll check your stress level, share a few quotes, tips, videos and a story.

*Check in* by sending a message:
` + "```" + `Deadlines keep piling up and I can't sleep
mood: stressed
emotions: anxious, tired
journal: wrote down my top three tasks
tradition: Stoicism` + "```" + `
Only the description is required. Moods: calm, meh, stressed, overwhelmed.

*Commands* (mention me):
- trend - Stress level over time
- journal [n] - Most recent entries
- stats - Totals by level and mood
- refresh quotes - New quotes for your last check-in
- refresh story - New story for your last check-in
- help - Show this help`
