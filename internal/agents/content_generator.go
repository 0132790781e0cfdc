package agents

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shubh-37/calmmind/internal/llm"
	"github.com/shubh-37/calmmind/internal/models"
)

const (
	DefaultQuoteCount = 2

	quotesMaxTokens   = 100
	quotesTemperature = 0.9
	storyMaxTokens    = 300
	storyTemperature  = 0.7

	youtubeSearchURL = "https://www.youtube.com/results?search_query="
)

type ContentGeneratorAgent struct {
	client     llm.Client
	quoteCount int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewContentGeneratorAgent uses rng for subsampling and fallback picks; a nil
// rng is seeded from the clock.
func NewContentGeneratorAgent(client llm.Client, quoteCount int, rng *rand.Rand) *ContentGeneratorAgent {
	if quoteCount <= 0 {
		quoteCount = DefaultQuoteCount
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &ContentGeneratorAgent{
		client:     client,
		quoteCount: quoteCount,
		rng:        rng,
	}
}

// NewSeededRand returns a deterministic source for tests and reproducible runs.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var quoteInstructions = map[models.StressLevel]string{
	models.StressLow:    "Give me %d short and light motivational quotes for someone feeling slightly stressed.",
	models.StressMedium: "Give %d strong motivational quotes for someone feeling overwhelmed with work or responsibilities.",
	models.StressHigh:   "Give %d powerful quotes for someone going through serious emotional stress or burnout.",
}

// GenerateQuotes asks for fresh quotes on every call. When generation fails or
// yields nothing usable the level's local quotes are returned instead.
func (a *ContentGeneratorAgent) GenerateQuotes(ctx context.Context, level models.StressLevel) []string {
	instruction, ok := quoteInstructions[level]
	if !ok {
		instruction = quoteInstructions[models.StressMedium]
	}
	prompt := fmt.Sprintf(instruction, a.quoteCount) + "\nPut each quote on its own line."

	responseText, err := a.client.Generate(ctx, prompt, quotesMaxTokens, quotesTemperature)
	if err != nil {
		log.Printf("⚠️ Quote generation failed, using fallback quotes: %v", err)
		return a.fallbackQuotes(level)
	}

	quotes := parseQuotes(responseText)
	if len(quotes) == 0 {
		log.Printf("⚠️ Quote generation returned no usable lines, using fallback quotes")
		return a.fallbackQuotes(level)
	}

	return a.subsample(quotes, a.quoteCount)
}

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•–]+|\d+[.)])\s*`)

func parseQuotes(response string) []string {
	var quotes []string

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if line != "" {
			quotes = append(quotes, line)
		}
	}

	return quotes
}

// subsample keeps n items chosen at random, in their original order.
func (a *ContentGeneratorAgent) subsample(items []string, n int) []string {
	if len(items) <= n {
		return items
	}

	a.mu.Lock()
	picked := a.rng.Perm(len(items))[:n]
	a.mu.Unlock()
	slices.Sort(picked)

	out := make([]string, 0, n)
	for _, i := range picked {
		out = append(out, items[i])
	}
	return out
}

func (a *ContentGeneratorAgent) fallbackQuotes(level models.StressLevel) []string {
	quotes, ok := fallbackQuotes[level]
	if !ok {
		quotes = fallbackQuotes[models.StressMedium]
	}
	return a.subsample(slices.Clone(quotes), a.quoteCount)
}

// GenerateSuccessStory never returns an empty string: failures fall back to
// one of the built-in resilience stories.
func (a *ContentGeneratorAgent) GenerateSuccessStory(ctx context.Context, text, tradition string) string {
	prompt := buildStoryPrompt(text, tradition)

	story, err := a.client.Generate(ctx, prompt, storyMaxTokens, storyTemperature)
	if err != nil {
		log.Printf("⚠️ Story generation failed, using fallback story: %v", err)
		return a.fallbackStory()
	}

	story = strings.TrimSpace(story)
	if story == "" {
		return a.fallbackStory()
	}
	return story
}

func buildStoryPrompt(text, tradition string) string {
	prompt := fmt.Sprintf(`The following person is going through stress: "%s"

Write a calming, realistic, and emotionally comforting success story of someone who went through a similar struggle.
Make it about 150-200 words, and describe how they felt, what small steps they took, and how they slowly healed.
`, text)

	if tradition != "" {
		prompt += fmt.Sprintf("Gently weave in one teaching from %s that helped them along the way, without preaching.\n", tradition)
	}

	prompt += "End the story with an uplifting thought that brings peace and hope."
	return prompt
}

func (a *ContentGeneratorAgent) fallbackStory() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fallbackStories[a.rng.IntN(len(fallbackStories))]
}

// Activities is a fixed lookup with no generation call.
func (a *ContentGeneratorAgent) Activities(level models.StressLevel) []models.Activity {
	activities, ok := activityTable[level]
	if !ok {
		activities = activityTable[models.StressMedium]
	}
	return slices.Clone(activities)
}

var videoQueries = map[models.StressLevel]string{
	models.StressLow:    "relaxing music for stress relief",
	models.StressMedium: "guided meditation for work stress",
	models.StressHigh:   "motivational speech for depression",
}

// VideoLinks builds search links only; nothing is fetched.
func (a *ContentGeneratorAgent) VideoLinks(level models.StressLevel, tradition string) []models.VideoLink {
	query, ok := videoQueries[level]
	if !ok {
		query = videoQueries[models.StressMedium]
	}
	storyQuery := fmt.Sprintf("real success stories overcoming %s stress", level)

	if tradition != "" {
		query += " " + tradition
		storyQuery += " " + tradition
	}

	return []models.VideoLink{
		{Title: "Feel Better", Query: query, URL: SearchLink(query)},
		{Title: "Real Stories", Query: storyQuery, URL: SearchLink(storyQuery)},
	}
}

// SearchLink builds a YouTube search URL with a fully encoded query.
func SearchLink(query string) string {
	return youtubeSearchURL + url.QueryEscape(query)
}

var affirmations = []string{
	"You are doing the best you can. And that's enough.",
	"Every breath you take is a step toward peace.",
	"You are stronger than you think.",
	"One small step at a time.",
	"Progress, not perfection.",
}

// DailyAffirmation is the same for the whole calendar day.
func DailyAffirmation(t time.Time) string {
	return affirmations[t.Day()%len(affirmations)]
}
