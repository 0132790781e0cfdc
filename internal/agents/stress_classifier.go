package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/shubh-37/calmmind/internal/llm"
	"github.com/shubh-37/calmmind/internal/models"
)

const (
	classifyMaxTokens   = 1
	classifyTemperature = 0
)

// StressClassifierAgent maps a free-text description to low, medium or high.
type StressClassifierAgent struct {
	client llm.Client
}

func NewStressClassifierAgent(client llm.Client) *StressClassifierAgent {
	return &StressClassifierAgent{client: client}
}

// ClassifyStress always returns a level in the taxonomy. Anything the model
// says outside of it, including a failed call, is read as medium.
func (a *StressClassifierAgent) ClassifyStress(ctx context.Context, text string) models.StressLevel {
	prompt := buildClassifyPrompt(normalizeInput(text))

	output, err := a.client.Generate(ctx, prompt, classifyMaxTokens, classifyTemperature)
	if err != nil {
		log.Printf("⚠️ Stress classification failed, defaulting to %s: %v", models.StressMedium, err)
		return models.StressMedium
	}

	return parseStressLevel(output)
}

func buildClassifyPrompt(text string) string {
	return fmt.Sprintf(`Classify the following statement into one of these categories: low, medium, or high stress. Answer with the category word only.

Text: "I'm a little anxious but mostly okay"
Stress Level: low

Text: "Deadlines are crushing and I feel overwhelmed"
Stress Level: medium

Text: "I feel lost, alone and mentally drained"
Stress Level: high

Text: "%s"
Stress Level:`, text)
}

// parseStressLevel reads the first line of the reply; backends with a larger
// token floor may continue past the label.
func parseStressLevel(output string) models.StressLevel {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	if level, ok := models.ParseStressLevel(firstLine); ok {
		return level
	}
	log.Printf("Classifier returned %q, defaulting to %s", output, models.StressMedium)
	return models.StressMedium
}

// normalizeInput puts text in NFC so visually identical input builds the same prompt.
func normalizeInput(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// WithEmotionTags appends self-reported emotion keywords to the description.
func WithEmotionTags(text string, emotions []string) string {
	var tags []string
	for _, e := range emotions {
		if e = strings.TrimSpace(e); e != "" {
			tags = append(tags, e)
		}
	}
	if len(tags) == 0 {
		return text
	}
	return fmt.Sprintf("%s (Emotions: %s)", text, strings.Join(tags, ", "))
}
