package slack

import (
	"fmt"
	"strings"

	"github.com/shubh-37/calmmind/internal/models"
)

// ParseSubmission reads a check-in message. Lines starting with "mood:",
// "emotions:", "journal:" or "tradition:" fill those fields; every other line
// is part of the description.
func ParseSubmission(text string) (models.SupportRequest, error) {
	req := models.SupportRequest{Mood: models.DefaultMood}
	var description []string

	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			description = append(description, line)
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "mood":
			mood, ok := models.ParseMood(value)
			if !ok {
				return req, fmt.Errorf("unknown mood %q, pick one of: %s", value, moodWords())
			}
			req.Mood = mood
		case "emotions", "emotion", "feeling", "feelings":
			for _, raw := range strings.Split(value, ",") {
				if strings.TrimSpace(raw) == "" {
					continue
				}
				keyword, ok := models.ParseEmotion(raw)
				if !ok {
					return req, fmt.Errorf("unknown emotion %q", strings.TrimSpace(raw))
				}
				req.Emotions = append(req.Emotions, keyword)
			}
		case "journal":
			req.Journal = value
		case "tradition":
			tradition, ok := models.ParseTradition(value)
			if !ok {
				return req, fmt.Errorf("unknown tradition %q, pick one of: %s", value, strings.Join(models.Traditions, ", "))
			}
			req.Tradition = tradition
		default:
			description = append(description, line)
		}
	}

	req.Text = strings.TrimSpace(strings.Join(description, "\n"))
	return req, nil
}

func moodWords() string {
	words := make([]string, 0, len(models.Moods))
	for _, m := range models.Moods {
		words = append(words, strings.ToLower(m.Word()))
	}
	return strings.Join(words, ", ")
}
