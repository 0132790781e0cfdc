package models

import "strings"

// Mood is a self-reported overall mood label.
type Mood string

const (
	MoodCalm        Mood = "😌 Calm"
	MoodMeh         Mood = "😐 Meh"
	MoodStressed    Mood = "😫 Stressed"
	MoodOverwhelmed Mood = "😭 Overwhelmed"
)

// Moods is the closed mood enumeration in display order.
var Moods = []Mood{MoodCalm, MoodMeh, MoodStressed, MoodOverwhelmed}

// DefaultMood is used when a submission doesn't pick one.
const DefaultMood = MoodCalm

// ParseMood accepts either the full label or its bare word ("stressed").
func ParseMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for _, m := range Moods {
		if s == string(m) || strings.EqualFold(s, m.Word()) {
			return m, true
		}
	}
	return "", false
}

// Word returns the label without its emoji.
func (m Mood) Word() string {
	if _, word, ok := strings.Cut(string(m), " "); ok {
		return word
	}
	return string(m)
}

// Emotion is an optional self-reported emotion tag.
type Emotion struct {
	Label   string
	Keyword string
}

var Emotions = []Emotion{
	{Label: "😄 Happy", Keyword: "happy"},
	{Label: "😔 Sad", Keyword: "sad"},
	{Label: "😡 Angry", Keyword: "angry"},
	{Label: "😰 Anxious", Keyword: "anxious"},
	{Label: "😴 Tired", Keyword: "tired"},
	{Label: "🤯 Overwhelmed", Keyword: "overwhelmed"},
	{Label: "😇 Grateful", Keyword: "grateful"},
	{Label: "😕 Confused", Keyword: "confused"},
}

// ParseEmotion resolves a label or keyword to its keyword.
func ParseEmotion(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, e := range Emotions {
		if s == e.Label || strings.EqualFold(s, e.Keyword) {
			return e.Keyword, true
		}
	}
	return "", false
}

// Traditions are the wisdom traditions a success story can draw on.
var Traditions = []string{
	"Bhagavad Gita",
	"Stoicism",
	"Buddhism",
	"Bible",
	"Quran",
	"Sufi poetry",
}

// ParseTradition matches case-insensitively and returns the canonical name.
// An empty string is valid and means no tradition.
func ParseTradition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, t := range Traditions {
		if strings.EqualFold(s, t) {
			return t, true
		}
	}
	return "", false
}
