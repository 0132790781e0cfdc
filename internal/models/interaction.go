package models

import "time"

// DateLayout is the calendar-day format stored in the interaction log.
const DateLayout = "2006-01-02"

// InteractionRecord is one submitted check-in as stored in the log.
type InteractionRecord struct {
	Date        string      `json:"date"`
	Mood        Mood        `json:"mood"`
	StressLevel StressLevel `json:"stress_level"`
	Text        string      `json:"text"`
	Journal     string      `json:"journal"`
}

// NewInteractionRecord creates a record dated on now's calendar day
func NewInteractionRecord(now time.Time, mood Mood, level StressLevel, text, journal string) *InteractionRecord {
	return &InteractionRecord{
		Date:        now.Format(DateLayout),
		Mood:        mood,
		StressLevel: level,
		Text:        text,
		Journal:     journal,
	}
}
