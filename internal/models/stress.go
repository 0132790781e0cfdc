package models

import "strings"

// StressLevel is the classifier's closed taxonomy.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// StressLevels lists the taxonomy in ascending severity.
var StressLevels = []StressLevel{StressLow, StressMedium, StressHigh}

// ParseStressLevel normalizes case and whitespace and reports whether s is
// one of the three levels.
func ParseStressLevel(s string) (StressLevel, bool) {
	switch StressLevel(strings.ToLower(strings.TrimSpace(s))) {
	case StressLow:
		return StressLow, true
	case StressMedium:
		return StressMedium, true
	case StressHigh:
		return StressHigh, true
	}
	return "", false
}

// Score maps a level to its numeric severity (low=1, medium=2, high=3).
// Unknown levels score 0.
func (l StressLevel) Score() int {
	switch l {
	case StressLow:
		return 1
	case StressMedium:
		return 2
	case StressHigh:
		return 3
	}
	return 0
}

func (l StressLevel) Valid() bool {
	return l.Score() > 0
}

func (l StressLevel) String() string {
	return string(l)
}
