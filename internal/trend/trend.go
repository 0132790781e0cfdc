// Package trend derives the stress time series and journal views from the
// interaction log. Nothing here is persisted.
package trend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shubh-37/calmmind/internal/models"
)

// Point is the mean stress score for one calendar day.
type Point struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

var dateLayouts = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Day reduces a stored date to its calendar day, dropping any time of day.
func Day(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(models.DateLayout), true
		}
	}
	return "", false
}

// Compute averages stress scores per day, oldest first. Days without records
// are absent, and rows with an unknown date or level are ignored.
func Compute(records []*models.InteractionRecord) []Point {
	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[string]*bucket)

	for _, r := range records {
		score := r.StressLevel.Score()
		if score == 0 {
			continue
		}
		day, ok := Day(r.Date)
		if !ok {
			continue
		}
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += score
		b.count++
	}

	points := make([]Point, 0, len(buckets))
	for day, b := range buckets {
		points = append(points, Point{
			Date:  day,
			Score: float64(b.sum) / float64(b.count),
			Count: b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points
}

// Newest returns the journal view: most recent entry first. The input slice
// is left untouched.
func Newest(records []*models.InteractionRecord) []*models.InteractionRecord {
	out := make([]*models.InteractionRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}

// Summary holds aggregate counts over the whole log.
type Summary struct {
	Total     int                        `json:"total"`
	ByLevel   map[models.StressLevel]int `json:"by_level"`
	ByMood    map[models.Mood]int        `json:"by_mood"`
	MeanScore float64                    `json:"mean_score"`
	FirstDate string                     `json:"first_date,omitempty"`
	LastDate  string                     `json:"last_date,omitempty"`
}

func Summarize(records []*models.InteractionRecord) Summary {
	s := Summary{
		ByLevel: make(map[models.StressLevel]int),
		ByMood:  make(map[models.Mood]int),
	}

	var scoreSum, scored int
	for _, r := range records {
		s.Total++
		s.ByMood[r.Mood]++
		if score := r.StressLevel.Score(); score > 0 {
			s.ByLevel[r.StressLevel]++
			scoreSum += score
			scored++
		}
		if day, ok := Day(r.Date); ok {
			if s.FirstDate == "" || day < s.FirstDate {
				s.FirstDate = day
			}
			if day > s.LastDate {
				s.LastDate = day
			}
		}
	}
	if scored > 0 {
		s.MeanScore = float64(scoreSum) / float64(scored)
	}

	return s
}

// RenderChart draws one bar per day for chat and terminal output.
// width is the bar length of a score of 3.
func RenderChart(points []Point, width int) string {
	if len(points) == 0 {
		return "No log data found yet."
	}
	if width <= 0 {
		width = 15
	}

	var b strings.Builder
	for _, p := range points {
		filled := int(p.Score/3*float64(width) + 0.5)
		fmt.Fprintf(&b, "%s %s%s %.2f\n",
			p.Date,
			strings.Repeat("█", filled),
			strings.Repeat("░", width-filled),
			p.Score,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
