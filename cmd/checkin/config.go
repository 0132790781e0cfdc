package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shubh-37/calmmind/internal/models"
)

type Config struct {
	Text      string
	Mood      string
	Emotions  string
	Journal   string
	Tradition string

	LogPath     string
	Trend       bool
	JournalView bool
	Limit       int

	// Filled from the environment, not flags.
	QuoteCount int
	Seed       uint64
}

func (c Config) Validate() error {
	if c.Trend && c.JournalView {
		return errors.New("-trend and -journal-view cannot be combined")
	}
	if c.LogPath == "" {
		return errors.New("missing -log")
	}
	if c.Limit < 0 {
		return errors.New("n must be >= 0")
	}
	if c.viewOnly() {
		return nil
	}
	if strings.TrimSpace(c.Text) == "" {
		return errors.New("missing -text: describe how you're feeling")
	}
	_, err := c.request()
	return err
}

func (c Config) viewOnly() bool {
	return c.Trend || c.JournalView
}

// request converts the check-in flags into a support request.
func (c Config) request() (models.SupportRequest, error) {
	req := models.SupportRequest{
		Text:    c.Text,
		Mood:    models.DefaultMood,
		Journal: c.Journal,
	}

	if strings.TrimSpace(c.Mood) != "" {
		mood, ok := models.ParseMood(c.Mood)
		if !ok {
			return req, fmt.Errorf("unknown -mood %q", c.Mood)
		}
		req.Mood = mood
	}

	for _, raw := range strings.Split(c.Emotions, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		keyword, ok := models.ParseEmotion(raw)
		if !ok {
			return req, fmt.Errorf("unknown emotion %q in -emotions", strings.TrimSpace(raw))
		}
		req.Emotions = append(req.Emotions, keyword)
	}

	tradition, ok := models.ParseTradition(c.Tradition)
	if !ok {
		return req, fmt.Errorf("unknown -tradition %q", c.Tradition)
	}
	req.Tradition = tradition

	return req, nil
}

func defaultConfig() Config {
	return Config{
		Limit:      5,
		QuoteCount: 2,
	}
}
