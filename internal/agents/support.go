package agents

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shubh-37/calmmind/internal/models"
)

// ErrEmptyDescription is returned before any generation call when the user
// hasn't described how they feel.
var ErrEmptyDescription = errors.New("please describe how you're feeling")

// ErrUnknownMood is returned before any generation call for a mood outside
// models.Moods.
var ErrUnknownMood = errors.New("unknown mood")

// InteractionStore is the append side of the interaction log.
type InteractionStore interface {
	Create(ctx context.Context, record *models.InteractionRecord) error
}

// SupportAgent runs one check-in: classify, generate content, log.
// It keeps no state between calls.
type SupportAgent struct {
	classifier *StressClassifierAgent
	generator  *ContentGeneratorAgent
	store      InteractionStore
	now        func() time.Time
}

func NewSupportAgent(classifier *StressClassifierAgent, generator *ContentGeneratorAgent, store InteractionStore) *SupportAgent {
	return &SupportAgent{
		classifier: classifier,
		generator:  generator,
		store:      store,
		now:        time.Now,
	}
}

// Support returns ErrEmptyDescription for blank text, ErrUnknownMood for a
// mood outside models.Moods, and otherwise always produces a result. A failed
// log write is reported on the result, not returned.
func (a *SupportAgent) Support(ctx context.Context, req models.SupportRequest) (result *models.SupportResult, err error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyDescription
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Support flow panicked: %v", r)
			result = nil
			err = fmt.Errorf("unexpected failure while preparing support: %v", r)
		}
	}()

	if req.Mood == "" {
		req.Mood = models.DefaultMood
	} else {
		mood, ok := models.ParseMood(string(req.Mood))
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownMood, req.Mood)
		}
		req.Mood = mood
	}

	result = &models.SupportResult{ID: uuid.New().String()}
	log.Printf("🧠 [%s] Analyzing stress (mood %s)", result.ID, req.Mood)

	result.StressLevel = a.classifier.ClassifyStress(ctx, WithEmotionTags(req.Text, req.Emotions))
	log.Printf("🧠 [%s] Stress level: %s", result.ID, result.StressLevel)

	result.Quotes, result.Story, err = a.generateContent(ctx, result.StressLevel, req.Text, req.Tradition)
	if err != nil {
		return nil, err
	}
	result.Activities = a.generator.Activities(result.StressLevel)
	result.Videos = a.generator.VideoLinks(result.StressLevel, req.Tradition)
	result.Affirmation = DailyAffirmation(a.now())

	record := models.NewInteractionRecord(a.now(), req.Mood, result.StressLevel, req.Text, req.Journal)
	if err := a.store.Create(ctx, record); err != nil {
		log.Printf("⚠️ [%s] Failed to log interaction: %v", result.ID, err)
		result.LogError = err.Error()
	} else {
		result.Logged = true
	}

	return result, nil
}

// generateContent runs the quote and story calls side by side. Both fall back
// locally, so only a panic can fail the group.
func (a *SupportAgent) generateContent(ctx context.Context, level models.StressLevel, text, tradition string) ([]string, string, error) {
	var quotes []string
	var story string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverInto(&err, "quotes")
		quotes = a.generator.GenerateQuotes(gctx, level)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverInto(&err, "story")
		story = a.generator.GenerateSuccessStory(gctx, text, tradition)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	return quotes, story, nil
}

func recoverInto(err *error, step string) {
	if r := recover(); r != nil {
		log.Printf("❌ %s generation panicked: %v", step, r)
		*err = fmt.Errorf("unexpected failure while generating %s: %v", step, r)
	}
}

// RefreshQuotes regenerates quotes for an already classified level.
func (a *SupportAgent) RefreshQuotes(ctx context.Context, level models.StressLevel) []string {
	return a.generator.GenerateQuotes(ctx, level)
}

// RefreshStory regenerates the story without classifying or logging again.
func (a *SupportAgent) RefreshStory(ctx context.Context, text, tradition string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDescription
	}
	return a.generator.GenerateSuccessStory(ctx, text, tradition), nil
}
