package slack

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shubh-37/calmmind/internal/agents"
	"github.com/shubh-37/calmmind/internal/database"
	"github.com/shubh-37/calmmind/internal/trend"
)

type CommandHandler struct {
	client          Messenger
	interactionRepo *database.InteractionRepository
	support         *agents.SupportAgent
	sessions        *SessionStore
}

func NewCommandHandler(
	client Messenger,
	interactionRepo *database.InteractionRepository,
	support *agents.SupportAgent,
	sessions *SessionStore,
) *CommandHandler {
	return &CommandHandler{
		client:          client,
		interactionRepo: interactionRepo,
		support:         support,
		sessions:        sessions,
	}
}

// HandleTrend shows the mean stress score per day
func (h *CommandHandler) HandleTrend(ctx context.Context, channelID string) error {
	records, err := h.interactionRepo.GetAll(ctx)
	if err != nil {
		return h.sendLogError(channelID, err)
	}

	_, err = h.client.SendMessage(channelID, formatTrend(trend.Compute(records)))
	return err
}

// HandleJournal shows the most recent entries first
func (h *CommandHandler) HandleJournal(ctx context.Context, channelID string, limit int) error {
	if limit <= 0 {
		limit = 5
	}

	records, err := h.interactionRepo.GetRecent(ctx, limit)
	if err != nil {
		return h.sendLogError(channelID, err)
	}
	if len(records) == 0 {
		_, err = h.client.SendMessage(channelID, "📭 Your journal log is empty.")
		return err
	}

	_, err = h.client.SendMessage(channelID, formatJournal(records))
	return err
}

func (h *CommandHandler) HandleStats(ctx context.Context, channelID string) error {
	records, err := h.interactionRepo.GetAll(ctx)
	if err != nil {
		return h.sendLogError(channelID, err)
	}

	_, err = h.client.SendMessage(channelID, formatStats(trend.Summarize(records)))
	return err
}

// HandleRefreshQuotes regenerates quotes for the channel's last check-in.
func (h *CommandHandler) HandleRefreshQuotes(ctx context.Context, channelID string) error {
	session, ok := h.sessions.Get(channelID)
	if !ok {
		return h.sendNoSession(channelID)
	}

	log.Printf("🔁 Refreshing quotes for session %s (%s)", session.ID, session.Level)
	quotes := h.support.RefreshQuotes(ctx, session.Level)
	h.sessions.UpdateQuotes(channelID, quotes)

	ts, err := h.client.SendMessage(channelID, formatQuotes(quotes))
	if err == nil {
		h.sessions.Remember(ts, channelID)
	}
	return err
}

// HandleRefreshStory regenerates the story for the channel's last check-in.
func (h *CommandHandler) HandleRefreshStory(ctx context.Context, channelID string) error {
	session, ok := h.sessions.Get(channelID)
	if !ok {
		return h.sendNoSession(channelID)
	}

	log.Printf("🔁 Refreshing story for session %s", session.ID)
	story, err := h.support.RefreshStory(ctx, session.Text, session.Tradition)
	if err != nil {
		_, sendErr := h.client.SendMessage(channelID, "❌ "+err.Error())
		return sendErr
	}
	h.sessions.UpdateStory(channelID, story)

	ts, err := h.client.SendMessage(channelID, formatStory(story))
	if err == nil {
		h.sessions.Remember(ts, channelID)
	}
	return err
}

func (h *CommandHandler) sendNoSession(channelID string) error {
	_, err := h.client.SendMessage(channelID, "💭 Check in first by telling me how you're feeling.")
	return err
}

func (h *CommandHandler) sendLogError(channelID string, err error) error {
	if errors.Is(err, database.ErrNoData) {
		_, sendErr := h.client.SendMessage(channelID, "📭 No log data found yet. Check in to start your log!")
		return sendErr
	}

	log.Printf("⚠️ Failed to read interaction log: %v", err)
	_, sendErr := h.client.SendMessage(channelID, fmt.Sprintf("⚠️ Couldn't read your log: %v", err))
	return sendErr
}
