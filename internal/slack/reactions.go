package slack

import (
	"context"
	"log"

	"github.com/slack-go/slack/slackevents"
)

type ReactionHandler struct {
	commands *CommandHandler
	sessions *SessionStore
}

func NewReactionHandler(commands *CommandHandler, sessions *SessionStore) *ReactionHandler {
	return &ReactionHandler{
		commands: commands,
		sessions: sessions,
	}
}

// HandleReaction refreshes content when the user reacts to one of our
// support replies.
func (h *ReactionHandler) HandleReaction(ctx context.Context, event *slackevents.ReactionAddedEvent) error {
	log.Printf("👍 Reaction added: %s on message %s", event.Reaction, event.Item.Timestamp)

	session, exists := h.sessions.ForMessage(event.Item.Timestamp)
	if !exists {
		log.Printf("No check-in found for this message")
		return nil
	}

	switch event.Reaction {
	case "repeat", "arrows_counterclockwise", "🔁":
		return h.commands.HandleRefreshQuotes(ctx, session.Channel)
	case "book", "open_book", "📖":
		return h.commands.HandleRefreshStory(ctx, session.Channel)
	}

	return nil
}
