package slack

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/slack-go/slack/slackevents"

	"github.com/shubh-37/calmmind/internal/agents"
)

type MessageHandler struct {
	client         Messenger
	support        *agents.SupportAgent
	commandHandler *CommandHandler
	sessions       *SessionStore
}

func NewMessageHandler(
	client Messenger,
	support *agents.SupportAgent,
	commandHandler *CommandHandler,
	sessions *SessionStore,
) *MessageHandler {
	return &MessageHandler{
		client:         client,
		support:        support,
		commandHandler: commandHandler,
		sessions:       sessions,
	}
}

// HandleMessage treats every plain channel message as a check-in.
func (h *MessageHandler) HandleMessage(ctx context.Context, event *slackevents.MessageEvent) error {
	if event.BotID != "" {
		return nil
	}

	if event.User == h.client.GetBotID() {
		return nil
	}

	if event.SubType != "" {
		return nil
	}

	if event.ThreadTimeStamp != "" && event.ThreadTimeStamp != event.TimeStamp {
		return nil
	}

	// Mentions arrive again as app_mention events.
	if strings.Contains(event.Text, "<@"+h.client.GetBotID()+">") {
		return nil
	}

	return h.handleCheckIn(ctx, event.Channel, event.Text)
}

func (h *MessageHandler) HandleAppMention(ctx context.Context, event *slackevents.AppMentionEvent) error {
	text := strings.TrimSpace(strings.Replace(event.Text, "<@"+h.client.GetBotID()+">", "", 1))
	command := strings.ToLower(text)

	switch {
	case command == "" || strings.HasPrefix(command, "help"):
		_, err := h.client.SendMessage(event.Channel, helpText)
		return err

	case strings.HasPrefix(command, "trend"):
		return h.commandHandler.HandleTrend(ctx, event.Channel)

	case strings.HasPrefix(command, "journal") && !strings.HasPrefix(command, "journal:"):
		limit := 5
		parts := strings.Fields(command)
		if len(parts) > 1 {
			fmt.Sscanf(parts[1], "%d", &limit)
		}
		return h.commandHandler.HandleJournal(ctx, event.Channel, limit)

	case strings.HasPrefix(command, "stats"):
		return h.commandHandler.HandleStats(ctx, event.Channel)

	case strings.HasPrefix(command, "refresh quotes"):
		return h.commandHandler.HandleRefreshQuotes(ctx, event.Channel)

	case strings.HasPrefix(command, "refresh story"):
		return h.commandHandler.HandleRefreshStory(ctx, event.Channel)
	}

	return h.handleCheckIn(ctx, event.Channel, text)
}

func (h *MessageHandler) handleCheckIn(ctx context.Context, channelID, text string) error {
	req, err := ParseSubmission(text)
	if err != nil {
		_, sendErr := h.client.SendMessage(channelID, "❌ "+err.Error())
		return sendErr
	}

	result, err := h.support.Support(ctx, req)
	if err != nil {
		if errors.Is(err, agents.ErrEmptyDescription) {
			_, sendErr := h.client.SendMessage(channelID, "📝 Please describe how you're feeling.")
			return sendErr
		}
		log.Printf("❌ Support flow failed: %v", err)
		_, sendErr := h.client.SendMessage(channelID, "❌ Something went wrong while preparing your support. Please try again.")
		return sendErr
	}

	h.sessions.Start(channelID, req, result)

	messageTS, err := h.client.SendMessage(channelID, formatSupport(result))
	if err != nil {
		log.Printf("Failed to send support reply: %v", err)
		return err
	}
	h.sessions.Remember(messageTS, channelID)

	return nil
}
