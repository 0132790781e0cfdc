package slack

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// Long enough for classification plus the content calls.
const eventTimeout = 2 * time.Minute

type Server struct {
	messageHandler  *MessageHandler
	reactionHandler *ReactionHandler
	signingSecret   string

	// dispatch runs event work after Slack has been acknowledged.
	dispatch func(func())
}

func NewServer(messageHandler *MessageHandler, reactionHandler *ReactionHandler, signingSecret string) *Server {
	log.Printf("🔐 Slack signing secret configured (length: %d)", len(signingSecret))
	return &Server{
		messageHandler:  messageHandler,
		reactionHandler: reactionHandler,
		signingSecret:   signingSecret,
		dispatch:        func(fn func()) { go fn() },
	}
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Error reading body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Verify the request signature
	sv, err := slack.NewSecretsVerifier(r.Header, s.signingSecret)
	if err != nil {
		log.Printf("❌ Error creating secrets verifier: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := sv.Write(body); err != nil {
		log.Printf("❌ Error writing to verifier: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := sv.Ensure(); err != nil {
		log.Printf("❌ Error verifying signature: %v", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	eventsAPIEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		log.Printf("❌ Error parsing event: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if eventsAPIEvent.Type == slackevents.URLVerification {
		var r *slackevents.ChallengeResponse
		err := json.Unmarshal(body, &r)
		if err != nil {
			log.Printf("❌ Error unmarshaling challenge: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		log.Printf("✅ Responding to URL verification challenge")
		w.Header().Set("Content-Type", "text")
		w.Write([]byte(r.Challenge))
		return
	}

	// Slack redelivers when we're slow to ack; the first delivery is already being handled.
	if r.Header.Get("X-Slack-Retry-Num") != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if eventsAPIEvent.Type == slackevents.CallbackEvent {
		innerEvent := eventsAPIEvent.InnerEvent
		log.Printf("📬 Inner event type: %s", innerEvent.Type)

		s.dispatch(func() {
			ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
			defer cancel()
			s.handleInnerEvent(ctx, innerEvent)
		})
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleInnerEvent(ctx context.Context, innerEvent slackevents.EventsAPIInnerEvent) {
	switch ev := innerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		log.Printf("💬 Message event received")
		if err := s.messageHandler.HandleMessage(ctx, ev); err != nil {
			log.Printf("❌ Error handling message: %v", err)
		}

	case *slackevents.AppMentionEvent:
		log.Printf("📣 App mention event received")
		if err := s.messageHandler.HandleAppMention(ctx, ev); err != nil {
			log.Printf("❌ Error handling mention: %v", err)
		}

	case *slackevents.ReactionAddedEvent:
		log.Printf("👍 Reaction added event received")
		if err := s.reactionHandler.HandleReaction(ctx, ev); err != nil {
			log.Printf("❌ Error handling reaction: %v", err)
		}

	default:
		log.Printf("⚠️ Unsupported event type: %v", innerEvent.Type)
	}
}

// Handler returns the event and health routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/slack/events", s.handleEvents)
	mux.HandleFunc("/health", s.healthCheck)
	return mux
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🚀 Slack server starting on port %s", port)
	log.Printf("📡 Event endpoint: http://localhost:%s/slack/events", port)
	log.Printf("🏥 Health check: http://localhost:%s/health", port)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// healthCheck provides a simple health check endpoint
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
