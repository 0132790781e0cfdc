package slack

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/shubh-37/calmmind/internal/agents"
	"github.com/shubh-37/calmmind/internal/database"
)

type sentMessage struct {
	Channel string
	Text    string
	TS      string
}

type fakeMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (m *fakeMessenger) SendMessage(channelID, message string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts := fmt.Sprintf("1700000000.%06d", len(m.sent)+1)
	m.sent = append(m.sent, sentMessage{Channel: channelID, Text: message, TS: ts})
	return ts, nil
}

func (m *fakeMessenger) GetBotID() string { return "UBOT" }

func (m *fakeMessenger) last(t *testing.T) sentMessage {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatalf("no messages sent")
	}
	return m.sent[len(m.sent)-1]
}

func (m *fakeMessenger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// scriptedLLM answers by prompt kind and counts calls per kind.
type scriptedLLM struct {
	mu     sync.Mutex
	level  string
	quotes []string
	story  string
	calls  map[string]int
}

func (s *scriptedLLM) Generate(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	switch {
	case strings.Contains(prompt, "Stress Level:"):
		s.calls["classify"]++
		return s.level, nil
	case strings.Contains(prompt, "quotes"):
		s.calls["quotes"]++
		return strings.Join(s.quotes, "\n"), nil
	default:
		s.calls["story"]++
		return s.story, nil
	}
}

func (s *scriptedLLM) count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[kind]
}

type testRig struct {
	messenger *fakeMessenger
	llm       *scriptedLLM
	repo      *database.InteractionRepository
	sessions  *SessionStore
	messages  *MessageHandler
	commands  *CommandHandler
	reactions *ReactionHandler
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	llm := &scriptedLLM{level: "high", quotes: []string{"Hold on.", "Keep going."}, story: "A gentle story."}
	repo := database.NewInteractionRepository(database.NewDB(filepath.Join(t.TempDir(), "stress_logs.csv")))
	support := agents.NewSupportAgent(
		agents.NewStressClassifierAgent(llm),
		agents.NewContentGeneratorAgent(llm, 2, agents.NewSeededRand(1)),
		repo,
	)

	messenger := &fakeMessenger{}
	sessions := NewSessionStore()
	commands := NewCommandHandler(messenger, repo, support, sessions)

	return &testRig{
		messenger: messenger,
		llm:       llm,
		repo:      repo,
		sessions:  sessions,
		messages:  NewMessageHandler(messenger, support, commands, sessions),
		commands:  commands,
		reactions: NewReactionHandler(commands, sessions),
	}
}
