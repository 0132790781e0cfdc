package slack

import (
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shubh-37/calmmind/internal/models"
)

// Session is the last check-in shown in a channel. It lets refresh actions
// reuse the classified level and text without running the pipeline again.
type Session struct {
	ID        string
	Channel   string
	Text      string
	Tradition string
	Level     models.StressLevel
	Quotes    []string
	Story     string
	UpdatedAt time.Time
}

type SessionStore struct {
	mu        sync.Mutex
	byChannel map[string]*Session
	byMessage map[string]string // reply ts -> channel
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		byChannel: make(map[string]*Session),
		byMessage: make(map[string]string),
	}
}

// Start replaces the channel's session with a fresh one for a new check-in.
func (s *SessionStore) Start(channel string, req models.SupportRequest, result *models.SupportResult) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:        uuid.New().String(),
		Channel:   channel,
		Text:      req.Text,
		Tradition: req.Tradition,
		Level:     result.StressLevel,
		Quotes:    slices.Clone(result.Quotes),
		Story:     result.Story,
		UpdatedAt: time.Now(),
	}
	s.byChannel[channel] = session
	log.Printf("📌 Started session %s for channel %s", session.ID, channel)

	return *session
}

// Remember links a posted reply to the channel's current session so
// reactions on it can be routed back.
func (s *SessionStore) Remember(messageTS, channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byMessage[messageTS] = channel
}

func (s *SessionStore) Get(channel string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.byChannel[channel]
	if !ok {
		return Session{}, false
	}
	return *session, true
}

// ForMessage finds the session a reply message belongs to.
func (s *SessionStore) ForMessage(messageTS string) (Session, bool) {
	s.mu.Lock()
	channel, ok := s.byMessage[messageTS]
	s.mu.Unlock()
	if !ok {
		return Session{}, false
	}
	return s.Get(channel)
}

func (s *SessionStore) UpdateQuotes(channel string, quotes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.byChannel[channel]; ok {
		session.Quotes = slices.Clone(quotes)
		session.UpdatedAt = time.Now()
	}
}

func (s *SessionStore) UpdateStory(channel, story string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.byChannel[channel]; ok {
		session.Story = story
		session.UpdatedAt = time.Now()
	}
}
