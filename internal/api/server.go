package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shubh-37/calmmind/internal/agents"
	"github.com/shubh-37/calmmind/internal/database"
	"github.com/shubh-37/calmmind/internal/models"
	"github.com/shubh-37/calmmind/internal/trend"
)

// LogReader is the read side of the interaction log.
type LogReader interface {
	GetAll(ctx context.Context) ([]*models.InteractionRecord, error)
	GetRecent(ctx context.Context, limit int) ([]*models.InteractionRecord, error)
}

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the Fiber application.
type Server struct {
	app     *fiber.App
	support *agents.SupportAgent
	log     LogReader
	cfg     Config
	now     func() time.Time
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, support *agents.SupportAgent, logReader LogReader) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		// Generation calls can take a while.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: jsonError,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	app.Use(cors.New())

	srv := &Server{app: app, support: support, log: logReader, cfg: cfg, now: time.Now}
	srv.registerRoutes()
	return srv
}

// App exposes the underlying Fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	log.Printf("🌐 Local data service listening on %s", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")
	api.Post("/support", s.handleSupport)
	api.Post("/quotes", s.handleQuotes)
	api.Post("/story", s.handleStory)
	api.Get("/entries", s.handleEntries)
	api.Get("/trend", s.handleTrend)
	api.Get("/stats", s.handleStats)
	api.Get("/affirmation", s.handleAffirmation)
}

func jsonError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

type supportPayload struct {
	Text      string   `json:"text"`
	Mood      string   `json:"mood"`
	Emotions  []string `json:"emotions"`
	Journal   string   `json:"journal"`
	Tradition string   `json:"tradition"`
}

func (p supportPayload) request() (models.SupportRequest, error) {
	req := models.SupportRequest{
		Text:    p.Text,
		Mood:    models.DefaultMood,
		Journal: p.Journal,
	}

	if strings.TrimSpace(p.Mood) != "" {
		mood, ok := models.ParseMood(p.Mood)
		if !ok {
			return req, fmt.Errorf("unknown mood %q", p.Mood)
		}
		req.Mood = mood
	}

	for _, raw := range p.Emotions {
		keyword, ok := models.ParseEmotion(raw)
		if !ok {
			return req, fmt.Errorf("unknown emotion %q", raw)
		}
		req.Emotions = append(req.Emotions, keyword)
	}

	tradition, ok := models.ParseTradition(p.Tradition)
	if !ok {
		return req, fmt.Errorf("unknown tradition %q", p.Tradition)
	}
	req.Tradition = tradition

	return req, nil
}

func (s *Server) handleSupport(c *fiber.Ctx) error {
	var payload supportPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	req, err := payload.request()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := s.support.Support(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, agents.ErrEmptyDescription) || errors.Is(err, agents.ErrUnknownMood) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"data": result})
}

func (s *Server) handleQuotes(c *fiber.Ctx) error {
	var payload struct {
		StressLevel string `json:"stress_level"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	level, ok := models.ParseStressLevel(payload.StressLevel)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "stress_level must be low, medium or high")
	}

	quotes := s.support.RefreshQuotes(c.UserContext(), level)
	return c.JSON(fiber.Map{"data": fiber.Map{"stress_level": level, "quotes": quotes}})
}

func (s *Server) handleStory(c *fiber.Ctx) error {
	var payload struct {
		Text      string `json:"text"`
		Tradition string `json:"tradition"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	tradition, ok := models.ParseTradition(payload.Tradition)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown tradition %q", payload.Tradition))
	}

	story, err := s.support.RefreshStory(c.UserContext(), payload.Text, tradition)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"story": story}})
}

func (s *Server) handleEntries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	records, err := s.log.GetRecent(c.UserContext(), limit)
	if errors.Is(err, database.ErrNoData) {
		return c.JSON(fiber.Map{"entries": []*models.InteractionRecord{}, "has_data": false})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("list entries: %v", err))
	}

	return c.JSON(fiber.Map{
		"entries":  records,
		"has_data": true,
		"meta":     fiber.Map{"count": len(records)},
	})
}

func (s *Server) handleTrend(c *fiber.Ctx) error {
	records, err := s.log.GetAll(c.UserContext())
	if errors.Is(err, database.ErrNoData) {
		return c.JSON(fiber.Map{"points": []trend.Point{}, "has_data": false})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("compute trend: %v", err))
	}

	points := trend.Compute(records)
	if points == nil {
		points = []trend.Point{}
	}
	return c.JSON(fiber.Map{
		"points":   points,
		"has_data": true,
		"chart":    trend.RenderChart(points, 30),
	})
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	records, err := s.log.GetAll(c.UserContext())
	if errors.Is(err, database.ErrNoData) {
		return c.JSON(fiber.Map{"data": trend.Summarize(nil), "has_data": false})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("summarize log: %v", err))
	}
	return c.JSON(fiber.Map{"data": trend.Summarize(records), "has_data": true})
}

func (s *Server) handleAffirmation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"affirmation": agents.DailyAffirmation(s.now())})
}
