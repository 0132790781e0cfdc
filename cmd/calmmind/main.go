package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/shubh-37/calmmind/config"
	"github.com/shubh-37/calmmind/internal/agents"
	"github.com/shubh-37/calmmind/internal/api"
	"github.com/shubh-37/calmmind/internal/database"
	"github.com/shubh-37/calmmind/internal/llm"
	slackpkg "github.com/shubh-37/calmmind/internal/slack"
)

func main() {
	log.Println("🧘 CalmMind Starting...")

	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Interaction log
	db := database.NewDB(cfg.StressLogPath)
	interactionRepo := database.NewInteractionRepository(db)
	if db.Exists() {
		count, err := interactionRepo.Count(ctx)
		if err != nil {
			log.Printf("⚠️ Couldn't read %s: %v", db.Path(), err)
		} else {
			log.Printf("📓 Interaction log %s has %d entries", db.Path(), count)
		}
	} else {
		log.Printf("📓 Interaction log %s will be created on first check-in", db.Path())
	}

	// Generation backend
	client, err := llm.NewClient(cfg.LLMSettings())
	if err != nil {
		log.Fatalf("Failed to create generation client: %v", err)
	}

	// Initialize AI Agents
	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = agents.NewSeededRand(cfg.RandomSeed)
	}
	classifier := agents.NewStressClassifierAgent(client)
	contentGenerator := agents.NewContentGeneratorAgent(client, cfg.QuoteCount, rng)
	support := agents.NewSupportAgent(classifier, contentGenerator, interactionRepo)

	g, gctx := errgroup.WithContext(ctx)

	apiServer := api.NewServer(api.Config{Addr: cfg.APIAddr}, support, interactionRepo)
	g.Go(func() error {
		return apiServer.Run(gctx)
	})

	if cfg.SlackEnabled() {
		slackClient, err := slackpkg.NewClient(cfg.SlackToken)
		if err != nil {
			log.Fatalf("Failed to connect to Slack: %v", err)
		}

		sessions := slackpkg.NewSessionStore()
		commandHandler := slackpkg.NewCommandHandler(slackClient, interactionRepo, support, sessions)
		messageHandler := slackpkg.NewMessageHandler(slackClient, support, commandHandler, sessions)
		reactionHandler := slackpkg.NewReactionHandler(commandHandler, sessions)
		slackServer := slackpkg.NewServer(messageHandler, reactionHandler, cfg.SlackSigningSecret)

		g.Go(func() error {
			return slackServer.Start(gctx, cfg.SlackPort)
		})
		log.Println("💬 Slack: Connected and listening")
	} else {
		log.Println("💬 Slack: disabled (SLACK_BOT_TOKEN / SLACK_SIGNING_SECRET not set)")
	}

	log.Printf("✅ System initialized (provider: %s, quotes per check-in: %d)", cfg.GenerationProvider, cfg.QuoteCount)
	log.Println("Press Ctrl+C to stop...")

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Shut down gracefully")
}
