package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shubh-37/calmmind/config"
	"github.com/shubh-37/calmmind/internal/agents"
	"github.com/shubh-37/calmmind/internal/database"
	"github.com/shubh-37/calmmind/internal/llm"
	"github.com/shubh-37/calmmind/internal/models"
	"github.com/shubh-37/calmmind/internal/trend"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	env := config.LoadConfig()
	if cfg.LogPath == "" {
		cfg.LogPath = env.StressLogPath
	}
	cfg.QuoteCount = env.QuoteCount
	cfg.Seed = env.RandomSeed

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var client llm.Client
	if !cfg.viewOnly() {
		if err := env.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
		client, err = llm.NewClient(env.LLMSettings())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
	}

	if err := run(ctx, cfg, client, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, client llm.Client, out io.Writer) error {
	repo := database.NewInteractionRepository(database.NewDB(cfg.LogPath))

	switch {
	case cfg.Trend:
		records, err := repo.GetAll(ctx)
		if errors.Is(err, database.ErrNoData) {
			fmt.Fprintln(out, "No log data found yet.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "📊 Stress Log Overview (1 = low, 2 = medium, 3 = high)")
		fmt.Fprintln(out, trend.RenderChart(trend.Compute(records), 30))
		return nil

	case cfg.JournalView:
		records, err := repo.GetRecent(ctx, cfg.Limit)
		if errors.Is(err, database.ErrNoData) {
			fmt.Fprintln(out, "No log data found yet.")
			return nil
		}
		if err != nil {
			return err
		}
		printJournal(out, records)
		return nil
	}

	req, err := cfg.request()
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = agents.NewSeededRand(cfg.Seed)
	}
	support := agents.NewSupportAgent(
		agents.NewStressClassifierAgent(client),
		agents.NewContentGeneratorAgent(client, cfg.QuoteCount, rng),
		repo,
	)

	result, err := support.Support(ctx, req)
	if err != nil {
		return err
	}
	printSupport(out, result)
	return nil
}

func printSupport(out io.Writer, result *models.SupportResult) {
	fmt.Fprintf(out, "🌞 Daily Affirmation: %s\n\n", result.Affirmation)
	fmt.Fprintf(out, "🧠 Stress Level: %s\n\n", strings.ToUpper(string(result.StressLevel)))

	fmt.Fprintln(out, "💬 Personalized Quotes")
	for _, q := range result.Quotes {
		fmt.Fprintf(out, "  > %s\n", q)
	}

	fmt.Fprintln(out, "\n💡 Tips to Try")
	for _, a := range result.Activities {
		fmt.Fprintf(out, "  - %s: %s\n", a.Suggestion, a.Rationale)
	}

	fmt.Fprintln(out, "\n🎥 Watch Helpful Videos")
	for _, v := range result.Videos {
		fmt.Fprintf(out, "  - %s: %s\n", v.Title, v.URL)
	}

	fmt.Fprintf(out, "\n🌟 Inspired Success Story\n%s\n", result.Story)

	if result.LogError != "" {
		fmt.Fprintf(out, "\n⚠️ This check-in couldn't be saved: %s\n", result.LogError)
	}
}

func printJournal(out io.Writer, records []*models.InteractionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "Your journal log is empty.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(out, "%s | %s | %s\n  %s\n", r.Date, r.Mood, r.StressLevel, r.Text)
		if r.Journal != "" {
			fmt.Fprintf(out, "  journal: %s\n", r.Journal)
		}
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.Text, "text", "", "Describe how you're feeling")
	fs.StringVar(&cfg.Mood, "mood", "", "Overall mood: calm, meh, stressed or overwhelmed (default calm)")
	fs.StringVar(&cfg.Emotions, "emotions", "", "Comma-separated emotions, e.g. anxious,tired")
	fs.StringVar(&cfg.Journal, "journal", "", "Optional journal note stored with the check-in")
	fs.StringVar(&cfg.Tradition, "tradition", "", "Optional wisdom tradition for the story ("+strings.Join(models.Traditions, ", ")+")")
	fs.StringVar(&cfg.LogPath, "log", "", "Path to the interaction log CSV (default: STRESS_LOG_PATH or stress_logs.csv)")
	fs.BoolVar(&cfg.Trend, "trend", false, "Print the stress trend chart instead of checking in")
	fs.BoolVar(&cfg.JournalView, "journal-view", false, "Print recent journal entries instead of checking in")
	fs.IntVar(&cfg.Limit, "n", cfg.Limit, "Number of entries for -journal-view (0 shows all)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
