package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shubh-37/calmmind/internal/llm"
)

const (
	ProviderAnthropic = llm.ProviderAnthropic
	ProviderOpenAI    = llm.ProviderOpenAI
)

type Config struct {
	GenerationProvider string
	AnthropicKey       string
	AnthropicModel     string
	OpenAIKey          string
	OpenAIModel        string
	GenerationTimeout  time.Duration

	StressLogPath string
	QuoteCount    int
	RandomSeed    uint64

	SlackToken         string
	SlackSigningSecret string
	SlackPort          string

	APIAddr string
}

// LoadConfig loads configuration from environment variables
// It first tries to load from .env file, then falls back to system environment variables
func LoadConfig() *Config {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
	}

	return FromEnv()
}

// FromEnv reads the process environment without touching .env.
func FromEnv() *Config {
	return &Config{
		GenerationProvider: getEnv("GENERATION_PROVIDER", ProviderAnthropic),
		AnthropicKey:       getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:     getEnv("ANTHROPIC_MODEL", ""),
		OpenAIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", ""),
		GenerationTimeout:  getDuration("GENERATION_TIMEOUT", 30*time.Second),
		StressLogPath:      getEnv("STRESS_LOG_PATH", "stress_logs.csv"),
		QuoteCount:         getInt("QUOTE_COUNT", 2),
		RandomSeed:         uint64(getInt("RANDOM_SEED", 0)),
		SlackToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackPort:          getEnv("SLACK_PORT", "3000"),
		APIAddr:            getEnv("API_ADDR", "127.0.0.1:8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// LLMSettings picks out the generation backend settings.
func (c *Config) LLMSettings() llm.Settings {
	return llm.Settings{
		Provider:       c.GenerationProvider,
		AnthropicKey:   c.AnthropicKey,
		AnthropicModel: c.AnthropicModel,
		OpenAIKey:      c.OpenAIKey,
		OpenAIModel:    c.OpenAIModel,
		Timeout:        c.GenerationTimeout,
	}
}

// SlackEnabled reports whether the Slack surface should start.
func (c *Config) SlackEnabled() bool {
	return c.SlackToken != "" && c.SlackSigningSecret != ""
}

func (c *Config) Validate() error {
	switch c.GenerationProvider {
	case ProviderAnthropic:
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown GENERATION_PROVIDER %q", c.GenerationProvider)
	}
	if c.StressLogPath == "" {
		return fmt.Errorf("STRESS_LOG_PATH is required")
	}
	if c.QuoteCount < 1 || c.QuoteCount > 5 {
		return fmt.Errorf("QUOTE_COUNT must be between 1 and 5")
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if (c.SlackToken == "") != (c.SlackSigningSecret == "") {
		return fmt.Errorf("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET must be set together")
	}
	return nil
}
