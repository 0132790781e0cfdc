package llm

import (
	"fmt"
	"time"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Settings selects and configures a generation backend.
type Settings struct {
	Provider       string
	AnthropicKey   string
	AnthropicModel string
	OpenAIKey      string
	OpenAIModel    string
	Timeout        time.Duration
}

// NewClient builds the configured backend with the per-call timeout applied.
func NewClient(s Settings) (Client, error) {
	var client Client
	switch s.Provider {
	case ProviderAnthropic:
		if s.AnthropicKey == "" {
			return nil, fmt.Errorf("missing Anthropic API key")
		}
		client = NewAnthropicClient(s.AnthropicKey, WithAnthropicModel(s.AnthropicModel))
	case ProviderOpenAI:
		if s.OpenAIKey == "" {
			return nil, fmt.Errorf("missing OpenAI API key")
		}
		client = NewOpenAIClient(s.OpenAIKey, s.OpenAIModel)
	default:
		return nil, fmt.Errorf("unknown generation provider %q", s.Provider)
	}
	return WithTimeout(client, s.Timeout), nil
}
