package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"

	// The Responses API rejects max_output_tokens below 16.
	minOpenAIOutputTokens = 16
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a Responses API backend. SDK retries are disabled;
// extra request options (base URL, HTTP client) are passed through.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	all := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := openai.NewClient(all...)
	return &OpenAIClient{client: &client, model: model}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string, maxOutputTokens int, temperature float64) (string, error) {
	if maxOutputTokens < minOpenAIOutputTokens {
		maxOutputTokens = minOpenAIOutputTokens
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(int64(maxOutputTokens)),
		Temperature:     openai.Float(temperature),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	return resp.OutputText(), nil
}
