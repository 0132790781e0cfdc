package agents

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type generateCall struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// fakeClient answers by matching a prompt substring; unmatched prompts fail.
type fakeClient struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []generateCall
}

func newFakeClient() *fakeClient {
	return &fakeClient{responses: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeClient) on(substr, response string) *fakeClient {
	f.responses[substr] = response
	return f
}

func (f *fakeClient) fail(substr string, err error) *fakeClient {
	f.errs[substr] = err
	return f
}

func (f *fakeClient) Generate(_ context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, generateCall{Prompt: prompt, MaxTokens: maxTokens, Temperature: temperature})

	for substr, err := range f.errs {
		if strings.Contains(prompt, substr) {
			return "", err
		}
	}
	for substr, resp := range f.responses {
		if strings.Contains(prompt, substr) {
			return resp, nil
		}
	}
	return "", errors.New("no scripted response")
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) callsMatching(substr string) []generateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []generateCall
	for _, c := range f.calls {
		if strings.Contains(c.Prompt, substr) {
			out = append(out, c)
		}
	}
	return out
}

const (
	classifyMarker = "Stress Level:"
	quoteMarker    = "quotes"
	storyMarker    = "success story"
)
