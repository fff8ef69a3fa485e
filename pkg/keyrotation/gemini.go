package keyrotation

import (
	"context"
	"net/http"
	"time"

	"central-gpt/pkg/gemini"
)

const (
	// DefaultTemperature is the sampling temperature used for chat turns.
	DefaultTemperature = 0.7
	// DefaultMaxTokens caps the response length of a chat turn.
	DefaultMaxTokens = 4000
)

// GeminiConfig holds the per-key client settings shared by every key in the pool.
type GeminiConfig struct {
	Model       string
	APIURL      string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

// GeminiFactory returns a Factory that binds a Gemini client to each key.
func GeminiFactory(cfg GeminiConfig) Factory {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return func(apiKey string) (Invoker, error) {
		client, err := gemini.New(gemini.Config{
			APIKey:     apiKey,
			Model:      cfg.Model,
			APIURL:     cfg.APIURL,
			Timeout:    cfg.Timeout,
			HTTPClient: cfg.HTTPClient,
		})
		if err != nil {
			return nil, err
		}
		return &geminiInvoker{
			client:      client,
			temperature: cfg.Temperature,
			maxTokens:   cfg.MaxTokens,
		}, nil
	}
}

type geminiInvoker struct {
	client      gemini.IGemini
	temperature float64
	maxTokens   int
}

func (g *geminiInvoker) Invoke(ctx context.Context, p Payload) (string, error) {
	parts := []gemini.Part{{Text: p.Instruction}}
	if p.Image != nil {
		parts = append(parts, gemini.Part{InlineData: &gemini.InlineData{
			MimeType: p.Image.MimeType,
			Data:     p.Image.Data,
		}})
	}

	resp, err := g.client.GenerateContent(ctx, &gemini.Request{
		Messages:    []gemini.Content{{Role: gemini.RoleUser, Parts: parts}},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
