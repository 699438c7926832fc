package generation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/typemitr/typemitr/internal/config"
)

// systemPersona is sent as the system message on every generation call.
const systemPersona = "You are an expert document writer who creates " +
	"professional letters, applications, and official documents in multiple " +
	"languages. Always generate complete, properly formatted documents."

// Client produces document text for a synthesized prompt. Implementations
// make a single attempt per call; retry policy belongs to callers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type openAIClient struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	timeout     time.Duration
	logger      *slog.Logger
}

// NewClient creates an OpenAI-backed generation client from the generator config.
func NewClient(cfg *config.GeneratorConfig, logger *slog.Logger) Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIClient{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.TimeoutDuration(),
		logger:      logger.With("system", "generation"),
	}
}

// Generate sends the prompt with the fixed system persona and returns the
// trimmed completion text. Every failure is classified into an UpstreamError.
func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPersona),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})

	if err != nil {
		uerr := classify(err)
		c.logger.Error("generation call failed", "kind", uerr.Kind, "error", err)
		return "", uerr
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Kind: UpstreamEmpty, Err: errors.New("no choices returned")}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &UpstreamError{Kind: UpstreamEmpty, Err: errors.New("empty completion")}
	}

	return content, nil
}

func classify(err error) *UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &UpstreamError{Kind: UpstreamTimeout, Err: err}
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &UpstreamError{Kind: UpstreamAuth, Err: err}
		case http.StatusTooManyRequests:
			return &UpstreamError{Kind: UpstreamRateLimited, Err: err}
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return &UpstreamError{Kind: UpstreamTimeout, Err: err}
		}
	}

	return &UpstreamError{Kind: UpstreamTransport, Err: err}
}
