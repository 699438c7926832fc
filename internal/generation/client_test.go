package generation_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/typemitr/typemitr/internal/config"
	"github.com/typemitr/typemitr/internal/generation"
)

func newStubClient(t *testing.T, timeout string, handler http.HandlerFunc) generation.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.GeneratorConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gpt-4o",
		Temperature: 0.7,
		MaxTokens:   100,
		Timeout:     timeout,
		SessionTTL:  "30m",
	}

	return generation.NewClient(cfg, slog.New(slog.DiscardHandler))
}

func writeCompletion(w http.ResponseWriter, content string) {
	quoted, _ := json.Marshal(content)
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1,
		"model": "gpt-4o",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": ` + string(quoted) + `},
				"finish_reason": "stop"
			}
		]
	}`))
}

func assertUpstreamKind(t *testing.T, err error, want generation.UpstreamKind) {
	t.Helper()

	var uerr *generation.UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if uerr.Kind != want {
		t.Errorf("Kind = %q, want %q", uerr.Kind, want)
	}
}

func TestClientGenerate(t *testing.T) {
	t.Run("returns trimmed completion", func(t *testing.T) {
		client := newStubClient(t, "5s", func(w http.ResponseWriter, r *http.Request) {
			writeCompletion(w, "  Respected Sir,\n\nApplication text.\n  ")
		})

		content, err := client.Generate(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if content != "Respected Sir,\n\nApplication text." {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("authentication failure", func(t *testing.T) {
		client := newStubClient(t, "5s", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
		})

		_, err := client.Generate(context.Background(), "prompt")
		assertUpstreamKind(t, err, generation.UpstreamAuth)
	})

	t.Run("timeout", func(t *testing.T) {
		client := newStubClient(t, "50ms", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			writeCompletion(w, "too late")
		})

		_, err := client.Generate(context.Background(), "prompt")
		assertUpstreamKind(t, err, generation.UpstreamTimeout)
	})

	t.Run("no choices", func(t *testing.T) {
		client := newStubClient(t, "5s", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-4o", "choices": []}`))
		})

		_, err := client.Generate(context.Background(), "prompt")
		assertUpstreamKind(t, err, generation.UpstreamEmpty)
	})

	t.Run("whitespace-only completion", func(t *testing.T) {
		client := newStubClient(t, "5s", func(w http.ResponseWriter, r *http.Request) {
			writeCompletion(w, "  \n\t ")
		})

		_, err := client.Generate(context.Background(), "prompt")
		assertUpstreamKind(t, err, generation.UpstreamEmpty)
	})

	t.Run("sends persona and prompt", func(t *testing.T) {
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}

		client := newStubClient(t, "5s", func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode request: %v", err)
			}
			writeCompletion(w, "ok")
		})

		if _, err := client.Generate(context.Background(), "the prompt"); err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		if body.Model != "gpt-4o" {
			t.Errorf("model = %q", body.Model)
		}
		if len(body.Messages) != 2 {
			t.Fatalf("messages = %d, want 2", len(body.Messages))
		}
		if body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
			t.Errorf("roles = %q, %q", body.Messages[0].Role, body.Messages[1].Role)
		}
		if body.Messages[1].Content != "the prompt" {
			t.Errorf("user content = %q", body.Messages[1].Content)
		}
	})
}
