package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicAgainst(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func TestAnthropicGenerate(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"prompt":"Which planet is largest?","answer":"Jupiter"}`},
			},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 42, "output_tokens": 17},
		})
	}

	p := anthropicAgainst(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You write quiz questions.",
		Messages:  []Message{{Role: RoleUser, Content: "One question about astronomy."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 42 || resp.Usage.OutputTokens != 17 {
		t.Errorf("usage = %+v, want 42 in / 17 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicRateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "Rate limit exceeded"},
		})
	}

	p := anthropicAgainst(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 16,
	})

	var rateErr *ErrRateLimit
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		models map[string]string
		input  string
		want   string
	}{
		{anthropicModels, "claude-sonnet", "claude-sonnet-4-20250514"},
		{anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
		{geminiModels, "gemini-2.5-custom", "gemini-2.5-custom"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, tt.models); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToOpenAIMessagesLeadsWithSystem(t *testing.T) {
	msgs := toOpenAIMessages(Request{
		System: "You write quiz questions.",
		Messages: []Message{
			{Role: RoleUser, Content: "topic: oceans"},
			{Role: RoleAssistant, Content: "ok"},
		},
	})

	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[0].Role != "system" {
		t.Errorf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[2].Role != "assistant" {
		t.Errorf("last role = %q, want assistant", msgs[2].Role)
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"correct_index": map[string]any{"type": "integer"},
			"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"prompt", "options", "correct_index"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("got %d properties, want 4", len(schema.Properties))
	}
	if schema.Properties["options"].Type != "ARRAY" {
		t.Errorf("options type = %s, want ARRAY", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != "STRING" {
		t.Errorf("options items type = %s, want STRING", schema.Properties["options"].Items.Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Errorf("difficulty enum has %d values, want 3", len(schema.Properties["difficulty"].Enum))
	}
	if len(schema.Required) != 3 {
		t.Errorf("required has %d entries, want 3", len(schema.Required))
	}
}
