package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sahajm/quizdeck/internal/store"
)

// loggingProvider wraps another Provider and writes one audit event
// per Generate call, success or failure.
type loggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging decorates p so every request lands in the event log.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggingProvider{inner: p, events: repo}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: formatPrompt(req),
	}
	if resp != nil {
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	// A failed audit write must not fail the request itself.
	if logErr := l.events.AppendLLMRequest(ctx, event); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// formatPrompt renders the full request the way it was sent, for the
// `quizdeck llm view` inspector.
func formatPrompt(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
