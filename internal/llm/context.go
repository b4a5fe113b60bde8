package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context with a label describing what the LLM
// call is for. The logging provider records it on each event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose label off the context, or "unknown"
// when none was attached.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
