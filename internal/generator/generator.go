package generator

import "context"

// Generator produces quiz questions for a topic.
type Generator interface {
	// Generate produces count items of the given kind. The returned slice
	// has passed structural validation for that kind. Transient provider
	// failures are retried inside the provider stack; ErrInvalidOutput is
	// returned as-is and must not be retried.
	Generate(ctx context.Context, kind Kind, topic string, count int) ([]Item, error)
}
