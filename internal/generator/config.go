package generator

// Config holds generation parameters.
type Config struct {
	// MaxTokens is the response token budget per batch.
	MaxTokens int

	// Temperature controls generation randomness.
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
