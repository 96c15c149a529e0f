package testgen

import "time"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for one generated question.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds a single generation call. On expiry the skill falls
	// back to a templated question; the call is not retried.
	Timeout time.Duration
}

// DefaultConfig returns the recommended defaults: generous enough for one
// question with four options, bounded so an offline generator stalls the
// pipeline for at most Timeout per skill.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}
