package gemini

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAPI is the general failure class for Gemini calls.
	ErrAPI = errors.New("gemini request failed")
	// ErrTimeout marks requests that exceeded the service deadline.
	ErrTimeout = errors.New("gemini request timed out")
	// ErrConnection marks transport-level failures reaching the service.
	ErrConnection = errors.New("gemini unreachable")
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")
)

// classify maps an SDK error onto the service error taxonomy by sniffing
// the message, since the SDK does not expose typed failure causes.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return fmt.Errorf("%w: the repository may be too large, try a smaller one", ErrTimeout)
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate"):
		return fmt.Errorf("%w: rate limit exceeded, wait a moment and retry", ErrAPI)
	case strings.Contains(msg, "invalid") && strings.Contains(msg, "key"):
		return fmt.Errorf("%w: invalid API key", ErrAPI)
	case strings.Contains(msg, "connection") || strings.Contains(msg, "network"):
		return fmt.Errorf("%w: check the network connection and retry", ErrConnection)
	default:
		return fmt.Errorf("%w: %v", ErrAPI, err)
	}
}
