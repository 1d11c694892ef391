package nlmkit

import (
	"errors"
	"strings"
)

// Kind classifies a NotebookLM failure. The server does not return
// structured error codes, so kinds are derived from the error message
// (see classifyKind).
type Kind int

// Error kinds, ordered by classification precedence.
const (
	// KindGeneric is any failure that matches no other kind.
	KindGeneric Kind = iota

	// KindAuthentication indicates missing or expired credentials.
	KindAuthentication

	// KindNotFound indicates a missing notebook, source, or artifact.
	KindNotFound

	// KindRateLimit indicates the API rate limit was exceeded.
	KindRateLimit

	// KindValidation indicates invalid parameters or data.
	KindValidation

	// KindGeneration indicates a Studio artifact generation failure.
	KindGeneration

	// KindTimeout indicates a bounded wait expired (not produced by
	// message classification; raised by the research poller).
	KindTimeout
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindValidation:
		return "validation"
	case KindGeneration:
		return "generation"
	case KindTimeout:
		return "timeout"
	default:
		return "generic"
	}
}

// Error is the error type for all NotebookLM operations. Tool, when
// set, names the remote operation that failed and is preserved in the
// message so callers can tell which call broke even after
// classification.
type Error struct {
	Kind    Kind
	Tool    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Tool != "" {
		return "[" + e.Tool + "] " + e.Message
	}
	return e.Message
}

// KindOf returns the Kind of err, or KindGeneric if err is not an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneric
}

// IsAuthError checks if an error is authentication-related.
func IsAuthError(err error) bool { return hasKind(err, KindAuthentication) }

// IsNotFound checks if an error indicates a missing resource.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsRateLimited checks if an error indicates API rate limiting.
func IsRateLimited(err error) bool { return hasKind(err, KindRateLimit) }

// IsValidationError checks if an error indicates invalid input, either
// rejected locally before any remote call or by the server.
func IsValidationError(err error) bool { return hasKind(err, KindValidation) }

// IsGenerationError checks if an error indicates a failed Studio
// generation.
func IsGenerationError(err error) bool { return hasKind(err, KindGeneration) }

// IsTimeout checks if an error is a poll-deadline timeout.
func IsTimeout(err error) bool { return hasKind(err, KindTimeout) }

func hasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// classifyError maps a server error message to a typed error. The
// resulting message is prefixed "[tool] message"; an empty message
// becomes "Unknown error".
func classifyError(tool, message string) *Error {
	msg := message
	if msg == "" {
		msg = "Unknown error"
	}
	return &Error{Kind: classifyKind(message), Tool: tool, Message: msg}
}

// classifyKind picks a Kind by case-insensitive substring match.
// Order matters: first match wins.
func classifyKind(message string) Kind {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "auth"), strings.Contains(m, "login"), strings.Contains(m, "credential"):
		return KindAuthentication
	case strings.Contains(m, "not found"), strings.Contains(m, "404"):
		return KindNotFound
	case strings.Contains(m, "rate limit"), strings.Contains(m, "429"):
		return KindRateLimit
	case strings.Contains(m, "invalid"), strings.Contains(m, "validation"):
		return KindValidation
	case strings.Contains(m, "generat"), strings.Contains(m, "artifact"):
		return KindGeneration
	default:
		return KindGeneric
	}
}

// newValidationError builds a local pre-flight validation error. No
// remote call has been made when one of these is returned.
func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}
