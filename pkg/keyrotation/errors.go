package keyrotation

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind int

const (
	KindOther Kind = iota
	KindRateLimited
	KindInvalidCredential
	KindNotConfigured
	KindAllCredentialsExhausted
	KindGenerationFailed
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindNotConfigured:
		return "not_configured"
	case KindAllCredentialsExhausted:
		return "all_credentials_exhausted"
	case KindGenerationFailed:
		return "generation_failed"
	default:
		return "other"
	}
}

var (
	// ErrNotConfigured indicates no usable credential is bound
	ErrNotConfigured = errors.New("gemini API keys not configured")

	// ErrAllCredentialsExhausted indicates every credential was evicted as invalid
	ErrAllCredentialsExhausted = errors.New("all API keys are invalid")

	// ErrGenerationFailed indicates the retry budget was spent without success
	ErrGenerationFailed = errors.New("generation failed")
)

// GenerationError is returned by Generate when no text could be produced.
type GenerationError struct {
	Kind     Kind
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case KindNotConfigured:
		return ErrNotConfigured.Error() + ", add keys in the admin panel"
	case KindAllCredentialsExhausted:
		if e.Err != nil {
			return fmt.Sprintf("%s, add valid keys: %v", ErrAllCredentialsExhausted, e.Err)
		}
		return ErrAllCredentialsExhausted.Error() + ", add valid keys"
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s after %d attempt(s): %v", ErrGenerationFailed, e.Attempts, e.Err)
		}
		return fmt.Sprintf("%s after %d attempt(s)", ErrGenerationFailed, e.Attempts)
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *GenerationError) Is(target error) bool {
	switch target {
	case ErrNotConfigured:
		return e.Kind == KindNotConfigured
	case ErrAllCredentialsExhausted:
		return e.Kind == KindAllCredentialsExhausted
	case ErrGenerationFailed:
		return e.Kind == KindGenerationFailed
	}
	return false
}

// KindOf returns the Kind carried by err, or KindOther.
func KindOf(err error) Kind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindOther
}
