package chat

import (
	"errors"
	"strings"

	"central-gpt/pkg/keyrotation"
)

var (
	keyConfig = Diagnostic{
		Code:    DiagnosticKeyConfig,
		Title:   "API Key Configuration Error",
		Message: "The configured API keys are invalid. An administrator needs to add a valid key.",
	}
	notConfigured = Diagnostic{
		Code:    DiagnosticNotConfigured,
		Title:   "System Configuration Required",
		Message: "The AI backend has no API keys yet. Contact the administrator.",
	}
)

// Diagnose maps a failed turn to the explanation shown to the user. Rate
// limits are checked first, then key problems, then missing configuration.
// Typed errors win over message matching.
func Diagnose(err error) Diagnostic {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "429") || strings.Contains(msg, "quota"):
		return Diagnostic{
			Code:    DiagnosticRateLimit,
			Title:   "API Rate Limit Exceeded",
			Message: "Please wait a moment, or ask an administrator to add more API keys in the admin panel.",
		}
	case errors.Is(err, keyrotation.ErrNotConfigured):
		return notConfigured
	case errors.Is(err, keyrotation.ErrAllCredentialsExhausted):
		return keyConfig
	case strings.Contains(msg, "not configured"):
		return notConfigured
	case strings.Contains(msg, "api key") || strings.Contains(msg, "invalid"):
		return keyConfig
	default:
		return Diagnostic{
			Code:    DiagnosticSystem,
			Title:   "System Error",
			Message: err.Error(),
		}
	}
}
