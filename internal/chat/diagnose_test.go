package chat

import (
	"errors"
	"fmt"
	"testing"

	"central-gpt/pkg/keyrotation"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want DiagnosticCode
	}{
		{"rate limit", &keyrotation.GenerationError{Kind: keyrotation.KindGenerationFailed, Err: errors.New("API error 429")}, DiagnosticRateLimit},
		{"quota", errors.New("Quota exceeded"), DiagnosticRateLimit},
		{"exhausted", &keyrotation.GenerationError{Kind: keyrotation.KindAllCredentialsExhausted}, DiagnosticKeyConfig},
		{"api key text", errors.New("API key not valid"), DiagnosticKeyConfig},
		{"not configured", &keyrotation.GenerationError{Kind: keyrotation.KindNotConfigured}, DiagnosticNotConfigured},
		{"wrapped not configured", fmt.Errorf("send: %w", keyrotation.ErrNotConfigured), DiagnosticNotConfigured},
		{"not configured text", errors.New("gemini API keys not configured"), DiagnosticNotConfigured},
		{"invalid key text", errors.New("invalid API key supplied"), DiagnosticKeyConfig},
		{"other", errors.New("connection reset"), DiagnosticSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diagnose(tt.err); got.Code != tt.want {
				t.Errorf("Diagnose(%v) = %s, want %s", tt.err, got.Code, tt.want)
			}
		})
	}

	if got := Diagnose(errors.New("boom")); got.Message != "boom" {
		t.Errorf("system diagnostics carry the error text, got %q", got.Message)
	}
}
