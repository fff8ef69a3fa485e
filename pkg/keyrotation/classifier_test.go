package keyrotation

import (
	"errors"
	"testing"
)

func TestDefaultClassifier(t *testing.T) {
	cls := DefaultClassifier()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindOther},
		{"status 429", errors.New("gemini: API error 429: Too Many Requests"), KindRateLimited},
		{"quota", errors.New("Quota exceeded for metric"), KindRateLimited},
		{"resource exhausted", errors.New("RESOURCE_EXHAUSTED"), KindRateLimited},
		{"rate limit", errors.New("Rate limit reached"), KindRateLimited},
		{"api key", errors.New("API key not valid"), KindInvalidCredential},
		{"api_key", errors.New("API_KEY_INVALID"), KindInvalidCredential},
		{"permission", errors.New("PERMISSION_DENIED"), KindInvalidCredential},
		{"unauthenticated", errors.New("UNAUTHENTICATED"), KindInvalidCredential},
		{"invalid argument", errors.New("INVALID_ARGUMENT: bad contents"), KindOther},
		{"rate limit wins", errors.New("429 quota exceeded for api key"), KindRateLimited},
		{"transient", errors.New("connection reset by peer"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cls.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifierFunc(t *testing.T) {
	cls := ClassifierFunc(func(error) Kind { return KindInvalidCredential })
	if cls.Classify(errors.New("x")) != KindInvalidCredential {
		t.Error("ClassifierFunc should delegate")
	}
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("upstream")
	err := error(&GenerationError{Kind: KindGenerationFailed, Attempts: 3, Err: cause})

	if !errors.Is(err, ErrGenerationFailed) {
		t.Error("expected ErrGenerationFailed match")
	}
	if errors.Is(err, ErrNotConfigured) {
		t.Error("unexpected ErrNotConfigured match")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrapped")
	}
	if got := err.Error(); got != "generation failed after 3 attempt(s): upstream" {
		t.Errorf("unexpected message %q", got)
	}
	if KindOf(errors.New("plain")) != KindOther {
		t.Error("plain errors have KindOther")
	}
}

func TestPolicy(t *testing.T) {
	p := DefaultPolicy()

	budgets := map[int]int{1: 2, 2: 4, 3: 5, 10: 5}
	for size, want := range budgets {
		if got := p.attemptBudget(size); got != want {
			t.Errorf("attemptBudget(%d) = %d, want %d", size, got, want)
		}
	}

	if got := p.backoff(0); got != p.BackoffBase {
		t.Errorf("backoff(0) = %s", got)
	}
	if got := p.backoff(2); got != 4*p.BackoffBase {
		t.Errorf("backoff(2) = %s", got)
	}
	if got := p.backoff(40); got != p.BackoffMax {
		t.Errorf("backoff(40) = %s", got)
	}
}
