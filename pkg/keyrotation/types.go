package keyrotation

import (
	"context"
	"time"
)

// Invoker performs one generation call bound to a single credential.
type Invoker interface {
	Invoke(ctx context.Context, p Payload) (string, error)
}

// Factory binds a new Invoker to apiKey.
type Factory func(apiKey string) (Invoker, error)

// Payload is the outbound body of a single attempt.
type Payload struct {
	Instruction string
	Image       *InlineData
}

// InlineData is binary content attached to the instruction.
type InlineData struct {
	MimeType string
	Data     []byte
}

// Request is an immutable generation request.
type Request struct {
	prompt   string
	persona  string
	image    []byte
	mimeType string
}

// NewRequest creates a text-only request.
func NewRequest(prompt, persona string) Request {
	return Request{prompt: prompt, persona: persona}
}

// WithImage returns a copy of r carrying an image. An empty mimeType is
// sniffed from the data when the payload is built.
func (r Request) WithImage(data []byte, mimeType string) Request {
	if len(data) == 0 {
		return r
	}
	r.image = append([]byte(nil), data...)
	r.mimeType = mimeType
	return r
}

func (r Request) Prompt() string  { return r.prompt }
func (r Request) Persona() string { return r.persona }
func (r Request) HasImage() bool  { return len(r.image) > 0 }

// Status is a point-in-time view of the rotation state.
type Status struct {
	Initialized  bool      `json:"initialized"`
	KeyCount     int       `json:"key_count"`
	CurrentIndex int       `json:"current_index"`
	LastUsed     time.Time `json:"last_used"`
}

// Policy holds the retry and pacing parameters.
type Policy struct {
	MinInterval   time.Duration
	BackoffBase   time.Duration
	BackoffMax    time.Duration
	EvictionDelay time.Duration
	RetryDelay    time.Duration
	MaxAttempts   int
}

// DefaultPolicy returns the production retry parameters.
func DefaultPolicy() Policy {
	return Policy{
		MinInterval:   time.Second,
		BackoffBase:   time.Second,
		BackoffMax:    5 * time.Second,
		EvictionDelay: time.Second,
		RetryDelay:    2 * time.Second,
		MaxAttempts:   5,
	}
}

// attemptBudget is min(2 × poolSize, MaxAttempts).
func (p Policy) attemptBudget(poolSize int) int {
	n := 2 * poolSize
	if n > p.MaxAttempts {
		n = p.MaxAttempts
	}
	return n
}

// backoff is min(BackoffBase × 2^attempt, BackoffMax) for a zero-based attempt.
func (p Policy) backoff(attempt int) time.Duration {
	if attempt > 30 {
		return p.BackoffMax
	}
	d := p.BackoffBase << uint(attempt)
	if d > p.BackoffMax || d <= 0 {
		return p.BackoffMax
	}
	return d
}

// Clock abstracts time so retry timing can be driven by tests.
type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
