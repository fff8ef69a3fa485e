package keyrotation

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

// fakeClock advances its time only when Sleep is called or a test moves it.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  []time.Duration
	onSleep func() error
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	hook := c.onSleep
	c.mu.Unlock()
	if hook != nil {
		if err := hook(); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *fakeClock) slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// scriptedProvider records every invocation and answers from respond.
type scriptedProvider struct {
	mu       sync.Mutex
	calls    []string
	payloads []Payload
	bound    []string
	respond  func(key string, n int) (string, error)
}

func (p *scriptedProvider) factory(key string) (Invoker, error) {
	p.mu.Lock()
	p.bound = append(p.bound, key)
	p.mu.Unlock()
	return &scriptedInvoker{key: key, p: p}, nil
}

func (p *scriptedProvider) invoked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

type scriptedInvoker struct {
	key string
	p   *scriptedProvider
}

func (i *scriptedInvoker) Invoke(ctx context.Context, payload Payload) (string, error) {
	i.p.mu.Lock()
	i.p.calls = append(i.p.calls, i.key)
	i.p.payloads = append(i.p.payloads, payload)
	n := len(i.p.calls)
	i.p.mu.Unlock()
	return i.p.respond(i.key, n)
}

var (
	errRateLimited = errors.New("gemini: API error 429: RESOURCE_EXHAUSTED")
	errInvalidKey  = errors.New("gemini: API error 400: API key not valid. Please pass a valid API key.")
	errTransient   = errors.New("gemini: API error 500: internal error")
)

func newTestClient(t *testing.T, p *scriptedProvider, clock *fakeClock) *Client {
	t.Helper()
	c, err := New(Config{Factory: p.factory, Clock: clock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RequiresFactory(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without factory")
	}
}

func TestGenerate_NotConfigured(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "x", nil }}
	c := newTestClient(t, p, newFakeClock())

	if err := c.Configure(nil); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	_, err := c.Generate(context.Background(), NewRequest("hi", "persona"))
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if KindOf(err) != KindNotConfigured {
		t.Errorf("expected KindNotConfigured, got %s", KindOf(err))
	}
	if len(p.invoked()) != 0 {
		t.Errorf("expected no invocations, got %v", p.invoked())
	}
}

func TestConfigure_FiltersBlankKeys(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "x", nil }}
	c := newTestClient(t, p, newFakeClock())

	if err := c.Configure([]string{"a", "", "  ", "b"}); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if got := c.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
	st := c.Status()
	if !st.Initialized || st.KeyCount != 2 || st.CurrentIndex != 0 {
		t.Errorf("unexpected status %+v", st)
	}
	if !reflect.DeepEqual(p.bound, []string{"a"}) {
		t.Errorf("expected invoker bound to first key, got %v", p.bound)
	}
}

func TestConfigure_ResetsSelection(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "", errRateLimited }}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)

	_ = c.Configure([]string{"k0", "k1", "k2"})
	_, _ = c.Generate(context.Background(), NewRequest("hi", ""))
	if c.Status().CurrentIndex == 0 {
		t.Fatal("expected rotation to move the selection")
	}

	_ = c.Configure([]string{"n0", "n1"})
	if st := c.Status(); st.CurrentIndex != 0 || st.KeyCount != 2 {
		t.Errorf("expected reset selection, got %+v", st)
	}
}

func TestConfigure_BindErrorKeepsState(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "x", nil }}
	failing := false
	c, err := New(Config{
		Clock: newFakeClock(),
		Factory: func(key string) (Invoker, error) {
			if failing {
				return nil, errors.New("boom")
			}
			return p.factory(key)
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = c.Configure([]string{"a"})
	failing = true
	if err := c.Configure([]string{"b"}); err == nil {
		t.Fatal("expected bind error")
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected previous pool to be kept, got %v", got)
	}
}

func TestGenerate_SingleKeyRateLimited(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "", errRateLimited }}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"only"})

	_, err := c.Generate(context.Background(), NewRequest("hi", ""))

	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if !errors.Is(err, errRateLimited) {
		t.Errorf("expected last provider error to be wrapped, got %v", err)
	}
	if got := p.invoked(); !reflect.DeepEqual(got, []string{"only", "only"}) {
		t.Errorf("expected same key twice, got %v", got)
	}
	if got := clock.slept(); !reflect.DeepEqual(got, []time.Duration{time.Second}) {
		t.Errorf("expected a single 1s backoff, got %v", got)
	}
}

func TestGenerate_RotatesAcrossPool(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "", errRateLimited }}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"k0", "k1", "k2"})

	_, err := c.Generate(context.Background(), NewRequest("hi", ""))

	if KindOf(err) != KindGenerationFailed {
		t.Fatalf("expected KindGenerationFailed, got %v", err)
	}
	want := []string{"k0", "k1", "k2", "k0", "k1"}
	if got := p.invoked(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	wantSleeps := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second}
	if got := clock.slept(); !reflect.DeepEqual(got, wantSleeps) {
		t.Errorf("expected backoff %v, got %v", wantSleeps, got)
	}
	// The final failed attempt still rotates.
	if st := c.Status(); st.CurrentIndex != 2 {
		t.Errorf("expected selection on k2, got %d", st.CurrentIndex)
	}
}

func TestGenerate_EvictsInvalidKey(t *testing.T) {
	p := &scriptedProvider{respond: func(key string, _ int) (string, error) {
		if key == "bad" {
			return "", errInvalidKey
		}
		return "ok from " + key, nil
	}}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"bad", "good"})

	text, err := c.Generate(context.Background(), NewRequest("hi", ""))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "ok from good" {
		t.Errorf("unexpected text %q", text)
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"good"}) {
		t.Errorf("expected pool [good], got %v", got)
	}
	if got := clock.slept(); !reflect.DeepEqual(got, []time.Duration{time.Second}) {
		t.Errorf("expected 1s eviction delay, got %v", got)
	}

	clock.advance(time.Minute)
	if _, err := c.Generate(context.Background(), NewRequest("again", "")); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if got := p.invoked(); !reflect.DeepEqual(got, []string{"bad", "good", "good"}) {
		t.Errorf("expected evicted key to stay out, got %v", got)
	}
}

func TestGenerate_AllKeysEvicted(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "", errInvalidKey }}
	c := newTestClient(t, p, newFakeClock())
	_ = c.Configure([]string{"a", "b"})

	_, err := c.Generate(context.Background(), NewRequest("hi", ""))

	if !errors.Is(err, ErrAllCredentialsExhausted) {
		t.Fatalf("expected ErrAllCredentialsExhausted, got %v", err)
	}
	if got := p.invoked(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected each key tried once, got %v", got)
	}
	if st := c.Status(); st.Initialized || st.KeyCount != 0 {
		t.Errorf("expected empty unbound pool, got %+v", st)
	}

	_, err = c.Generate(context.Background(), NewRequest("hi", ""))
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured after exhaustion, got %v", err)
	}
}

func TestGenerate_OtherErrorRetriesSameKey(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "", errTransient }}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"k0", "k1"})

	_, err := c.Generate(context.Background(), NewRequest("hi", ""))

	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if got := p.invoked(); !reflect.DeepEqual(got, []string{"k0", "k0", "k0", "k0"}) {
		t.Errorf("expected four attempts on k0, got %v", got)
	}
	want := []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}
	if got := clock.slept(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Attempts != 4 {
		t.Errorf("expected 4 attempts recorded, got %+v", genErr)
	}
}

func TestGenerate_SuccessAfterFailures(t *testing.T) {
	p := &scriptedProvider{respond: func(_ string, n int) (string, error) {
		if n < 3 {
			return "", errTransient
		}
		return "  raw\ntext  ", nil
	}}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"k0", "k1"})

	text, err := c.Generate(context.Background(), NewRequest("hi", ""))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "  raw\ntext  " {
		t.Errorf("expected text unmodified, got %q", text)
	}
	if got := c.Status().LastUsed; !got.Equal(clock.Now()) {
		t.Errorf("expected pacing baseline %v, got %v", clock.Now(), got)
	}
}

func TestGenerate_Pacing(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "ok", nil }}
	clock := newFakeClock()
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"k0"})

	if _, err := c.Generate(context.Background(), NewRequest("1", "")); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if len(clock.slept()) != 0 {
		t.Fatalf("first call should not wait, slept %v", clock.slept())
	}

	clock.advance(300 * time.Millisecond)
	if _, err := c.Generate(context.Background(), NewRequest("2", "")); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if got := clock.slept(); !reflect.DeepEqual(got, []time.Duration{700 * time.Millisecond}) {
		t.Errorf("expected 700ms pacing wait, got %v", got)
	}

	clock.advance(2 * time.Second)
	if _, err := c.Generate(context.Background(), NewRequest("3", "")); err != nil {
		t.Fatalf("third Generate: %v", err)
	}
	if got := len(clock.slept()); got != 1 {
		t.Errorf("expected no wait after the interval elapsed, got %v", clock.slept())
	}
}

func TestGenerate_ContextCanceledDuringBackoff(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "", errRateLimited }}
	clock := newFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	clock.onSleep = func() error {
		cancel()
		return nil
	}
	c := newTestClient(t, p, clock)
	_ = c.Configure([]string{"k0", "k1"})

	_, err := c.Generate(ctx, NewRequest("hi", ""))

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := p.invoked(); len(got) != 1 {
		t.Errorf("expected a single attempt before cancellation, got %v", got)
	}
}

func TestGenerate_BuildsPayload(t *testing.T) {
	p := &scriptedProvider{respond: func(string, int) (string, error) { return "ok", nil }}
	c := newTestClient(t, p, newFakeClock())
	_ = c.Configure([]string{"k0"})

	img := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	req := NewRequest("what is this?", "You are Bot.").WithImage(img, "")
	img[1] = 'X'

	if _, err := c.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got := p.payloads[0]
	if got.Instruction != "You are Bot.\n\nUser: what is this?\n\nAI Response:" {
		t.Errorf("unexpected instruction %q", got.Instruction)
	}
	if got.Image == nil {
		t.Fatal("expected image part")
	}
	if got.Image.MimeType != "image/png" {
		t.Errorf("expected image/png, got %s", got.Image.MimeType)
	}
	if got.Image.Data[1] != 'P' {
		t.Error("request image must be copied on WithImage")
	}
}
