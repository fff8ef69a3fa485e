package keyrotation

import (
	"context"
	"fmt"
)

// phase is a state of a single Generate call.
type phase int

const (
	phaseIdle phase = iota
	phasePacing
	phaseAttempting
	phaseBackoff
	phaseKeyEviction
	phaseShortDelay
	phaseTerminated
)

// run carries the per-call state through the phases.
type run struct {
	payload     Payload
	attempts    int
	maxAttempts int
	bound       binding
	lastErr     error

	text string
	err  error
}

func (r *run) remaining() bool {
	return r.attempts < r.maxAttempts
}

func (r *run) fail(kind Kind) phase {
	r.err = &GenerationError{Kind: kind, Attempts: r.attempts, Err: r.lastErr}
	return phaseTerminated
}

func (r *run) abort(err error) phase {
	r.err = fmt.Errorf("keyrotation: %w", err)
	return phaseTerminated
}

// Generate turns req into generated text, rotating past throttled keys and
// evicting invalid ones until it succeeds or the attempt budget of
// min(2 × poolSize, MaxAttempts) is spent.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	c.genMu.Lock()
	defer c.genMu.Unlock()

	r := &run{payload: buildPayload(req)}
	for st := phaseIdle; st != phaseTerminated; {
		switch st {
		case phaseIdle:
			st = c.idle(ctx, r)
		case phasePacing:
			st = c.pace(ctx, r)
		case phaseAttempting:
			st = c.attempt(ctx, r)
		case phaseBackoff:
			st = c.backoff(ctx, r)
		case phaseKeyEviction:
			st = c.eviction(ctx, r)
		case phaseShortDelay:
			st = c.shortDelay(ctx, r)
		}
	}
	return r.text, r.err
}

func (c *Client) idle(ctx context.Context, r *run) phase {
	_, size, ok := c.current()
	if !ok {
		c.l.Warn(ctx, "keyrotation: generate called without configured keys")
		return r.fail(KindNotConfigured)
	}
	r.maxAttempts = c.policy.attemptBudget(size)
	return phasePacing
}

func (c *Client) pace(ctx context.Context, r *run) phase {
	elapsed, ok := c.sinceLastSuccess()
	if ok && elapsed < c.policy.MinInterval {
		if err := c.clock.Sleep(ctx, c.policy.MinInterval-elapsed); err != nil {
			return r.abort(err)
		}
	}
	return phaseAttempting
}

func (c *Client) attempt(ctx context.Context, r *run) phase {
	if err := ctx.Err(); err != nil {
		return r.abort(err)
	}

	b, size, ok := c.current()
	if !ok {
		return r.fail(KindNotConfigured)
	}
	r.bound = b
	r.attempts++
	c.l.Debugf(ctx, "keyrotation: attempt %d/%d with key %d/%d", r.attempts, r.maxAttempts, b.index+1, size)

	text, err := b.invoker.Invoke(ctx, r.payload)
	if err == nil {
		c.markSuccess()
		c.metrics.observeAttempt("success")
		c.l.Infof(ctx, "keyrotation: success with key %d/%d", b.index+1, size)
		r.text = text
		return phaseTerminated
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return r.abort(ctxErr)
	}

	r.lastErr = err
	kind := c.classify.Classify(err)
	c.metrics.observeAttempt(kind.String())
	c.l.Warnf(ctx, "keyrotation: attempt %d/%d failed (%s): %v", r.attempts, r.maxAttempts, kind, err)

	switch kind {
	case KindRateLimited:
		return phaseBackoff
	case KindInvalidCredential:
		return phaseKeyEviction
	default:
		return phaseShortDelay
	}
}

// backoff waits min(base × 2^attempt, max) and rotates. With a single key the
// same key is retried. The rotation is kept even when the budget is spent so
// the next call starts on a fresh key.
func (c *Client) backoff(ctx context.Context, r *run) phase {
	if r.remaining() {
		wait := c.policy.backoff(r.attempts - 1)
		c.l.Infof(ctx, "keyrotation: rate limited, waiting %s before retry", wait)
		if err := c.clock.Sleep(ctx, wait); err != nil {
			return r.abort(err)
		}
	}

	c.rotate(ctx, r.bound)

	if !r.remaining() {
		return r.fail(KindGenerationFailed)
	}
	return phaseAttempting
}

func (c *Client) eviction(ctx context.Context, r *run) phase {
	if c.evict(ctx, r.bound) == 0 {
		c.l.Error(ctx, "keyrotation: all API keys evicted")
		return r.fail(KindAllCredentialsExhausted)
	}
	if !r.remaining() {
		return r.fail(KindGenerationFailed)
	}
	if err := c.clock.Sleep(ctx, c.policy.EvictionDelay); err != nil {
		return r.abort(err)
	}
	return phaseAttempting
}

func (c *Client) shortDelay(ctx context.Context, r *run) phase {
	if !r.remaining() {
		return r.fail(KindGenerationFailed)
	}
	if err := c.clock.Sleep(ctx, c.policy.RetryDelay); err != nil {
		return r.abort(err)
	}
	return phaseAttempting
}
