package keyrotation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"central-gpt/pkg/log"
)

// Config is the dependency bag passed to New.
type Config struct {
	Factory    Factory
	Logger     log.Logger
	Policy     Policy
	Classifier Classifier
	Clock      Clock
	Metrics    *Metrics
}

// Client owns a pool of API keys, the currently selected key and the invoker
// bound to it. Rotation and eviction persist across Generate calls.
//
// Generate calls are serialized. Configure, Keys and Status only take the
// state lock and never wait for an in-flight Generate.
type Client struct {
	genMu sync.Mutex

	mu          sync.Mutex
	keys        []string
	index       int
	active      Invoker
	lastSuccess time.Time

	factory  Factory
	classify Classifier
	policy   Policy
	clock    Clock
	l        log.Logger
	metrics  *Metrics
}

// New creates an unconfigured Client.
func New(cfg Config) (*Client, error) {
	if cfg.Factory == nil {
		return nil, errors.New("keyrotation: factory is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if cfg.Policy == (Policy{}) {
		cfg.Policy = DefaultPolicy()
	}
	if cfg.Policy.MaxAttempts <= 0 {
		return nil, errors.New("keyrotation: policy max attempts must be positive")
	}
	if cfg.Classifier == nil {
		cfg.Classifier = DefaultClassifier()
	}
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}

	return &Client{
		factory:  cfg.Factory,
		classify: cfg.Classifier,
		policy:   cfg.Policy,
		clock:    cfg.Clock,
		l:        cfg.Logger,
		metrics:  cfg.Metrics,
	}, nil
}

// Configure replaces the key pool. Blank entries are dropped, the selection
// resets to the first key and an invoker is bound to it. An empty pool leaves
// the client unbound. On a bind error the previous state is kept.
func (c *Client) Configure(keys []string) error {
	pool := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			pool = append(pool, k)
		}
	}

	var active Invoker
	if len(pool) > 0 {
		inv, err := c.factory(pool[0])
		if err != nil {
			return fmt.Errorf("keyrotation: bind key 1/%d: %w", len(pool), err)
		}
		active = inv
	}

	c.mu.Lock()
	c.keys = pool
	c.index = 0
	c.active = active
	c.mu.Unlock()

	c.metrics.setPoolSize(len(pool))
	if len(pool) == 0 {
		c.l.Warn(context.Background(), "keyrotation: no valid API keys provided")
	} else {
		c.l.Infof(context.Background(), "keyrotation: initialized with %d key(s)", len(pool))
	}
	return nil
}

// Keys returns a copy of the current pool in rotation order.
func (c *Client) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.keys...)
}

// Status returns a snapshot of the rotation state.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Initialized:  c.active != nil,
		KeyCount:     len(c.keys),
		CurrentIndex: c.index,
		LastUsed:     c.lastSuccess,
	}
}

// binding is the selected key and its invoker at the start of an attempt.
type binding struct {
	index   int
	key     string
	invoker Invoker
}

func (c *Client) current() (binding, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.keys) == 0 || c.active == nil {
		return binding{}, 0, false
	}
	return binding{index: c.index, key: c.keys[c.index], invoker: c.active}, len(c.keys), true
}

func (c *Client) sinceLastSuccess() (time.Duration, bool) {
	c.mu.Lock()
	last := c.lastSuccess
	c.mu.Unlock()
	if last.IsZero() {
		return 0, false
	}
	return c.clock.Now().Sub(last), true
}

func (c *Client) markSuccess() {
	now := c.clock.Now()
	c.mu.Lock()
	c.lastSuccess = now
	c.mu.Unlock()
}

// rotate advances the selection past the key that failed. It reports false
// when there is no other key to rotate to.
func (c *Client) rotate(ctx context.Context, from binding) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if from.index >= len(c.keys) || c.keys[from.index] != from.key {
		// Pool was replaced while the attempt was in flight; the new selection stands.
		return len(c.keys) > 1
	}
	if len(c.keys) <= 1 {
		c.l.Warn(ctx, "keyrotation: no other keys available for rotation")
		return false
	}

	next := (from.index + 1) % len(c.keys)
	inv, err := c.factory(c.keys[next])
	if err != nil {
		c.l.Errorf(ctx, "keyrotation: bind key %d/%d: %v", next+1, len(c.keys), err)
		return false
	}
	c.index = next
	c.active = inv
	c.metrics.observeRotation()
	c.l.Infof(ctx, "keyrotation: rotating to key %d/%d", next+1, len(c.keys))
	return true
}

// evict removes the failing key and rebinds to the key now at the clamped
// index. It returns the remaining pool size.
func (c *Client) evict(ctx context.Context, from binding) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if from.index >= len(c.keys) || c.keys[from.index] != from.key {
		// Pool was replaced while the attempt was in flight; the new selection stands.
		return len(c.keys)
	}

	c.keys = append(c.keys[:from.index:from.index], c.keys[from.index+1:]...)
	c.metrics.observeEviction()
	c.metrics.setPoolSize(len(c.keys))
	c.l.Warnf(ctx, "keyrotation: evicted invalid key at index %d, %d remaining", from.index, len(c.keys))

	if len(c.keys) == 0 {
		c.index = 0
		c.active = nil
		return 0
	}

	c.index = from.index % len(c.keys)
	inv, err := c.factory(c.keys[c.index])
	if err != nil {
		c.l.Errorf(ctx, "keyrotation: bind key %d/%d: %v", c.index+1, len(c.keys), err)
		c.active = nil
		return len(c.keys)
	}
	c.active = inv
	return len(c.keys)
}
