package appconfig

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the stored configuration, creating the default row on first use.
	Get(ctx context.Context) (AppConfig, error)
	Flags(ctx context.Context) (Flags, error)
	AdminView(ctx context.Context) (AdminView, error)

	UpdateFlags(ctx context.Context, input UpdateFlagsInput) (Flags, error)
	AddGeminiKey(ctx context.Context, key string) (AdminView, error)
	RemoveGeminiKey(ctx context.Context, index int) (AdminView, error)
	SetDeepseekKey(ctx context.Context, key string) error

	// EffectiveKeys is the stored key list with the environment fallback key appended.
	EffectiveKeys(ctx context.Context) ([]string, error)
	// Sync pushes EffectiveKeys into the configured KeySink.
	Sync(ctx context.Context) error
}

// KeySink receives the key pool whenever it changes.
type KeySink interface {
	Configure(keys []string) error
}
