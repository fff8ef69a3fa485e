package appconfig

import "time"

// AppConfig is the single row of runtime settings edited from the admin console.
type AppConfig struct {
	ID              int
	MaintenanceMode bool
	FeatureVoice    bool
	FeatureImage    bool
	GeminiKeys      []string
	DeepseekKey     string
	UpdatedAt       time.Time
}

// Default returns the settings used when no row exists yet.
func Default() AppConfig {
	return AppConfig{
		MaintenanceMode: false,
		FeatureVoice:    false,
		FeatureImage:    true,
		GeminiKeys:      []string{},
	}
}

// Flags is the public subset of AppConfig.
type Flags struct {
	MaintenanceMode bool
	FeatureVoice    bool
	FeatureImage    bool
}

// UpdateFlagsInput carries a partial flag update. Nil fields are left unchanged.
type UpdateFlagsInput struct {
	MaintenanceMode *bool
	FeatureVoice    *bool
	FeatureImage    *bool
}

// KeyView describes a stored key without exposing it.
type KeyView struct {
	Index  int
	Masked string
}

// AdminView is the admin console's view of the configuration.
type AdminView struct {
	Flags          Flags
	GeminiKeys     []KeyView
	HasDeepseekKey bool
	EnvFallbackKey bool
	UpdatedAt      time.Time
}
