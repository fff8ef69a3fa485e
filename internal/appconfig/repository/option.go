package repository

// SaveConfigOptions holds every persisted field of the AppConfig row.
type SaveConfigOptions struct {
	MaintenanceMode bool
	FeatureVoice    bool
	FeatureImage    bool
	GeminiKeys      []string
	DeepseekKey     string
}
