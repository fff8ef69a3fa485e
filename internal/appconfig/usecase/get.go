package usecase

import (
	"context"

	"central-gpt/internal/appconfig"
	repo "central-gpt/internal/appconfig/repository"
)

func (uc *implUseCase) Get(ctx context.Context) (appconfig.AppConfig, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.load(ctx)
}

// load must be called with uc.mu held.
func (uc *implUseCase) load(ctx context.Context) (appconfig.AppConfig, error) {
	cfg, err := uc.repo.GetConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.load GetConfig: %v", err)
		return appconfig.AppConfig{}, err
	}
	if cfg.ID != 0 {
		return cfg, nil
	}

	def := appconfig.Default()
	cfg, err = uc.repo.CreateConfig(ctx, toSaveOptions(def))
	if err != nil {
		uc.l.Errorf(ctx, "uc.load CreateConfig: %v", err)
		return appconfig.AppConfig{}, err
	}
	uc.l.Info(ctx, "uc.load: default config created")
	return cfg, nil
}

func (uc *implUseCase) Flags(ctx context.Context) (appconfig.Flags, error) {
	cfg, err := uc.Get(ctx)
	if err != nil {
		return appconfig.Flags{}, err
	}
	return flagsOf(cfg), nil
}

func (uc *implUseCase) AdminView(ctx context.Context) (appconfig.AdminView, error) {
	cfg, err := uc.Get(ctx)
	if err != nil {
		return appconfig.AdminView{}, err
	}
	return uc.adminView(cfg), nil
}

func (uc *implUseCase) EffectiveKeys(ctx context.Context) ([]string, error) {
	cfg, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return uc.effectiveKeys(cfg), nil
}

func (uc *implUseCase) effectiveKeys(cfg appconfig.AppConfig) []string {
	keys := appconfig.NormalizeKeys(cfg.GeminiKeys)
	if uc.fallbackKey != "" {
		keys = appconfig.NormalizeKeys(append(keys, uc.fallbackKey))
	}
	return keys
}

func (uc *implUseCase) adminView(cfg appconfig.AppConfig) appconfig.AdminView {
	views := make([]appconfig.KeyView, len(cfg.GeminiKeys))
	for i, k := range cfg.GeminiKeys {
		views[i] = appconfig.KeyView{Index: i, Masked: appconfig.MaskKey(k)}
	}
	return appconfig.AdminView{
		Flags:          flagsOf(cfg),
		GeminiKeys:     views,
		HasDeepseekKey: cfg.DeepseekKey != "",
		EnvFallbackKey: uc.fallbackKey != "",
		UpdatedAt:      cfg.UpdatedAt,
	}
}

func flagsOf(cfg appconfig.AppConfig) appconfig.Flags {
	return appconfig.Flags{
		MaintenanceMode: cfg.MaintenanceMode,
		FeatureVoice:    cfg.FeatureVoice,
		FeatureImage:    cfg.FeatureImage,
	}
}

func toSaveOptions(cfg appconfig.AppConfig) repo.SaveConfigOptions {
	return repo.SaveConfigOptions{
		MaintenanceMode: cfg.MaintenanceMode,
		FeatureVoice:    cfg.FeatureVoice,
		FeatureImage:    cfg.FeatureImage,
		GeminiKeys:      cfg.GeminiKeys,
		DeepseekKey:     cfg.DeepseekKey,
	}
}
