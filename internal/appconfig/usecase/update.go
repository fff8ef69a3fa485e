package usecase

import (
	"context"
	"slices"
	"strings"

	"central-gpt/internal/appconfig"
)

func (uc *implUseCase) UpdateFlags(ctx context.Context, input appconfig.UpdateFlagsInput) (appconfig.Flags, error) {
	cfg, err := uc.mutate(ctx, func(cfg *appconfig.AppConfig) error {
		if input.MaintenanceMode != nil {
			cfg.MaintenanceMode = *input.MaintenanceMode
		}
		if input.FeatureVoice != nil {
			cfg.FeatureVoice = *input.FeatureVoice
		}
		if input.FeatureImage != nil {
			cfg.FeatureImage = *input.FeatureImage
		}
		return nil
	})
	if err != nil {
		return appconfig.Flags{}, err
	}
	return flagsOf(cfg), nil
}

func (uc *implUseCase) AddGeminiKey(ctx context.Context, key string) (appconfig.AdminView, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return appconfig.AdminView{}, appconfig.ErrKeyRequired
	}

	cfg, err := uc.mutate(ctx, func(cfg *appconfig.AppConfig) error {
		if slices.Contains(cfg.GeminiKeys, key) {
			return appconfig.ErrKeyExists
		}
		cfg.GeminiKeys = append(cfg.GeminiKeys, key)
		return nil
	})
	if err != nil {
		return appconfig.AdminView{}, err
	}

	uc.l.Infof(ctx, "uc.AddGeminiKey: pool now has %d stored key(s)", len(cfg.GeminiKeys))
	if err := uc.push(ctx, cfg); err != nil {
		return appconfig.AdminView{}, err
	}
	return uc.adminView(cfg), nil
}

func (uc *implUseCase) RemoveGeminiKey(ctx context.Context, index int) (appconfig.AdminView, error) {
	cfg, err := uc.mutate(ctx, func(cfg *appconfig.AppConfig) error {
		if index < 0 || index >= len(cfg.GeminiKeys) {
			return appconfig.ErrKeyIndexRange
		}
		cfg.GeminiKeys = slices.Delete(slices.Clone(cfg.GeminiKeys), index, index+1)
		return nil
	})
	if err != nil {
		return appconfig.AdminView{}, err
	}

	uc.l.Infof(ctx, "uc.RemoveGeminiKey: pool now has %d stored key(s)", len(cfg.GeminiKeys))
	if err := uc.push(ctx, cfg); err != nil {
		return appconfig.AdminView{}, err
	}
	return uc.adminView(cfg), nil
}

func (uc *implUseCase) SetDeepseekKey(ctx context.Context, key string) error {
	_, err := uc.mutate(ctx, func(cfg *appconfig.AppConfig) error {
		cfg.DeepseekKey = strings.TrimSpace(key)
		return nil
	})
	return err
}

// mutate loads the config, applies fn and persists the result.
func (uc *implUseCase) mutate(ctx context.Context, fn func(cfg *appconfig.AppConfig) error) (appconfig.AppConfig, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cfg, err := uc.load(ctx)
	if err != nil {
		return appconfig.AppConfig{}, err
	}
	if err := fn(&cfg); err != nil {
		return appconfig.AppConfig{}, err
	}

	saved, err := uc.repo.UpdateConfig(ctx, cfg.ID, toSaveOptions(cfg))
	if err != nil {
		uc.l.Errorf(ctx, "uc.mutate UpdateConfig: %v", err)
		return appconfig.AppConfig{}, err
	}
	return saved, nil
}
