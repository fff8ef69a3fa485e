package usecase

import (
	"context"
	"fmt"

	"central-gpt/internal/appconfig"
)

func (uc *implUseCase) Sync(ctx context.Context) error {
	cfg, err := uc.Get(ctx)
	if err != nil {
		return err
	}
	return uc.push(ctx, cfg)
}

func (uc *implUseCase) push(ctx context.Context, cfg appconfig.AppConfig) error {
	if uc.sink == nil {
		return nil
	}
	keys := uc.effectiveKeys(cfg)
	if err := uc.sink.Configure(keys); err != nil {
		uc.l.Errorf(ctx, "uc.push Configure: %v", err)
		return fmt.Errorf("%w: %v", appconfig.ErrKeyPoolReload, err)
	}
	uc.l.Infof(ctx, "uc.push: key pool configured with %d key(s)", len(keys))
	return nil
}
