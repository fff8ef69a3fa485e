package usecase

import (
	"context"
	"strings"

	"central-gpt/internal/chat"
	"central-gpt/internal/user"
	"central-gpt/pkg/keyrotation"
	"central-gpt/pkg/scope"
)

const imageOnlyPrompt = "Describe this image."

func (uc *implUseCase) Send(ctx context.Context, sc scope.Scope, input chat.SendInput) (chat.SendOutput, error) {
	cfg, err := uc.configUC.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Send configUC.Get: %v", err)
		return chat.SendOutput{}, err
	}
	if cfg.MaintenanceMode {
		return chat.SendOutput{}, chat.ErrMaintenance
	}

	message := strings.TrimSpace(input.Message)
	hasImage := strings.TrimSpace(input.Image) != ""
	if message == "" && !hasImage {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}
	if hasImage && !cfg.FeatureImage {
		return chat.SendOutput{}, chat.ErrImageDisabled
	}

	aiName := coalesce(sc.AIName, user.DefaultAIName)
	devName := coalesce(sc.DevName, user.DefaultDevName)

	if message != "" && isDevTurn(message, hasImage) {
		reply := chat.Render(uc.devInfo, aiName, devName)
		return uc.finish(sc, aiName, message, hasImage, reply, chat.SourceCanned), nil
	}

	var image []byte
	var mimeType string
	if hasImage {
		if image, mimeType, err = decodeImage(input.Image); err != nil {
			return chat.SendOutput{}, err
		}
	}

	prompt := message
	if prompt == "" {
		prompt = imageOnlyPrompt
	}
	persona := chat.Render(uc.persona, aiName, devName)
	req := keyrotation.NewRequest(prompt, persona).WithImage(image, mimeType)

	reply, genErr := uc.gen.Generate(ctx, req)
	if genErr == nil {
		return uc.finish(sc, aiName, message, hasImage, reply, chat.SourceGemini), nil
	}
	uc.l.Warnf(ctx, "chat.usecase.Send gen.Generate: %v", genErr)

	if uc.canFallback(genErr, cfg.DeepseekKey, hasImage) {
		reply, err := uc.complete(ctx, cfg.DeepseekKey, keyrotation.BuildInstruction(persona, prompt))
		if err == nil {
			return uc.finish(sc, aiName, message, hasImage, reply, chat.SourceDeepseek), nil
		}
		uc.l.Errorf(ctx, "chat.usecase.Send fallback: %v", err)
	}

	uc.record(sc.UserID, chat.Entry{
		Username:    sc.Username,
		AIName:      aiName,
		UserMessage: message,
		AIResponse:  "ERROR: " + genErr.Error(),
		HasImage:    hasImage,
		Failed:      true,
		Timestamp:   uc.now(),
	})
	return chat.SendOutput{}, genErr
}

// isDevTurn reports whether the turn is answered from the dev-info
// template. Turns with an image always go to the provider.
func isDevTurn(message string, hasImage bool) bool {
	return !hasImage && chat.IsDevQuestion(message)
}

func (uc *implUseCase) canFallback(err error, deepseekKey string, hasImage bool) bool {
	if uc.fallback == nil || strings.TrimSpace(deepseekKey) == "" || hasImage {
		return false
	}
	switch keyrotation.KindOf(err) {
	case keyrotation.KindNotConfigured, keyrotation.KindGenerationFailed, keyrotation.KindAllCredentialsExhausted:
		return true
	default:
		return false
	}
}

func (uc *implUseCase) complete(ctx context.Context, apiKey, prompt string) (string, error) {
	c, err := uc.fallback(apiKey)
	if err != nil {
		return "", err
	}
	return c.Complete(ctx, prompt)
}

func (uc *implUseCase) finish(sc scope.Scope, aiName, message string, hasImage bool, reply string, src chat.Source) chat.SendOutput {
	ts := uc.now()
	uc.record(sc.UserID, chat.Entry{
		Username:    sc.Username,
		AIName:      aiName,
		UserMessage: message,
		AIResponse:  reply,
		HasImage:    hasImage,
		Timestamp:   ts,
	})
	return chat.SendOutput{
		Reply:     reply,
		Source:    src,
		AIName:    aiName,
		Timestamp: ts,
	}
}

func coalesce(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
