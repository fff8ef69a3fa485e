package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"central-gpt/internal/appconfig"
	"central-gpt/internal/chat"
	"central-gpt/pkg/keyrotation"
	"central-gpt/pkg/log"
	"central-gpt/pkg/scope"
)

type mockConfig struct {
	appconfig.UseCase
	cfg appconfig.AppConfig
	err error
}

func (m *mockConfig) Get(context.Context) (appconfig.AppConfig, error) {
	return m.cfg, m.err
}

type mockGenerator struct {
	reqs  []keyrotation.Request
	reply string
	err   error
}

func (m *mockGenerator) Generate(_ context.Context, req keyrotation.Request) (string, error) {
	m.reqs = append(m.reqs, req)
	return m.reply, m.err
}

type mockCompleter struct {
	prompts []string
	reply   string
	err     error
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

var (
	alice  = scope.Scope{UserID: "u1", Username: "alice", Role: scope.RoleUser, AIName: "Nova", DevName: "Zed"}
	pngSig = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

func defaultConfig() appconfig.AppConfig {
	cfg := appconfig.Default()
	cfg.ID = 1
	return cfg
}

func newTestUseCase(cfg appconfig.AppConfig, gen Generator, fb CompleterFactory, opt Options) *implUseCase {
	uc := New(log.NewNop(), &mockConfig{cfg: cfg}, gen, fb, opt)
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc
}

func TestSend_Success(t *testing.T) {
	gen := &mockGenerator{reply: "hi alice"}
	uc := newTestUseCase(defaultConfig(), gen, nil, Options{})

	out, err := uc.Send(context.Background(), alice, chat.SendInput{Message: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, "hi alice", out.Reply)
	assert.Equal(t, chat.SourceGemini, out.Source)
	assert.Equal(t, "Nova", out.AIName)

	require.Len(t, gen.reqs, 1)
	assert.Equal(t, "hello", gen.reqs[0].Prompt())
	assert.Contains(t, gen.reqs[0].Persona(), "You are Nova")
	assert.Contains(t, gen.reqs[0].Persona(), "built by Zed")
	assert.False(t, gen.reqs[0].HasImage())

	hist, err := uc.History(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "hello", hist[0].UserMessage)
	assert.Equal(t, "hi alice", hist[0].AIResponse)
}

func TestSend_Preconditions(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{reply: "x"}

	maintenance := defaultConfig()
	maintenance.MaintenanceMode = true
	_, err := newTestUseCase(maintenance, gen, nil, Options{}).Send(ctx, alice, chat.SendInput{Message: "hi"})
	assert.ErrorIs(t, err, chat.ErrMaintenance)

	_, err = newTestUseCase(defaultConfig(), gen, nil, Options{}).Send(ctx, alice, chat.SendInput{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)

	noImage := defaultConfig()
	noImage.FeatureImage = false
	_, err = newTestUseCase(noImage, gen, nil, Options{}).Send(ctx, alice, chat.SendInput{Message: "look", Image: base64.StdEncoding.EncodeToString(pngSig)})
	assert.ErrorIs(t, err, chat.ErrImageDisabled)

	_, err = newTestUseCase(defaultConfig(), gen, nil, Options{}).Send(ctx, alice, chat.SendInput{Image: "not base64!"})
	assert.ErrorIs(t, err, chat.ErrInvalidImage)

	assert.Empty(t, gen.reqs)

	cfgErr := errors.New("db down")
	uc := New(log.NewNop(), &mockConfig{err: cfgErr}, gen, nil, Options{})
	_, err = uc.Send(ctx, alice, chat.SendInput{Message: "hi"})
	assert.ErrorIs(t, err, cfgErr)
}

func TestSend_DevQuestion(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc := newTestUseCase(defaultConfig(), gen, nil, Options{DevInfoTemplate: "{{AI_NAME}} was made by {{DEV_NAME}}"})

	out, err := uc.Send(context.Background(), alice, chat.SendInput{Message: "Who created you?"})
	require.NoError(t, err)
	assert.Equal(t, "Nova was made by Zed", out.Reply)
	assert.Equal(t, chat.SourceCanned, out.Source)
	assert.Empty(t, gen.reqs)
}

func TestSend_Image(t *testing.T) {
	ctx := context.Background()

	t.Run("data url", func(t *testing.T) {
		gen := &mockGenerator{reply: "a pixel"}
		uc := newTestUseCase(defaultConfig(), gen, nil, Options{})

		img := "data:image/webp;base64," + base64.StdEncoding.EncodeToString(pngSig)
		_, err := uc.Send(ctx, alice, chat.SendInput{Image: img})
		require.NoError(t, err)
		require.Len(t, gen.reqs, 1)
		assert.True(t, gen.reqs[0].HasImage())
		assert.Equal(t, imageOnlyPrompt, gen.reqs[0].Prompt())
	})

	t.Run("image skips dev shortcut", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		uc := newTestUseCase(defaultConfig(), gen, nil, Options{})

		out, err := uc.Send(ctx, alice, chat.SendInput{Message: "who created this dev board", Image: base64.StdEncoding.EncodeToString(pngSig)})
		require.NoError(t, err)
		assert.Equal(t, chat.SourceGemini, out.Source)
	})
}

func TestDecodeImage(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString(pngSig)

	data, mime, err := decodeImage(raw)
	require.NoError(t, err)
	assert.Equal(t, pngSig, data)
	assert.Equal(t, "image/png", mime)

	_, mime, err = decodeImage("data:image/jpeg;base64," + raw)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime, "declared type wins")

	_, _, err = decodeImage("data:text/plain;base64," + raw)
	assert.ErrorIs(t, err, chat.ErrInvalidImage)

	_, mime, err = decodeImage(base64.StdEncoding.EncodeToString([]byte("plain text, not a picture")))
	require.NoError(t, err)
	assert.Equal(t, keyrotation.DefaultImageMimeType, mime, "unknown raw payloads fall back to jpeg")

	_, _, err = decodeImage("data:image/png,abc")
	assert.ErrorIs(t, err, chat.ErrInvalidImage)
}

func TestSend_Failure(t *testing.T) {
	genErr := &keyrotation.GenerationError{Kind: keyrotation.KindGenerationFailed, Err: errors.New("429 quota")}
	gen := &mockGenerator{err: genErr}
	uc := newTestUseCase(defaultConfig(), gen, nil, Options{})

	_, err := uc.Send(context.Background(), alice, chat.SendInput{Message: "hello"})
	assert.ErrorIs(t, err, keyrotation.ErrGenerationFailed)

	hist, _ := uc.History(context.Background(), alice)
	require.Len(t, hist, 1)
	assert.True(t, hist[0].Failed)
	assert.Contains(t, hist[0].AIResponse, "ERROR: ")
}

func TestSend_Fallback(t *testing.T) {
	ctx := context.Background()
	withKey := defaultConfig()
	withKey.DeepseekKey = "sk-1"

	exhausted := &keyrotation.GenerationError{Kind: keyrotation.KindAllCredentialsExhausted}

	t.Run("used", func(t *testing.T) {
		comp := &mockCompleter{reply: "from deepseek"}
		var boundKey string
		fb := func(key string) (Completer, error) {
			boundKey = key
			return comp, nil
		}
		uc := newTestUseCase(withKey, &mockGenerator{err: exhausted}, fb, Options{})

		out, err := uc.Send(ctx, alice, chat.SendInput{Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, chat.SourceDeepseek, out.Source)
		assert.Equal(t, "from deepseek", out.Reply)
		assert.Equal(t, "sk-1", boundKey)
		require.Len(t, comp.prompts, 1)
		assert.Contains(t, comp.prompts[0], "User: hello")
	})

	t.Run("skipped without key", func(t *testing.T) {
		called := false
		fb := func(string) (Completer, error) {
			called = true
			return &mockCompleter{}, nil
		}
		uc := newTestUseCase(defaultConfig(), &mockGenerator{err: exhausted}, fb, Options{})

		_, err := uc.Send(ctx, alice, chat.SendInput{Message: "hello"})
		assert.ErrorIs(t, err, keyrotation.ErrAllCredentialsExhausted)
		assert.False(t, called)
	})

	t.Run("skipped for other errors", func(t *testing.T) {
		called := false
		fb := func(string) (Completer, error) {
			called = true
			return &mockCompleter{}, nil
		}
		uc := newTestUseCase(withKey, &mockGenerator{err: context.Canceled}, fb, Options{})

		_, err := uc.Send(ctx, alice, chat.SendInput{Message: "hello"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("fallback failure returns primary error", func(t *testing.T) {
		fb := func(string) (Completer, error) {
			return &mockCompleter{err: errors.New("deepseek: API error 500")}, nil
		}
		uc := newTestUseCase(withKey, &mockGenerator{err: exhausted}, fb, Options{})

		_, err := uc.Send(ctx, alice, chat.SendInput{Message: "hello"})
		assert.ErrorIs(t, err, keyrotation.ErrAllCredentialsExhausted)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(defaultConfig(), &mockGenerator{reply: "ok"}, nil, Options{HistorySize: 3})

	for i := 0; i < 5; i++ {
		_, err := uc.Send(ctx, alice, chat.SendInput{Message: fmt.Sprintf("msg %d", i)})
		require.NoError(t, err)
	}

	hist, err := uc.History(ctx, alice)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, "msg 4", hist[0].UserMessage, "newest first")
	assert.Equal(t, "msg 2", hist[2].UserMessage)

	bob := scope.Scope{UserID: "u2", Username: "bob"}
	other, err := uc.History(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, uc.ClearHistory(ctx, alice))
	hist, _ = uc.History(ctx, alice)
	assert.Empty(t, hist)
}
