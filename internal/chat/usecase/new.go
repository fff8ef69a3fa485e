package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"central-gpt/internal/appconfig"
	"central-gpt/internal/chat"
	"central-gpt/pkg/keyrotation"
	"central-gpt/pkg/log"
)

const (
	defaultHistorySize  = 50
	defaultHistoryUsers = 1000
	defaultHistoryTTL   = 24 * time.Hour
)

// Generator produces a reply through the key rotation client.
type Generator interface {
	Generate(ctx context.Context, req keyrotation.Request) (string, error)
}

// Completer is a text-only provider used when the primary generator gives up.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFactory binds a Completer to apiKey.
type CompleterFactory func(apiKey string) (Completer, error)

type Options struct {
	HistorySize     int
	HistoryUsers    int
	HistoryTTL      time.Duration
	PersonaTemplate string
	DevInfoTemplate string
}

type implUseCase struct {
	l        log.Logger
	configUC appconfig.UseCase
	gen      Generator
	fallback CompleterFactory

	persona string
	devInfo string

	mu          sync.Mutex
	history     *expirable.LRU[string, []chat.Entry]
	historySize int

	now func() time.Time
}

// New creates the chat use case. fallback may be nil to disable the secondary provider.
func New(l log.Logger, configUC appconfig.UseCase, gen Generator, fallback CompleterFactory, opt Options) *implUseCase {
	if opt.HistorySize <= 0 {
		opt.HistorySize = defaultHistorySize
	}
	if opt.HistoryUsers <= 0 {
		opt.HistoryUsers = defaultHistoryUsers
	}
	if opt.HistoryTTL <= 0 {
		opt.HistoryTTL = defaultHistoryTTL
	}
	if opt.PersonaTemplate == "" {
		opt.PersonaTemplate = chat.DefaultPersonaTemplate
	}
	if opt.DevInfoTemplate == "" {
		opt.DevInfoTemplate = chat.DefaultDevInfoTemplate
	}

	return &implUseCase{
		l:           l,
		configUC:    configUC,
		gen:         gen,
		fallback:    fallback,
		persona:     opt.PersonaTemplate,
		devInfo:     opt.DevInfoTemplate,
		history:     expirable.NewLRU[string, []chat.Entry](opt.HistoryUsers, nil, opt.HistoryTTL),
		historySize: opt.HistorySize,
		now:         time.Now,
	}
}
