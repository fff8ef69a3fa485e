package usecase

import (
	"strings"
	"sync"

	"central-gpt/internal/appconfig"
	"central-gpt/internal/appconfig/repository"
	"central-gpt/pkg/log"
)

// implUseCase is the private implementation of appconfig.UseCase.
type implUseCase struct {
	// mu serializes read-modify-write cycles on the config row.
	mu sync.Mutex

	repo        repository.Repository
	l           log.Logger
	sink        appconfig.KeySink
	fallbackKey string
}

// New creates the appconfig UseCase. fallbackKey is the key from the process
// environment; sink may be nil when nothing consumes the key pool.
func New(repo repository.Repository, l log.Logger, sink appconfig.KeySink, fallbackKey string) *implUseCase {
	return &implUseCase{
		repo:        repo,
		l:           l,
		sink:        sink,
		fallbackKey: strings.TrimSpace(fallbackKey),
	}
}
