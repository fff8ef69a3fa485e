package chat

import (
	"context"

	"central-gpt/pkg/scope"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Send runs one conversation turn for the caller and records it in history.
	Send(ctx context.Context, sc scope.Scope, input SendInput) (SendOutput, error)
	// History returns the caller's recorded turns, newest first.
	History(ctx context.Context, sc scope.Scope) ([]Entry, error)
	ClearHistory(ctx context.Context, sc scope.Scope) error
}
