package usecase

import (
	"context"

	"central-gpt/internal/chat"
	"central-gpt/pkg/scope"
)

func (uc *implUseCase) record(userID string, e chat.Entry) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev, _ := uc.history.Get(userID)
	next := make([]chat.Entry, 0, min(len(prev)+1, uc.historySize))
	next = append(next, e)
	for _, p := range prev {
		if len(next) == uc.historySize {
			break
		}
		next = append(next, p)
	}
	uc.history.Add(userID, next)
}

func (uc *implUseCase) History(ctx context.Context, sc scope.Scope) ([]chat.Entry, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entries, ok := uc.history.Get(sc.UserID)
	if !ok {
		return []chat.Entry{}, nil
	}
	return append([]chat.Entry(nil), entries...), nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sc scope.Scope) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.history.Remove(sc.UserID)
	return nil
}
