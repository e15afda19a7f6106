package quizmock

import (
	"context"

	domain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/quiz"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn            func(ctx context.Context) ([]domain.Question, error)
	GetByQuestionIDFn func(ctx context.Context, questionID string) (*domain.Question, error)
	CountFn           func(ctx context.Context) (int64, error)
	CreateBatchFn     func(ctx context.Context, qs []domain.Question) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Question, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByQuestionID(ctx context.Context, questionID string) (*domain.Question, error) {
	if m.GetByQuestionIDFn != nil {
		return m.GetByQuestionIDFn(ctx, questionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CreateBatch(ctx context.Context, qs []domain.Question) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, qs)
	}
	return nil
}
