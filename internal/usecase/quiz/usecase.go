package quiz

import (
	"context"
	"fmt"
	"log"

	"github.com/AashmanShukla3223/Financial-Golf/internal/domain/quiz"
)

type Usecase struct{ repo quiz.Repository }

func NewUsecase(r quiz.Repository) *Usecase { return &Usecase{repo: r} }

// Seed inserts the default bank when the store is empty and returns how many
// questions were inserted.
func (u *Usecase) Seed(ctx context.Context) (int, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	bank := quiz.DefaultBank()
	if err := u.repo.CreateBatch(ctx, bank); err != nil {
		return 0, fmt.Errorf("seed questions: %w", err)
	}
	log.Printf("quiz: seeded %d questions", len(bank))
	return len(bank), nil
}

func (u *Usecase) List(ctx context.Context) ([]QuestionDTO, error) {
	qs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]QuestionDTO, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionDTO{ID: q.QuestionID, Question: q.Prompt, Options: q.Options, Answer: q.Answer})
	}
	return out, nil
}

func (u *Usecase) Answer(ctx context.Context, questionID string, selected int) (*AnswerDTO, error) {
	q, err := u.repo.GetByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !q.InRange(selected) {
		return nil, fmt.Errorf("%w: %d of %d", quiz.ErrOptionOutOfRange, selected, len(q.Options))
	}
	return &AnswerDTO{
		QuestionID: q.QuestionID,
		Selected:   selected,
		Correct:    q.IsCorrect(selected),
		Answer:     q.Answer,
	}, nil
}
