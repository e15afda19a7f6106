package quiz

import (
	"context"
	"errors"
	"testing"

	domain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/quiz"
	"github.com/AashmanShukla3223/Financial-Golf/internal/testutil/quizmock"
)

func TestSeed_EmptyStoreInsertsBank(t *testing.T) {
	var inserted []domain.Question
	uc := NewUsecase(&quizmock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 0, nil },
		CreateBatchFn: func(ctx context.Context, qs []domain.Question) error {
			inserted = qs
			return nil
		},
	})

	n, err := uc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed err: %v", err)
	}
	if n != len(domain.DefaultBank()) || len(inserted) != n {
		t.Fatalf("seeded %d, inserted %d", n, len(inserted))
	}
}

func TestSeed_NonEmptyStoreIsNoop(t *testing.T) {
	uc := NewUsecase(&quizmock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 3, nil },
		CreateBatchFn: func(ctx context.Context, qs []domain.Question) error {
			t.Fatalf("CreateBatch must not be called when questions exist")
			return nil
		},
	})
	n, err := uc.Seed(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Seed = %d, %v; want 0, nil", n, err)
	}
}

func TestSeed_CountError(t *testing.T) {
	uc := NewUsecase(&quizmock.Repo{
		CountFn: func(ctx context.Context) (int64, error) { return 0, errors.New("db down") },
	})
	if _, err := uc.Seed(context.Background()); err == nil {
		t.Fatal("want error")
	}
}

func TestList_MapsQuestions(t *testing.T) {
	uc := NewUsecase(&quizmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Question, error) {
			return []domain.Question{
				{QuestionID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Prompt: "What is inflation?", Options: []string{"a", "b"}, Answer: 0},
			}, nil
		},
	})
	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" || got[0].Question != "What is inflation?" {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestAnswer(t *testing.T) {
	const qid = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	repo := &quizmock.Repo{
		GetByQuestionIDFn: func(ctx context.Context, questionID string) (*domain.Question, error) {
			if questionID != qid {
				return nil, domain.ErrNotFound
			}
			return &domain.Question{QuestionID: qid, Options: []string{"x", "y", "z"}, Answer: 2}, nil
		},
	}
	uc := NewUsecase(repo)
	ctx := context.Background()

	dto, err := uc.Answer(ctx, qid, 2)
	if err != nil {
		t.Fatalf("Answer err: %v", err)
	}
	if !dto.Correct || dto.Answer != 2 || dto.Selected != 2 {
		t.Fatalf("unexpected dto: %+v", dto)
	}

	dto, err = uc.Answer(ctx, qid, 0)
	if err != nil || dto.Correct {
		t.Fatalf("Answer(0) = %+v, %v; want incorrect", dto, err)
	}

	if _, err := uc.Answer(ctx, qid, 3); !errors.Is(err, domain.ErrOptionOutOfRange) {
		t.Fatalf("err = %v, want ErrOptionOutOfRange", err)
	}
	if _, err := uc.Answer(ctx, "cccccccccccccccccccccccccccccccc", 0); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
