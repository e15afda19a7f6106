package gormstore

import (
	"context"
	"errors"
	"testing"

	domain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/quiz"
	"github.com/AashmanShukla3223/Financial-Golf/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the quiz schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	// one connection, otherwise each pooled conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeQuestion(pos int, prompt string, answer int, options ...string) domain.Question {
	return domain.Question{
		QuestionID: id.Derive("test", prompt),
		Position:   pos,
		Prompt:     prompt,
		Options:    options,
		Answer:     answer,
	}
}

func TestCreateBatchAndList_OrderedByPosition(t *testing.T) {
	repo := NewQuizRepository(openTestDB(t))
	ctx := context.Background()

	qs := []domain.Question{
		makeQuestion(2, "second", 0, "x", "y"),
		makeQuestion(1, "first", 1, "a", "b", "c"),
	}
	if err := repo.CreateBatch(ctx, qs); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Prompt != "first" || got[1].Prompt != "second" {
		t.Fatalf("order = %q, %q", got[0].Prompt, got[1].Prompt)
	}
	// options round-trip through the json serializer
	if len(got[0].Options) != 3 || got[0].Options[2] != "c" {
		t.Fatalf("options = %v", got[0].Options)
	}
	if got[0].ID == 0 || got[0].CreatedAt.IsZero() {
		t.Fatalf("auto fields not set: %+v", got[0])
	}
}

func TestGetByQuestionID(t *testing.T) {
	repo := NewQuizRepository(openTestDB(t))
	ctx := context.Background()

	q := makeQuestion(1, "What is ROI?", 1, "Rate of Inflation", "Return on Investment")
	if err := repo.CreateBatch(ctx, []domain.Question{q}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.GetByQuestionID(ctx, q.QuestionID)
	if err != nil {
		t.Fatalf("GetByQuestionID: %v", err)
	}
	if got.Prompt != q.Prompt || got.Answer != 1 {
		t.Fatalf("unexpected question: %+v", got)
	}

	if _, err := repo.GetByQuestionID(ctx, id.Derive("missing")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCount(t *testing.T) {
	repo := NewQuizRepository(openTestDB(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Count = %d, %v; want 0", n, err)
	}
	if err := repo.CreateBatch(ctx, domain.DefaultBank()); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	n, err = repo.Count(ctx)
	if err != nil || n != int64(len(domain.DefaultBank())) {
		t.Fatalf("Count = %d, %v; want %d", n, err, len(domain.DefaultBank()))
	}
}

func TestCreateBatch_DuplicateIDRollsBack(t *testing.T) {
	repo := NewQuizRepository(openTestDB(t))
	ctx := context.Background()

	a := makeQuestion(1, "dup", 0, "x")
	b := makeQuestion(2, "dup", 0, "y") // same derived id
	if err := repo.CreateBatch(ctx, []domain.Question{a, b}); err == nil {
		t.Fatal("expected unique constraint error")
	}
	n, _ := repo.Count(ctx)
	if n != 0 {
		t.Fatalf("Count after failed batch = %d, want 0", n)
	}
}

func TestCreateBatch_Empty(t *testing.T) {
	repo := NewQuizRepository(openTestDB(t))
	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("CreateBatch(nil): %v", err)
	}
}
