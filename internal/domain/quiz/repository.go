package quiz

import "context"

type Repository interface {
	// List all questions ordered by position
	List(ctx context.Context) ([]Question, error)

	// Get by public question_id; ErrNotFound when missing
	GetByQuestionID(ctx context.Context, questionID string) (*Question, error)

	Count(ctx context.Context) (int64, error)

	// Create inserts all questions in one transaction
	CreateBatch(ctx context.Context, qs []Question) error
}
