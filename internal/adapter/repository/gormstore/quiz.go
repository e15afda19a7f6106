package gormstore

import (
	"context"
	"errors"

	quizDomain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/quiz"

	"gorm.io/gorm"
)

type QuizRepository struct{ db *gorm.DB }

func NewQuizRepository(db *gorm.DB) *QuizRepository { return &QuizRepository{db: db} }

// Migrate creates or updates the quiz tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&quizDomain.Question{})
}

func (r *QuizRepository) List(ctx context.Context) ([]quizDomain.Question, error) {
	var out []quizDomain.Question
	res := r.db.WithContext(ctx).Order("position ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *QuizRepository) GetByQuestionID(ctx context.Context, questionID string) (*quizDomain.Question, error) {
	var out quizDomain.Question
	res := r.db.WithContext(ctx).Where("question_id = ?", questionID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, quizDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *QuizRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&quizDomain.Question{}).Count(&n)
	return n, res.Error
}

func (r *QuizRepository) CreateBatch(ctx context.Context, qs []quizDomain.Question) error {
	if len(qs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&qs).Error
	})
}
