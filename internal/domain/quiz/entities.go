package quiz

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("question not found")
	ErrOptionOutOfRange = errors.New("selected option out of range")
)

// Table: quiz_questions
type Question struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	QuestionID string    `gorm:"column:question_id;type:char(32);not null;uniqueIndex:ux_quiz_questions_question_id"`
	Position   int       `gorm:"column:position;not null;index"`
	Prompt     string    `gorm:"column:prompt;type:text;not null"`
	Options    []string  `gorm:"column:options;type:text;serializer:json;not null"`
	Answer     int       `gorm:"column:answer;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Question) TableName() string { return "quiz_questions" }

// IsCorrect reports whether selected is the answer index. Callers check range first.
func (q *Question) IsCorrect(selected int) bool { return selected == q.Answer }

func (q *Question) InRange(selected int) bool { return selected >= 0 && selected < len(q.Options) }
