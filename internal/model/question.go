package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeShortAnswer    = "short_answer"
)

// Question belongs to a quiz. Options is the ordered list of choices shown to
// participants (multiple_choice only); CorrectAnswers holds the declared
// correct value(s) — a single stringified boolean for true_false, one or more
// accepted literals for short_answer, one or more option values for
// multiple_choice.
type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	QuizID         uint           `json:"quiz_id" gorm:"not null;index"`
	Type           string         `json:"type" gorm:"not null"` // "multiple_choice", "true_false", "short_answer"
	Prompt         string         `json:"prompt" gorm:"type:text;not null"`
	Options        []string       `json:"options,omitempty" gorm:"serializer:json"`
	CorrectAnswers []string       `json:"correct_answers,omitempty" gorm:"serializer:json"`
	Points         int            `json:"points" gorm:"not null;default:10"`
	TimeLimit      int            `json:"time_limit" gorm:"not null;default:30"` // seconds
	Position       int            `json:"position" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
