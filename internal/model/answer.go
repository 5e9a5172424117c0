package model

import (
	"time"
)

// Answer is one graded submission. Rows are immutable once created; the
// composite unique index rejects a second answer for the same
// (participant, question) pair at the storage layer.
type Answer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SessionID     uint      `json:"session_id" gorm:"not null;index"`
	ParticipantID uint      `json:"participant_id" gorm:"not null;uniqueIndex:idx_participant_question"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_participant_question"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Value         string    `json:"value" gorm:"type:text;not null"` // raw submitted JSON, kept verbatim
	IsCorrect     bool      `json:"is_correct" gorm:"not null"`
	Points        int       `json:"points" gorm:"not null"`
	ResponseTime  float64   `json:"response_time" gorm:"not null"` // seconds
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
