package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ParticipantStatusJoined   = "joined"
	ParticipantStatusFinished = "finished"
)

// Participant is one player within a session. Score, the answer counters and
// AverageResponseTime are running accumulators maintained by the grading
// package as answers arrive.
type Participant struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	SessionID           uint           `json:"session_id" gorm:"not null;index;uniqueIndex:idx_session_nickname"`
	Nickname            string         `json:"nickname" gorm:"not null;uniqueIndex:idx_session_nickname"`
	UserID              *uint          `json:"user_id,omitempty" gorm:"index"`
	Score               int            `json:"score" gorm:"not null;default:0"`
	AnsweredQuestions   int            `json:"answered_questions" gorm:"not null;default:0"`
	CorrectAnswers      int            `json:"correct_answers" gorm:"not null;default:0"`
	AverageResponseTime float64        `json:"average_response_time" gorm:"not null;default:0"` // seconds
	Status              string         `json:"status" gorm:"not null;default:'joined'"`         // "joined", "finished"
	JoinedAt            time.Time      `json:"joined_at" gorm:"autoCreateTime"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}
