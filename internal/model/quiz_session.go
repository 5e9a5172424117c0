package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionStatusWaiting   = "waiting"
	SessionStatusActive    = "active"
	SessionStatusPaused    = "paused"
	SessionStatusCompleted = "completed"
)

// QuizSession is one live run of a quiz. Participants join with the session
// code; the host drives the status transitions.
type QuizSession struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	QuizID               uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz                 Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	HostID               *uint          `json:"host_id,omitempty" gorm:"index"`
	Code                 string         `json:"code" gorm:"uniqueIndex;not null"`
	Status               string         `json:"status" gorm:"not null;default:'waiting'"` // "waiting", "active", "paused", "completed"
	CurrentQuestionIndex int            `json:"current_question_index" gorm:"not null;default:-1"`
	AllowLateJoin        bool           `json:"allow_late_join" gorm:"not null;default:false"`
	StartedAt            *time.Time     `json:"started_at,omitempty"`
	EndedAt              *time.Time     `json:"ended_at,omitempty"`
	Participants         []Participant  `json:"participants,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// CanTransitionTo reports whether moving from the current status to next is a
// legal step of the session lifecycle: waiting -> active <-> paused ->
// completed, with completed terminal.
func (s *QuizSession) CanTransitionTo(next string) bool {
	switch s.Status {
	case SessionStatusWaiting:
		return next == SessionStatusActive
	case SessionStatusActive:
		return next == SessionStatusPaused || next == SessionStatusCompleted
	case SessionStatusPaused:
		return next == SessionStatusActive || next == SessionStatusCompleted
	default:
		return false
	}
}

// CanJoin is true while the session is waiting, or while it is active if the
// host allowed late joining.
func (s *QuizSession) CanJoin() bool {
	if s.Status == SessionStatusWaiting {
		return true
	}
	return s.Status == SessionStatusActive && s.AllowLateJoin
}

// AcceptsAnswers is true only while the session is active.
func (s *QuizSession) AcceptsAnswers() bool {
	return s.Status == SessionStatusActive
}
