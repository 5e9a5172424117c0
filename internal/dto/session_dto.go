package dto

import (
	"encoding/json"
	"time"

	"github.com/saqh5037/quizApp-sub002/internal/grading"
)

type SessionCreateDTO struct {
	QuizID        uint  `json:"quiz_id" binding:"required"`
	HostID        *uint `json:"host_id,omitempty"`
	AllowLateJoin bool  `json:"allow_late_join"`
}

type SessionResponseDTO struct {
	ID                   uint       `json:"id"`
	QuizID               uint       `json:"quiz_id"`
	Code                 string     `json:"code"`
	Status               string     `json:"status"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	AllowLateJoin        bool       `json:"allow_late_join"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	EndedAt              *time.Time `json:"ended_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type JoinSessionDTO struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=40"`
	UserID   *uint  `json:"user_id,omitempty"`
}

type ParticipantResponseDTO struct {
	ID                  uint    `json:"id"`
	SessionID           uint    `json:"session_id"`
	Nickname            string  `json:"nickname"`
	Score               int     `json:"score"`
	AnsweredQuestions   int     `json:"answered_questions"`
	CorrectAnswers      int     `json:"correct_answers"`
	AverageResponseTime float64 `json:"average_response_time"`
	Status              string  `json:"status"`
}

// SubmitAnswerDTO carries the raw answer value; its JSON shape is interpreted
// against the question's declared type, never guessed. ResponseTime is a
// pointer so an instantaneous answer (0 seconds, maximum speed bonus) is
// distinguishable from an omitted field.
type SubmitAnswerDTO struct {
	ParticipantID uint            `json:"participant_id" binding:"required"`
	QuestionID    uint            `json:"question_id" binding:"required"`
	Value         json.RawMessage `json:"value" binding:"required"`
	ResponseTime  *float64        `json:"response_time" binding:"omitempty,min=0"` // seconds
}

type AnswerResultDTO struct {
	AnswerID          uint    `json:"answer_id"`
	QuestionID        uint    `json:"question_id"`
	IsCorrect         bool    `json:"is_correct"`
	Points            int     `json:"points"`
	TotalScore        int     `json:"total_score"`
	AnsweredQuestions int     `json:"answered_questions"`
	ResponseTime      float64 `json:"response_time"`
}

type LeaderboardEntryDTO struct {
	ParticipantID uint   `json:"participant_id"`
	Nickname      string `json:"nickname"`
	Score         int    `json:"score"`
}

// SessionStateDTO is the polling payload: current status, the question in
// play (sanitized) and the leaderboard.
type SessionStateDTO struct {
	Code                 string                `json:"code"`
	Status               string                `json:"status"`
	CurrentQuestionIndex int                   `json:"current_question_index"`
	QuestionCount        int                   `json:"question_count"`
	CurrentQuestion      *PlayQuestionDTO      `json:"current_question,omitempty"`
	Leaderboard          []LeaderboardEntryDTO `json:"leaderboard"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

type SessionResultsDTO struct {
	Code         string                    `json:"code"`
	Status       string                    `json:"status"`
	QuizTitle    string                    `json:"quiz_title"`
	Statistics   grading.SessionStatistics `json:"statistics"`
	Participants []ParticipantResponseDTO  `json:"participants"`
}
