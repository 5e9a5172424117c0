package dto

import "time"

// QuestionCreateDTO is used within QuizCreateDTO and for adding questions to
// an existing quiz.
type QuestionCreateDTO struct {
	Type           string   `json:"type" binding:"required,oneof=multiple_choice true_false short_answer"`
	Prompt         string   `json:"prompt" binding:"required"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers" binding:"required,min=1"`
	Points         int      `json:"points" binding:"required,gt=0"`
	TimeLimit      int      `json:"time_limit" binding:"omitempty,gt=0"`
	Position       int      `json:"position" binding:"required,min=1"`
}

// QuizCreateDTO is for creating a new quiz with all its questions.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuizUpdateDTO updates quiz metadata only; questions are managed separately.
type QuizUpdateDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// QuestionResponseDTO includes the declared correct answers; only admin
// endpoints return it. Participants see PlayQuestionDTO instead.
type QuestionResponseDTO struct {
	ID             uint     `json:"id"`
	QuizID         uint     `json:"quiz_id"`
	Type           string   `json:"type"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options,omitempty"`
	CorrectAnswers []string `json:"correct_answers,omitempty"`
	Points         int      `json:"points"`
	TimeLimit      int      `json:"time_limit"`
	Position       int      `json:"position"`
}

// PlayQuestionDTO is a question as shown to participants: no correct answers.
type PlayQuestionDTO struct {
	ID        uint     `json:"id"`
	Type      string   `json:"type"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options,omitempty"`
	Points    int      `json:"points"`
	TimeLimit int      `json:"time_limit"`
	Position  int      `json:"position"`
}

// QuizDetailDTO is the public quiz view: questions are included in play
// order but stripped of their correct answers, like PlayQuestionDTO.
type QuizDetailDTO struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []PlayQuestionDTO `json:"questions,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// GenerateQuestionsDTO asks the AI generator for question drafts on a topic.
type GenerateQuestionsDTO struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count" binding:"omitempty,min=1,max=20"`
	Type  string `json:"type" binding:"omitempty,oneof=multiple_choice true_false short_answer"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
