package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/grading"
	"github.com/saqh5037/quizApp-sub002/internal/livestate"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"gorm.io/gorm"
)

// SubmissionService is the answer pipeline: boundary checks, decode, grade,
// accumulate, persist — one transaction per submission.
type SubmissionService interface {
	SubmitAnswer(ctx context.Context, code string, req dto.SubmitAnswerDTO) (*dto.AnswerResultDTO, error)
}

type submissionService struct {
	sessionRepo     repository.SessionRepository
	participantRepo repository.ParticipantRepository
	answerRepo      repository.AnswerRepository
	state           *livestate.Store
	db              *gorm.DB // transactions span answer + participant rows
}

func NewSubmissionService(
	sessionRepo repository.SessionRepository,
	participantRepo repository.ParticipantRepository,
	answerRepo repository.AnswerRepository,
	state *livestate.Store,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		sessionRepo:     sessionRepo,
		participantRepo: participantRepo,
		answerRepo:      answerRepo,
		state:           state,
		db:              db,
	}
}

func (s *submissionService) SubmitAnswer(ctx context.Context, code string, req dto.SubmitAnswerDTO) (*dto.AnswerResultDTO, error) {
	session, err := s.sessionRepo.FindByCodeWithQuiz(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error fetching session %s: %w", code, err)
	}
	if !session.AcceptsAnswers() {
		return nil, ErrSessionClosed
	}

	participant, err := s.participantRepo.FindByID(req.ParticipantID)
	if err != nil || participant.SessionID != session.ID {
		return nil, ErrParticipantNotFound
	}

	var question *model.Question
	for i := range session.Quiz.Questions {
		if session.Quiz.Questions[i].ID == req.QuestionID {
			question = &session.Quiz.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, ErrQuestionNotInQuiz
	}

	// Cheap pre-check; the unique index is the real guard under concurrency.
	exists, err := s.answerRepo.Exists(participant.ID, question.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking for existing answer: %w", err)
	}
	if exists {
		return nil, ErrDuplicateAnswer
	}

	// A submission whose shape does not match the question type is graded
	// incorrect, not rejected.
	isCorrect := false
	value, decodeErr := grading.DecodeAnswer(question.Type, req.Value)
	if decodeErr != nil {
		log.Warn().Err(decodeErr).
			Uint("participantID", participant.ID).
			Uint("questionID", question.ID).
			Msg("SubmitAnswer: malformed answer shape, grading as incorrect")
	} else {
		isCorrect = grading.Evaluate(question, value)
	}

	responseTime := resolveResponseTime(req.ResponseTime, question.TimeLimit)

	answer := model.Answer{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
		QuestionID:    question.ID,
		Value:         string(req.Value),
		IsCorrect:     isCorrect,
		ResponseTime:  responseTime,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		answer.Points = grading.ApplyAnswer(participant, question, isCorrect, responseTime, float64(question.TimeLimit))
		if participant.AnsweredQuestions >= len(session.Quiz.Questions) {
			participant.Status = model.ParticipantStatusFinished
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		return tx.Save(participant).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAnswer
		}
		log.Error().Err(err).Uint("participantID", participant.ID).Msg("SubmitAnswer: transaction failed")
		return nil, fmt.Errorf("database error recording answer: %w", err)
	}

	s.refreshSnapshot(ctx, session)

	return &dto.AnswerResultDTO{
		AnswerID:          answer.ID,
		QuestionID:        question.ID,
		IsCorrect:         isCorrect,
		Points:            answer.Points,
		TotalScore:        participant.Score,
		AnsweredQuestions: participant.AnsweredQuestions,
		ResponseTime:      responseTime,
	}, nil
}

// resolveResponseTime keeps a reported time as-is, zero included: answering
// instantly is the best case, not a missing value. Only an absent or negative
// report falls back to the question's time limit (no speed bonus).
func resolveResponseTime(reported *float64, timeLimit int) float64 {
	if reported == nil || *reported < 0 {
		return float64(timeLimit)
	}
	return *reported
}

func (s *submissionService) refreshSnapshot(ctx context.Context, session *model.QuizSession) {
	participants, err := s.participantRepo.FindBySessionID(session.ID)
	if err != nil {
		log.Warn().Err(err).Str("code", session.Code).Msg("Snapshot refresh after answer failed")
		return
	}
	snap := buildSnapshot(session, participants, len(session.Quiz.Questions))
	if err := s.state.Save(ctx, snap); err != nil {
		log.Warn().Err(err).Str("code", session.Code).Msg("Failed to store session snapshot")
	}
}
