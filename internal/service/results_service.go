package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/grading"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"gorm.io/gorm"
)

// ResultsService derives session statistics on demand from persisted rows.
type ResultsService interface {
	GetSessionResults(code string) (*dto.SessionResultsDTO, error)
}

type resultsService struct {
	sessionRepo     repository.SessionRepository
	participantRepo repository.ParticipantRepository
	answerRepo      repository.AnswerRepository
}

func NewResultsService(
	sessionRepo repository.SessionRepository,
	participantRepo repository.ParticipantRepository,
	answerRepo repository.AnswerRepository,
) ResultsService {
	return &resultsService{
		sessionRepo:     sessionRepo,
		participantRepo: participantRepo,
		answerRepo:      answerRepo,
	}
}

func (s *resultsService) GetSessionResults(code string) (*dto.SessionResultsDTO, error) {
	session, err := s.sessionRepo.FindByCodeWithQuiz(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error fetching session %s: %w", code, err)
	}

	participants, err := s.participantRepo.FindBySessionID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching participants for session %s: %w", code, err)
	}
	answers, err := s.answerRepo.FindBySessionID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching answers for session %s: %w", code, err)
	}

	stats := grading.Aggregate(session.Quiz.Questions, participants, answers)

	resp := &dto.SessionResultsDTO{
		Code:         session.Code,
		Status:       session.Status,
		QuizTitle:    session.Quiz.Title,
		Statistics:   stats,
		Participants: make([]dto.ParticipantResponseDTO, 0, len(participants)),
	}
	for _, p := range participants {
		var pDto dto.ParticipantResponseDTO
		if err := copier.Copy(&pDto, &p); err != nil {
			log.Warn().Err(err).Uint("participantID", p.ID).Msg("GetSessionResults: copy failed, skipping participant")
			continue
		}
		resp.Participants = append(resp.Participants, pDto)
	}
	return resp, nil
}
