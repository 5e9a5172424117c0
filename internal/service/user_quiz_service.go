package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"gorm.io/gorm"
)

type UserQuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error)
}

type userQuizService struct {
	quizRepo repository.QuizRepository
}

func NewUserQuizService(quizRepo repository.QuizRepository) UserQuizService {
	return &userQuizService{quizRepo: quizRepo}
}

func (s *userQuizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: repository error")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		var summary dto.QuizSummaryDTO
		copier.Copy(&summary, &q.Quiz)
		summary.QuestionCount = q.QuestionCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetQuizDetails is the participant view: correct answers never leave the
// server on this path, only admin endpoints return them.
func (s *userQuizService) GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
