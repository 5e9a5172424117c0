package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"gorm.io/gorm"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	UpdateQuiz(quizID uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(quizID uint) error
	AddQuestion(quizID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(quizID, questionID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(quizID, questionID uint) error
}

type adminQuizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo, questionRepo: questionRepo}
}

func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	positions := make(map[int]bool)
	var questions []model.Question

	for _, qDto := range req.Questions {
		if positions[qDto.Position] {
			return nil, fmt.Errorf("duplicate question position %d", qDto.Position)
		}
		positions[qDto.Position] = true

		if err := validateQuestion(qDto); err != nil {
			return nil, err
		}

		var questionModel model.Question
		copier.Copy(&questionModel, &qDto)
		if questionModel.TimeLimit == 0 {
			questionModel.TimeLimit = 30
		}
		questions = append(questions, questionModel)
	}

	quizModel := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Questions:   questions,
	}

	if err := s.quizRepo.Create(&quizModel); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quizModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizModel.ID).Msg("Failed to reload created quiz for response")
		var fallbackResp dto.QuizResponseDTO
		copier.Copy(&fallbackResp, &quizModel)
		return &fallbackResp, nil
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminQuizService) UpdateQuiz(quizID uint, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, fmt.Errorf("database error updating quiz %d: %w", quizID, err)
	}

	var resp dto.QuizResponseDTO
	copier.Copy(&resp, quiz)
	return &resp, nil
}

func (s *adminQuizService) DeleteQuiz(quizID uint) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	return s.quizRepo.Delete(quizID)
}

func (s *adminQuizService) AddQuestion(quizID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	existing, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for quiz %d: %w", quizID, err)
	}
	for _, q := range existing {
		if q.Position == req.Position {
			return nil, fmt.Errorf("quiz %d already has a question at position %d", quizID, req.Position)
		}
	}

	var questionModel model.Question
	copier.Copy(&questionModel, &req)
	questionModel.QuizID = quizID
	if questionModel.TimeLimit == 0 {
		questionModel.TimeLimit = 30
	}
	if err := s.questionRepo.Create(&questionModel); err != nil {
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &questionModel)
	return &resp, nil
}

// UpdateQuestion replaces the question's content wholesale; the payload is
// validated the same way as on creation.
func (s *adminQuizService) UpdateQuestion(quizID, questionID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.findQuizQuestion(quizID, questionID)
	if err != nil {
		return nil, err
	}

	if err := validateQuestion(req); err != nil {
		return nil, err
	}
	if req.Position != question.Position {
		siblings, err := s.questionRepo.FindByQuizID(quizID)
		if err != nil {
			return nil, fmt.Errorf("error fetching questions for quiz %d: %w", quizID, err)
		}
		for _, q := range siblings {
			if q.ID != question.ID && q.Position == req.Position {
				return nil, fmt.Errorf("quiz %d already has a question at position %d", quizID, req.Position)
			}
		}
	}

	question.Type = req.Type
	question.Prompt = req.Prompt
	question.Options = req.Options
	question.CorrectAnswers = req.CorrectAnswers
	question.Points = req.Points
	question.Position = req.Position
	question.TimeLimit = req.TimeLimit
	if question.TimeLimit == 0 {
		question.TimeLimit = 30
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("database error updating question %d: %w", questionID, err)
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *adminQuizService) DeleteQuestion(quizID, questionID uint) error {
	if _, err := s.findQuizQuestion(quizID, questionID); err != nil {
		return err
	}
	return s.questionRepo.Delete(questionID)
}

func (s *adminQuizService) findQuizQuestion(quizID, questionID uint) (*model.Question, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotInQuiz
		}
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}
	if question.QuizID != quizID {
		return nil, ErrQuestionNotInQuiz
	}
	return question, nil
}

// validateQuestion enforces the per-type content invariants: multiple_choice
// needs at least two options and every correct value must be one of them;
// true_false needs exactly one boolean correct value; short_answer needs at
// least one accepted literal.
func validateQuestion(q dto.QuestionCreateDTO) error {
	switch q.Type {
	case model.QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("question at position %d: multiple_choice requires at least 2 options", q.Position)
		}
		for _, correct := range q.CorrectAnswers {
			if !containsFold(q.Options, correct) {
				return fmt.Errorf("question at position %d: correct answer %q is not among the options", q.Position, correct)
			}
		}
	case model.QuestionTypeTrueFalse:
		if len(q.CorrectAnswers) != 1 {
			return fmt.Errorf("question at position %d: true_false requires exactly one correct answer", q.Position)
		}
		if _, err := strconv.ParseBool(strings.ToLower(q.CorrectAnswers[0])); err != nil {
			return fmt.Errorf("question at position %d: correct answer %q is not a boolean", q.Position, q.CorrectAnswers[0])
		}
	case model.QuestionTypeShortAnswer:
		for _, accepted := range q.CorrectAnswers {
			if strings.TrimSpace(accepted) == "" {
				return fmt.Errorf("question at position %d: accepted answers must be non-empty", q.Position)
			}
		}
	default:
		return fmt.Errorf("question at position %d: unsupported type %q", q.Position, q.Type)
	}
	return nil
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
