package repository

import (
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.QuizSession) error
	FindByCodeWithQuiz(code string) (*model.QuizSession, error)
	CodeExists(code string) (bool, error)
	Update(session *model.QuizSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.QuizSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByCodeWithQuiz(code string) (*model.QuizSession, error) {
	var session model.QuizSession
	err := r.db.
		Preload("Quiz").
		Preload("Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Where("code = ?", code).First(&session).Error
	return &session, err
}

func (r *sessionRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.QuizSession{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *sessionRepository) Update(session *model.QuizSession) error {
	return r.db.Save(session).Error
}
