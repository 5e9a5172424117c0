package repository

import (
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindBySessionID(sessionID uint) ([]model.Answer, error)
	FindByParticipantID(participantID uint) ([]model.Answer, error)
	Exists(participantID, questionID uint) (bool, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindBySessionID(sessionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("session_id = ?", sessionID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByParticipantID(participantID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("participant_id = ?", participantID).Order("created_at ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) Exists(participantID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("participant_id = ? AND question_id = ?", participantID, questionID).
		Count(&count).Error
	return count > 0, err
}
