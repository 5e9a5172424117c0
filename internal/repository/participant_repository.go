package repository

import (
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(participant *model.Participant) error
	FindByID(id uint) (*model.Participant, error)
	FindBySessionID(sessionID uint) ([]model.Participant, error)
	NicknameExists(sessionID uint, nickname string) (bool, error)
	Update(participant *model.Participant) error
	FinishAllInSession(sessionID uint) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(participant *model.Participant) error {
	return r.db.Create(participant).Error
}

func (r *participantRepository) FindByID(id uint) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindBySessionID(sessionID uint) ([]model.Participant, error) {
	var participants []model.Participant
	if err := r.db.Where("session_id = ?", sessionID).Order("score DESC, joined_at ASC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) NicknameExists(sessionID uint, nickname string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Participant{}).
		Where("session_id = ? AND nickname = ?", sessionID, nickname).
		Count(&count).Error
	return count > 0, err
}

func (r *participantRepository) Update(participant *model.Participant) error {
	return r.db.Save(participant).Error
}

func (r *participantRepository) FinishAllInSession(sessionID uint) error {
	return r.db.Model(&model.Participant{}).
		Where("session_id = ?", sessionID).
		Update("status", model.ParticipantStatusFinished).Error
}
