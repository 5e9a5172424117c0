package repository

import (
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllWithQuestionCount() ([]struct {
		model.Quiz
		QuestionCount int
	}, error)
	Update(quiz *model.Quiz) error
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates associated questions when quiz.Questions is populated.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindAllWithQuestionCount() ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	var results []struct {
		model.Quiz
		QuestionCount int
	}
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.deleted_at IS NULL").
		Order("quizzes.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Delete(&model.Quiz{}, id).Error
}
