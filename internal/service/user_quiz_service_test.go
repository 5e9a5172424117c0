package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/saqh5037/quizApp-sub002/internal/model"
	"gorm.io/gorm"
)

type stubQuizRepository struct {
	quiz *model.Quiz
}

func (r *stubQuizRepository) Create(quiz *model.Quiz) error { return nil }

func (r *stubQuizRepository) FindByID(id uint) (*model.Quiz, error) {
	if r.quiz == nil || r.quiz.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.quiz, nil
}

func (r *stubQuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	return r.FindByID(id)
}

func (r *stubQuizRepository) FindAllWithQuestionCount() ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	return nil, nil
}

func (r *stubQuizRepository) Update(quiz *model.Quiz) error { return nil }
func (r *stubQuizRepository) Delete(id uint) error          { return nil }

func capitalsQuiz() *model.Quiz {
	quiz := &model.Quiz{
		Title: "Capitals",
		Questions: []model.Question{
			{
				Type:           model.QuestionTypeMultipleChoice,
				Prompt:         "Capital of France?",
				Options:        []string{"Paris", "Lyon", "Nice"},
				CorrectAnswers: []string{"Paris"},
				Points:         10,
				TimeLimit:      30,
				Position:       1,
			},
			{
				Type:           model.QuestionTypeTrueFalse,
				Prompt:         "Berlin is in Germany",
				CorrectAnswers: []string{"true"},
				Points:         10,
				TimeLimit:      20,
				Position:       2,
			},
		},
	}
	quiz.ID = 1
	quiz.Questions[0].ID = 11
	quiz.Questions[1].ID = 12
	return quiz
}

func TestGetQuizDetailsStripsCorrectAnswers(t *testing.T) {
	svc := NewUserQuizService(&stubQuizRepository{quiz: capitalsQuiz()})

	details, err := svc.GetQuizDetails(1)
	if err != nil {
		t.Fatalf("GetQuizDetails failed: %v", err)
	}
	if len(details.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(details.Questions))
	}
	if details.Questions[0].Prompt != "Capital of France?" || len(details.Questions[0].Options) != 3 {
		t.Errorf("question content not carried over: %+v", details.Questions[0])
	}

	payload, err := json.Marshal(details)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(payload), "correct_answers") {
		t.Errorf("public quiz details leak correct answers: %s", payload)
	}
	if !strings.Contains(string(payload), `"Paris","Lyon"`) {
		t.Errorf("options missing from public quiz details: %s", payload)
	}
}

func TestGetQuizDetailsNotFound(t *testing.T) {
	svc := NewUserQuizService(&stubQuizRepository{})
	if _, err := svc.GetQuizDetails(99); err != ErrQuizNotFound {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}
