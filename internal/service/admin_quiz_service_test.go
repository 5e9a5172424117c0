package service

import (
	"testing"

	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"gorm.io/gorm"
)

type stubQuestionRepository struct {
	questions map[uint]*model.Question
	deleted   []uint
}

func newStubQuestionRepository(questions ...*model.Question) *stubQuestionRepository {
	repo := &stubQuestionRepository{questions: make(map[uint]*model.Question)}
	for _, q := range questions {
		repo.questions[q.ID] = q
	}
	return repo
}

func (r *stubQuestionRepository) Create(question *model.Question) error {
	question.ID = uint(len(r.questions) + 100)
	r.questions[question.ID] = question
	return nil
}

func (r *stubQuestionRepository) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (r *stubQuestionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.QuizID == quizID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuestionRepository) Update(question *model.Question) error {
	r.questions[question.ID] = question
	return nil
}

func (r *stubQuestionRepository) Delete(id uint) error {
	delete(r.questions, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func shortAnswerQuestion(id, quizID uint, position int) *model.Question {
	q := &model.Question{
		QuizID:         quizID,
		Type:           model.QuestionTypeShortAnswer,
		Prompt:         "Name a primary color",
		CorrectAnswers: []string{"red", "blue", "yellow"},
		Points:         10,
		TimeLimit:      30,
		Position:       position,
	}
	q.ID = id
	return q
}

func TestAddQuestionRejectsDuplicatePosition(t *testing.T) {
	quiz := capitalsQuiz()
	questionRepo := newStubQuestionRepository(shortAnswerQuestion(21, quiz.ID, 1))
	svc := NewAdminQuizService(&stubQuizRepository{quiz: quiz}, questionRepo)

	_, err := svc.AddQuestion(quiz.ID, dto.QuestionCreateDTO{
		Type:           model.QuestionTypeShortAnswer,
		Prompt:         "Name a planet",
		CorrectAnswers: []string{"mars"},
		Points:         10,
		Position:       1,
	})
	if err == nil {
		t.Fatal("expected duplicate-position error, got nil")
	}

	resp, err := svc.AddQuestion(quiz.ID, dto.QuestionCreateDTO{
		Type:           model.QuestionTypeShortAnswer,
		Prompt:         "Name a planet",
		CorrectAnswers: []string{"mars"},
		Points:         10,
		Position:       2,
	})
	if err != nil {
		t.Fatalf("AddQuestion at free position failed: %v", err)
	}
	if resp.TimeLimit != 30 {
		t.Errorf("expected default time limit 30, got %d", resp.TimeLimit)
	}
}

func TestUpdateQuestionReplacesContent(t *testing.T) {
	quiz := capitalsQuiz()
	question := shortAnswerQuestion(21, quiz.ID, 1)
	questionRepo := newStubQuestionRepository(question)
	svc := NewAdminQuizService(&stubQuizRepository{quiz: quiz}, questionRepo)

	resp, err := svc.UpdateQuestion(quiz.ID, question.ID, dto.QuestionCreateDTO{
		Type:           model.QuestionTypeTrueFalse,
		Prompt:         "Red is a primary color",
		CorrectAnswers: []string{"true"},
		Points:         20,
		TimeLimit:      15,
		Position:       1,
	})
	if err != nil {
		t.Fatalf("UpdateQuestion failed: %v", err)
	}
	if resp.Type != model.QuestionTypeTrueFalse || resp.Points != 20 || resp.TimeLimit != 15 {
		t.Errorf("question content not replaced: %+v", resp)
	}

	stored, _ := questionRepo.FindByID(question.ID)
	if stored.Prompt != "Red is a primary color" {
		t.Errorf("stored prompt = %q, want updated prompt", stored.Prompt)
	}
}

func TestUpdateQuestionWrongQuiz(t *testing.T) {
	quiz := capitalsQuiz()
	foreign := shortAnswerQuestion(77, quiz.ID+1, 1)
	svc := NewAdminQuizService(&stubQuizRepository{quiz: quiz}, newStubQuestionRepository(foreign))

	_, err := svc.UpdateQuestion(quiz.ID, foreign.ID, dto.QuestionCreateDTO{
		Type:           model.QuestionTypeShortAnswer,
		Prompt:         "x",
		CorrectAnswers: []string{"y"},
		Points:         10,
		Position:       1,
	})
	if err != ErrQuestionNotInQuiz {
		t.Fatalf("expected ErrQuestionNotInQuiz, got %v", err)
	}
}

func TestDeleteQuestion(t *testing.T) {
	quiz := capitalsQuiz()
	question := shortAnswerQuestion(21, quiz.ID, 1)
	questionRepo := newStubQuestionRepository(question)
	svc := NewAdminQuizService(&stubQuizRepository{quiz: quiz}, questionRepo)

	if err := svc.DeleteQuestion(quiz.ID, question.ID); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if len(questionRepo.deleted) != 1 || questionRepo.deleted[0] != question.ID {
		t.Errorf("delete not forwarded to repository: %v", questionRepo.deleted)
	}
	if err := svc.DeleteQuestion(quiz.ID, question.ID); err != ErrQuestionNotInQuiz {
		t.Fatalf("expected ErrQuestionNotInQuiz for missing question, got %v", err)
	}
}
