package grading_test

import (
	"math"
	"testing"

	"github.com/saqh5037/quizApp-sub002/internal/grading"
	"github.com/saqh5037/quizApp-sub002/internal/model"
)

func TestAggregatePartitionInvariant(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Position: 1},
		{ID: 2, Position: 2},
		{ID: 3, Position: 3},
	}
	participants := []model.Participant{
		{ID: 10, Score: 30, AnsweredQuestions: 3},
		{ID: 11, Score: 10, AnsweredQuestions: 2},
		{ID: 12, Score: 0, AnsweredQuestions: 1},
	}
	answers := []model.Answer{
		{ParticipantID: 10, QuestionID: 1, IsCorrect: true, ResponseTime: 5},
		{ParticipantID: 10, QuestionID: 2, IsCorrect: true, ResponseTime: 10},
		{ParticipantID: 10, QuestionID: 3, IsCorrect: true, ResponseTime: 15},
		{ParticipantID: 11, QuestionID: 1, IsCorrect: false, ResponseTime: 20},
		{ParticipantID: 11, QuestionID: 2, IsCorrect: true, ResponseTime: 6},
		{ParticipantID: 12, QuestionID: 1, IsCorrect: false, ResponseTime: 30},
	}

	stats := grading.Aggregate(questions, participants, answers)

	if len(stats.Questions) != len(questions) {
		t.Fatalf("expected %d question stats, got %d", len(questions), len(stats.Questions))
	}
	for _, qs := range stats.Questions {
		total := qs.CorrectCount + qs.IncorrectCount + qs.SkippedCount
		if total != len(participants) {
			t.Errorf("question %d: partition sums to %d, want %d", qs.QuestionID, total, len(participants))
		}
	}

	q1 := stats.Questions[0]
	if q1.CorrectCount != 1 || q1.IncorrectCount != 2 || q1.SkippedCount != 0 {
		t.Errorf("question 1 partition = %+v", q1)
	}
	q3 := stats.Questions[2]
	if q3.SkippedCount != 2 {
		t.Errorf("question 3 skipped = %d, want 2", q3.SkippedCount)
	}
	// Skipped questions contribute no time sample.
	if math.Abs(q3.AverageTime-15) > 1e-9 {
		t.Errorf("question 3 average time = %v, want 15", q3.AverageTime)
	}
}

func TestAggregateSessionStatistics(t *testing.T) {
	questions := []model.Question{{ID: 1}, {ID: 2}}
	participants := []model.Participant{
		{ID: 1, Score: 30, AnsweredQuestions: 2},
		{ID: 2, Score: 20, AnsweredQuestions: 2},
		{ID: 3, Score: 4, AnsweredQuestions: 1},
		{ID: 4, Score: 10, AnsweredQuestions: 0},
	}

	stats := grading.Aggregate(questions, participants, nil)

	if stats.HighestScore != 30 || stats.LowestScore != 4 {
		t.Errorf("high/low = %d/%d, want 30/4", stats.HighestScore, stats.LowestScore)
	}
	if math.Abs(stats.AverageScore-16) > 1e-9 {
		t.Errorf("average score = %v, want 16", stats.AverageScore)
	}
	if math.Abs(stats.CompletionRate-0.5) > 1e-9 {
		t.Errorf("completion rate = %v, want 0.5", stats.CompletionRate)
	}
}

func TestAggregateEmptySession(t *testing.T) {
	stats := grading.Aggregate([]model.Question{{ID: 1}}, nil, nil)
	if stats.TotalParticipants != 0 || stats.AverageScore != 0 || stats.CompletionRate != 0 {
		t.Errorf("empty session should produce zero stats, got %+v", stats)
	}
	if stats.Questions[0].SkippedCount != 0 {
		t.Errorf("no participants means nothing was skipped, got %d", stats.Questions[0].SkippedCount)
	}
}
