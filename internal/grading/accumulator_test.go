package grading_test

import (
	"math"
	"testing"

	"github.com/saqh5037/quizApp-sub002/internal/grading"
	"github.com/saqh5037/quizApp-sub002/internal/model"
)

func TestAwardPointsSpeedBonus(t *testing.T) {
	cases := []struct {
		name         string
		points       int
		isCorrect    bool
		responseTime float64
		maxTime      float64
		want         int
	}{
		{"instant answer gets full 50% bonus", 10, true, 0, 30, 15},
		{"answer at the limit gets no bonus", 10, true, 30, 30, 10},
		{"beyond the limit never goes negative", 10, true, 45, 30, 10},
		{"half the limit gets half the bonus", 10, true, 15, 30, 13}, // round(10*1.25)
		{"incorrect always zero", 10, false, 0, 30, 0},
		{"zero max time awards base points", 10, true, 5, 0, 10},
	}
	for _, tc := range cases {
		if got := grading.AwardPoints(tc.points, tc.isCorrect, tc.responseTime, tc.maxTime); got != tc.want {
			t.Errorf("%s: AwardPoints = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAwardPointsMonotonicInResponseTime(t *testing.T) {
	prev := math.MaxInt
	for rt := 0.0; rt <= 60; rt += 0.5 {
		got := grading.AwardPoints(100, true, rt, 30)
		if got > prev {
			t.Fatalf("points increased from %d to %d at responseTime=%.1f", prev, got, rt)
		}
		prev = got
	}
}

func TestApplyAnswerRunningAverage(t *testing.T) {
	p := &model.Participant{}
	q := &model.Question{Points: 10, TimeLimit: 30}

	for _, rt := range []float64{10, 20, 30} {
		grading.ApplyAnswer(p, q, true, rt, float64(q.TimeLimit))
	}

	if p.AnsweredQuestions != 3 {
		t.Fatalf("answered count = %d, want 3", p.AnsweredQuestions)
	}
	if math.Abs(p.AverageResponseTime-20) > 1e-9 {
		t.Errorf("average response time = %v, want 20", p.AverageResponseTime)
	}
	if p.CorrectAnswers != 3 {
		t.Errorf("correct answers = %d, want 3", p.CorrectAnswers)
	}
	// round(10*(1+(2/3)*0.5)) + round(10*(1+(1/3)*0.5)) + round(10*1.0) = 13+12+10
	if p.Score != 35 {
		t.Errorf("score = %d, want 35", p.Score)
	}
}

func TestApplyAnswerIncorrectNeverScores(t *testing.T) {
	p := &model.Participant{Score: 5, CorrectAnswers: 2, AnsweredQuestions: 2, AverageResponseTime: 10}
	q := &model.Question{Points: 10, TimeLimit: 30}

	points := grading.ApplyAnswer(p, q, false, 4, 30)

	if points != 0 {
		t.Errorf("points = %d, want 0", points)
	}
	if p.Score != 5 {
		t.Errorf("score changed to %d on incorrect answer", p.Score)
	}
	if p.CorrectAnswers != 2 {
		t.Errorf("correct answers changed to %d on incorrect answer", p.CorrectAnswers)
	}
	if p.AnsweredQuestions != 3 {
		t.Errorf("answered count = %d, want 3", p.AnsweredQuestions)
	}
	want := (10.0*2 + 4) / 3
	if math.Abs(p.AverageResponseTime-want) > 1e-9 {
		t.Errorf("average response time = %v, want %v", p.AverageResponseTime, want)
	}
}

func TestApplyAnswerMeanMatchesArithmeticMean(t *testing.T) {
	p := &model.Participant{}
	q := &model.Question{Points: 5, TimeLimit: 20}
	times := []float64{3.5, 0, 19.9, 7.25, 20, 12.1}

	sum := 0.0
	for _, rt := range times {
		grading.ApplyAnswer(p, q, rt < 10, rt, float64(q.TimeLimit))
		sum += rt
	}
	want := sum / float64(len(times))
	if math.Abs(p.AverageResponseTime-want) > 1e-9 {
		t.Errorf("average response time = %v, want %v", p.AverageResponseTime, want)
	}
}
