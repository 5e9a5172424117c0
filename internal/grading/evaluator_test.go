package grading_test

import (
	"encoding/json"
	"testing"

	"github.com/saqh5037/quizApp-sub002/internal/grading"
	"github.com/saqh5037/quizApp-sub002/internal/model"
)

func decode(t *testing.T, questionType, raw string) grading.AnswerValue {
	t.Helper()
	v, err := grading.DecodeAnswer(questionType, json.RawMessage(raw))
	if err != nil {
		t.Fatalf("decode %q failed: %v", raw, err)
	}
	return v
}

func TestEvaluateTrueFalseCaseInsensitive(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeTrueFalse, CorrectAnswers: []string{"True"}}

	for _, raw := range []string{`true`, `"true"`, `"True"`, `"TRUE"`} {
		if !grading.Evaluate(q, decode(t, q.Type, raw)) {
			t.Errorf("expected %s to be correct", raw)
		}
	}
	for _, raw := range []string{`false`, `"false"`, `"False"`} {
		if grading.Evaluate(q, decode(t, q.Type, raw)) {
			t.Errorf("expected %s to be incorrect", raw)
		}
	}
}

func TestEvaluateMultipleChoiceSingle(t *testing.T) {
	q := &model.Question{
		Type:           model.QuestionTypeMultipleChoice,
		Options:        []string{"Lisbon", "Madrid", "Paris", "Rome"},
		CorrectAnswers: []string{"Paris"},
	}

	if !grading.Evaluate(q, decode(t, q.Type, `"paris"`)) {
		t.Error("expected case-insensitive match on single choice")
	}
	if grading.Evaluate(q, decode(t, q.Type, `"Madrid"`)) {
		t.Error("expected wrong option to be incorrect")
	}
	// An array where a scalar is expected is incorrect, not an error.
	if grading.Evaluate(q, decode(t, q.Type, `["Paris"]`)) {
		t.Error("expected array submission against single-correct question to be incorrect")
	}
}

func TestEvaluateMultiSelectOrderInvariant(t *testing.T) {
	q := &model.Question{
		Type:           model.QuestionTypeMultipleChoice,
		Options:        []string{"a", "b", "c", "d"},
		CorrectAnswers: []string{"b", "c"},
	}

	cases := []struct {
		raw  string
		want bool
	}{
		{`["b","c"]`, true},
		{`["c","b"]`, true}, // reordering never changes the verdict
		{`["C","B"]`, true},
		{`["b"]`, false},           // no partial credit
		{`["b","c","d"]`, false},   // supersets fail
		{`["a","d"]`, false},
		{`"b"`, false},             // scalar where a set is required
	}
	for _, tc := range cases {
		if got := grading.Evaluate(q, decode(t, q.Type, tc.raw)); got != tc.want {
			t.Errorf("Evaluate(%s) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestEvaluateShortAnswer(t *testing.T) {
	q := &model.Question{
		Type:           model.QuestionTypeShortAnswer,
		CorrectAnswers: []string{"photosynthesis", "the photosynthesis"},
	}

	cases := []struct {
		raw  string
		want bool
	}{
		{`"photosynthesis"`, true},
		{`"  Photosynthesis  "`, true}, // trimmed, case-insensitive
		{`"The Photosynthesis"`, true}, // any accepted literal matches
		{`"respiration"`, false},
	}
	for _, tc := range cases {
		if got := grading.Evaluate(q, decode(t, q.Type, tc.raw)); got != tc.want {
			t.Errorf("Evaluate(%s) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestDecodeAnswerMalformedShapes(t *testing.T) {
	cases := []struct {
		questionType string
		raw          string
	}{
		{model.QuestionTypeTrueFalse, `42`},
		{model.QuestionTypeTrueFalse, `"maybe"`},
		{model.QuestionTypeMultipleChoice, `{"option":"b"}`},
		{model.QuestionTypeShortAnswer, `["text"]`},
		{"essay", `"unknown type"`},
	}
	for _, tc := range cases {
		if _, err := grading.DecodeAnswer(tc.questionType, json.RawMessage(tc.raw)); err == nil {
			t.Errorf("DecodeAnswer(%s, %s): expected malformed-shape error", tc.questionType, tc.raw)
		}
	}
}

func TestEvaluateNoDeclaredCorrectAnswer(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeShortAnswer}
	if grading.Evaluate(q, grading.AnswerValue{Kind: grading.KindText, Text: "anything"}) {
		t.Error("question without declared correct answers must never grade correct")
	}
}
