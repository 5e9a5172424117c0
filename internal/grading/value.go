package grading

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/saqh5037/quizApp-sub002/internal/model"
)

// ErrMalformedAnswer is returned when a submitted value does not have the
// shape the question type calls for. Callers record such submissions as
// incorrect instead of rejecting them.
var ErrMalformedAnswer = errors.New("submitted answer shape does not match question type")

// ValueKind selects which field of AnswerValue is meaningful.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindText
	KindChoice
	KindChoiceSet
)

// AnswerValue is the decoded, typed form of a submitted answer. The kind is
// fixed by the question's declared type, never guessed from the payload.
type AnswerValue struct {
	Kind    ValueKind
	Bool    bool
	Text    string
	Choices []string
}

// DecodeAnswer interprets a raw JSON submission against the question type.
// true_false accepts a JSON boolean or a "true"/"false" string;
// multiple_choice accepts a string (single-correct) or an array of strings
// (multi-correct); short_answer accepts a string.
func DecodeAnswer(questionType string, raw json.RawMessage) (AnswerValue, error) {
	switch questionType {
	case model.QuestionTypeTrueFalse:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return AnswerValue{Kind: KindBool, Bool: b}, nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true":
				return AnswerValue{Kind: KindBool, Bool: true}, nil
			case "false":
				return AnswerValue{Kind: KindBool, Bool: false}, nil
			}
		}
		return AnswerValue{}, ErrMalformedAnswer

	case model.QuestionTypeMultipleChoice:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return AnswerValue{Kind: KindChoice, Text: s}, nil
		}
		var arr []string
		if err := json.Unmarshal(raw, &arr); err == nil {
			return AnswerValue{Kind: KindChoiceSet, Choices: arr}, nil
		}
		return AnswerValue{}, ErrMalformedAnswer

	case model.QuestionTypeShortAnswer:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return AnswerValue{Kind: KindText, Text: s}, nil
		}
		return AnswerValue{}, ErrMalformedAnswer
	}
	return AnswerValue{}, ErrMalformedAnswer
}
