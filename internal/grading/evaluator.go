package grading

import (
	"sort"
	"strconv"
	"strings"

	"github.com/saqh5037/quizApp-sub002/internal/model"
)

// Evaluate decides correctness of a decoded answer under the per-type rules:
// case-insensitive comparison for true_false and single-correct
// multiple_choice, order-independent exact set equality for multi-correct
// multiple_choice (no partial credit), and trimmed case-insensitive matching
// against any accepted literal for short_answer. A value whose kind does not
// match the question type is incorrect, never an error.
func Evaluate(q *model.Question, v AnswerValue) bool {
	if len(q.CorrectAnswers) == 0 {
		return false
	}

	switch q.Type {
	case model.QuestionTypeTrueFalse:
		if v.Kind != KindBool {
			return false
		}
		want, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(q.CorrectAnswers[0])))
		if err != nil {
			return false
		}
		return v.Bool == want

	case model.QuestionTypeMultipleChoice:
		if len(q.CorrectAnswers) == 1 {
			return v.Kind == KindChoice && equalFoldTrimmed(v.Text, q.CorrectAnswers[0])
		}
		if v.Kind != KindChoiceSet {
			return false
		}
		return setsEqual(v.Choices, q.CorrectAnswers)

	case model.QuestionTypeShortAnswer:
		if v.Kind != KindText {
			return false
		}
		for _, accepted := range q.CorrectAnswers {
			if equalFoldTrimmed(v.Text, accepted) {
				return true
			}
		}
		return false
	}
	return false
}

func equalFoldTrimmed(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// setsEqual compares the two slices as sets: sorted, case-insensitive, exact
// cardinality. Reordering the submission never changes the verdict.
func setsEqual(submitted, correct []string) bool {
	if len(submitted) != len(correct) {
		return false
	}
	a := normalizeSorted(submitted)
	b := normalizeSorted(correct)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func normalizeSorted(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	sort.Strings(out)
	return out
}
