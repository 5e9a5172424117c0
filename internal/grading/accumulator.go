package grading

import (
	"math"

	"github.com/saqh5037/quizApp-sub002/internal/model"
)

// SpeedBonusFactor caps the speed bonus at half the question's base points:
// an instantaneous correct answer earns 1.5x, the bonus decays linearly to
// zero at the time limit and never goes negative beyond it.
const SpeedBonusFactor = 0.5

// AwardPoints computes the points for one graded answer. Incorrect answers
// always score zero.
func AwardPoints(basePoints int, isCorrect bool, responseTime, maxTime float64) int {
	if !isCorrect {
		return 0
	}
	bonus := 0.0
	if maxTime > 0 {
		bonus = math.Max(0, 1-responseTime/maxTime) * SpeedBonusFactor
	}
	return int(math.Round(float64(basePoints) * (1 + bonus)))
}

// ApplyAnswer folds one graded answer into the participant's running totals
// and returns the points awarded. Pure record mutation: persistence is the
// caller's responsibility.
func ApplyAnswer(p *model.Participant, q *model.Question, isCorrect bool, responseTime, maxTime float64) int {
	points := AwardPoints(q.Points, isCorrect, responseTime, maxTime)

	n := p.AnsweredQuestions + 1
	p.AverageResponseTime = (p.AverageResponseTime*float64(p.AnsweredQuestions) + responseTime) / float64(n)
	p.AnsweredQuestions = n
	p.Score += points
	if isCorrect {
		p.CorrectAnswers++
	}
	return points
}
