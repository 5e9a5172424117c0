package grading

import (
	"github.com/saqh5037/quizApp-sub002/internal/model"
)

// QuestionStatistics partitions the answers received for one question.
// CorrectCount + IncorrectCount + SkippedCount always equals the number of
// participants; AverageTime is the mean over received answers only.
type QuestionStatistics struct {
	QuestionID     uint    `json:"question_id"`
	Position       int     `json:"position"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	SkippedCount   int     `json:"skipped_count"`
	AverageTime    float64 `json:"average_time"`
}

// SessionStatistics is the session-wide roll-up derived from final
// participant scores.
type SessionStatistics struct {
	TotalParticipants int                  `json:"total_participants"`
	AverageScore      float64              `json:"average_score"`
	HighestScore      int                  `json:"highest_score"`
	LowestScore       int                  `json:"lowest_score"`
	CompletionRate    float64              `json:"completion_rate"`
	Questions         []QuestionStatistics `json:"questions"`
}

// Aggregate derives per-question and session-wide statistics from persisted
// rows. Pure function, invoked on demand when results are viewed.
func Aggregate(questions []model.Question, participants []model.Participant, answers []model.Answer) SessionStatistics {
	stats := SessionStatistics{
		TotalParticipants: len(participants),
		Questions:         make([]QuestionStatistics, 0, len(questions)),
	}

	byQuestion := make(map[uint][]model.Answer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	for _, q := range questions {
		qs := QuestionStatistics{QuestionID: q.ID, Position: q.Position}
		received := byQuestion[q.ID]
		totalTime := 0.0
		for _, a := range received {
			if a.IsCorrect {
				qs.CorrectCount++
			} else {
				qs.IncorrectCount++
			}
			totalTime += a.ResponseTime
		}
		qs.SkippedCount = len(participants) - len(received)
		if len(received) > 0 {
			qs.AverageTime = totalTime / float64(len(received))
		}
		stats.Questions = append(stats.Questions, qs)
	}

	if len(participants) == 0 {
		return stats
	}

	totalScore := 0
	completed := 0
	stats.HighestScore = participants[0].Score
	stats.LowestScore = participants[0].Score
	for _, p := range participants {
		totalScore += p.Score
		if p.Score > stats.HighestScore {
			stats.HighestScore = p.Score
		}
		if p.Score < stats.LowestScore {
			stats.LowestScore = p.Score
		}
		if p.AnsweredQuestions >= len(questions) {
			completed++
		}
	}
	stats.AverageScore = float64(totalScore) / float64(len(participants))
	stats.CompletionRate = float64(completed) / float64(len(participants))
	return stats
}
