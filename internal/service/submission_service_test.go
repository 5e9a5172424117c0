package service

import (
	"testing"

	"github.com/saqh5037/quizApp-sub002/internal/grading"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolveResponseTime(t *testing.T) {
	tests := []struct {
		name      string
		reported  *float64
		timeLimit int
		want      float64
	}{
		{"missing falls back to time limit", nil, 30, 30},
		{"zero is instantaneous, not missing", floatPtr(0), 30, 0},
		{"positive passes through", floatPtr(12.5), 30, 12.5},
		{"negative falls back to time limit", floatPtr(-1), 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveResponseTime(tt.reported, tt.timeLimit)
			if got != tt.want {
				t.Errorf("resolveResponseTime(%v, %d) = %v, want %v", tt.reported, tt.timeLimit, got, tt.want)
			}
		})
	}
}

// An instantaneous correct answer must earn the full speed bonus through the
// submission pipeline's time resolution, and awarded points must not increase
// as response time grows.
func TestResolvedTimeKeepsSpeedBonusMonotonic(t *testing.T) {
	const basePoints, timeLimit = 10, 30

	instant := grading.AwardPoints(basePoints, true, resolveResponseTime(floatPtr(0), timeLimit), timeLimit)
	if instant != 15 {
		t.Fatalf("instantaneous answer awarded %d points, want 15", instant)
	}

	prev := instant
	for _, rt := range []float64{0.01, 5, 15, 29.9, 30, 45} {
		pts := grading.AwardPoints(basePoints, true, resolveResponseTime(floatPtr(rt), timeLimit), timeLimit)
		if pts > prev {
			t.Fatalf("points increased from %d to %d at response time %v", prev, pts, rt)
		}
		prev = pts
	}

	missing := grading.AwardPoints(basePoints, true, resolveResponseTime(nil, timeLimit), timeLimit)
	if missing != basePoints {
		t.Errorf("missing response time awarded %d points, want base %d", missing, basePoints)
	}
}
