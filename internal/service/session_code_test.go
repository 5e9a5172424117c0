package service

import (
	"regexp"
	"testing"
)

func TestGenerateSessionCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{6}$`)
	for i := 0; i < 100; i++ {
		code, err := generateSessionCode()
		if err != nil {
			t.Fatalf("generateSessionCode failed: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match expected format", code)
		}
	}
}

func TestGenerateSessionCodeVariety(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := generateSessionCode()
		if err != nil {
			t.Fatalf("generateSessionCode failed: %v", err)
		}
		seen[code] = true
	}
	// 1000 draws from a 16^6 keyspace should essentially never collide en
	// masse; a tiny tolerance keeps the test non-flaky.
	if len(seen) < 990 {
		t.Fatalf("expected mostly unique codes, got %d distinct of 1000", len(seen))
	}
}
