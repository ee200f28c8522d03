package hunt

import "testing"

func TestPerformanceIndexRounding(t *testing.T) {
	tests := []struct {
		name          string
		score, rounds int
		expected      string
	}{
		{"no rounds", 0, 0, "0.00"},
		{"no rounds with score", 12, 0, "0.00"},
		{"whole number", 5, 1, "5.00"},
		{"repeating down", 1, 3, "0.33"},
		{"repeating up", 5, 3, "1.67"},
		{"two thirds", 2, 3, "0.67"},
		{"half rounds up", 1, 8, "0.13"},
		{"half rounds up small", 1, 200, "0.01"},
		{"three eighths", 3, 8, "0.38"},
		{"exact half", 10, 4, "2.50"},
		{"zero score", 0, 4, "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PerformanceIndex(tc.score, tc.rounds)
			if got.StringFixed(2) != tc.expected {
				t.Errorf("PerformanceIndex(%d, %d) = %s, expected %s", tc.score, tc.rounds, got.StringFixed(2), tc.expected)
			}
		})
	}
}

func TestScoreKeeper(t *testing.T) {
	var s ScoreKeeper
	if !s.PerformanceIndex().IsZero() {
		t.Error("fresh keeper should report zero index")
	}

	s.collect(7)
	s.completeRound()
	s.completeRound()
	s.completeRound()

	if s.Score() != 7 || s.Rounds() != 3 {
		t.Errorf("score/rounds = %d/%d, expected 7/3", s.Score(), s.Rounds())
	}
	if got := s.PerformanceIndex().StringFixed(2); got != "2.33" {
		t.Errorf("index = %s, expected 2.33", got)
	}
}
