package hunt

import "github.com/shopspring/decimal"

// ScoreKeeper owns the cumulative score and the round counter.
type ScoreKeeper struct {
	score  int
	rounds int
}

// Score returns the sum of collected treasure values.
func (s *ScoreKeeper) Score() int { return s.score }

// Rounds returns the number of successful moves.
func (s *ScoreKeeper) Rounds() int { return s.rounds }

func (s *ScoreKeeper) collect(value int) {
	s.score += value
}

func (s *ScoreKeeper) completeRound() {
	s.rounds++
}

// PerformanceIndex returns score per round rounded half-up to two decimal
// places, or zero when no round has been played.
func (s *ScoreKeeper) PerformanceIndex() decimal.Decimal {
	return PerformanceIndex(s.score, s.rounds)
}

// PerformanceIndex computes score/rounds rounded half-up to two decimals.
// It returns zero when rounds is zero.
func PerformanceIndex(score, rounds int) decimal.Decimal {
	if rounds == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(score)).
		Div(decimal.NewFromInt(int64(rounds))).
		Round(2)
}
