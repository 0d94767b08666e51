package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokertracker/internal/hand"
)

// HandResult is one player's outcome in a single hand
type HandResult struct {
	NetBB          float64       // Net big blinds won/lost
	Position       hand.Position // Position label at the table
	WentToShowdown bool          // Did the player reach showdown?
	PotBB          float64       // Final pot in big blinds
	StreetReached  hand.Street   // Furthest street the player saw
}

// PositionStats tracks results for a single table position
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// BigPotBB is the pot size, in big blinds, from which a pot counts as big.
const BigPotBB = 50

// Statistics accumulates per-hand results in big blinds
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	ShowdownWins    int     // Hands won at showdown
	NonShowdownWins int     // Hands won without showdown
	ShowdownBB      float64 // BB from showdown (wins AND losses)
	NonShowdownBB   float64 // BB from non-showdown hands (wins AND losses)
	AllBB           float64 // Total BB for sanity check

	PositionResults map[hand.Position]*PositionStats

	MaxPotBB  float64 // Largest pot observed (in bb)
	BigPots   int     // Pots >= BigPotBB
	BigPotsBB float64 // BB from big pots

	StreetsReached [4]int // Hands by furthest street seen
}

// Mean returns the arithmetic mean of all results in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// BBPer100 returns the win rate in big blinds per 100 hands
func (s *Statistics) BBPer100() float64 {
	return s.Mean() * 100
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if s.PositionResults == nil {
		s.PositionResults = make(map[hand.Position]*PositionStats)
	}
	ps, ok := s.PositionResults[result.Position]
	if !ok {
		ps = &PositionStats{}
		s.PositionResults[result.Position] = ps
	}
	ps.Hands++
	ps.SumBB += netBB
	ps.SumBB2 += netBB * netBB

	if result.PotBB > s.MaxPotBB {
		s.MaxPotBB = result.PotBB
	}
	if result.PotBB >= BigPotBB {
		s.BigPots++
		s.BigPotsBB += netBB
	}

	if result.StreetReached >= hand.Preflop && result.StreetReached <= hand.River {
		s.StreetsReached[result.StreetReached]++
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for a position
func (s *Statistics) PositionMean(position hand.Position) float64 {
	ps, ok := s.PositionResults[position]
	if !ok || ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}

	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	totalWins := s.ShowdownWins + s.NonShowdownWins
	if totalWins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", totalWins, s.Hands)
	}

	totalPositionHands := 0
	for _, ps := range s.PositionResults {
		totalPositionHands += ps.Hands
	}
	if totalPositionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)",
			totalPositionHands, s.Hands)
	}

	return nil
}
