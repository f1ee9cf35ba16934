// Package strictness estimates per-team scorer strictness from judgment-call
// rates and applies it as a bounded correction to derived rate statistics.
//
// Scorekeeping is subjective: one team's scorer may record a bobbled grounder
// as a hit while another's records an error. Teams whose books show unusually
// many reached-on-error and fielder's-choice outcomes (offense) or errors
// (defense) have stricter scorers; their hitters' rate stats run low relative
// to the league, and vice versa. The estimator expresses each team's deviation
// as a z-score over the qualifying teams, clamped to [-1, 1].
package strictness

import (
	"math"
	"sort"
)

const (
	// MinQualifyingSample is the minimum denominator (plate appearances for
	// offense, fielding chances for defense) for a team to enter the estimate.
	MinQualifyingSample = 50

	// minQualifyingTeams: a deviation needs something to deviate from.
	minQualifyingTeams = 2

	// zeroDeviationFloor replaces an exactly-zero standard deviation.
	zeroDeviationFloor = 0.01
)

// OffenseSample is one team's accumulated offensive judgment-call counters.
type OffenseSample struct {
	TeamID           string
	ReachedOnError   int
	FieldersChoice   int
	PlateAppearances int
}

// DefenseSample is one team's accumulated fielding counters.
type DefenseSample struct {
	TeamID  string
	Errors  int
	Chances int
}

// EstimateOffense computes offensive strictness scores per team from
// reached-on-error and fielder's-choice rates. Teams under the qualifying
// sample are excluded; with fewer than two qualifying teams the result is
// empty and downstream normalization is a no-op.
func EstimateOffense(samples []OffenseSample) map[string]float64 {
	rates := make(map[string]float64, len(samples))
	for _, s := range samples {
		if s.PlateAppearances < MinQualifyingSample {
			continue
		}
		rates[s.TeamID] = float64(s.ReachedOnError+s.FieldersChoice) / float64(s.PlateAppearances)
	}
	return scoreRates(rates)
}

// EstimateDefense computes defensive strictness scores per team from error
// rates over total fielding chances.
func EstimateDefense(samples []DefenseSample) map[string]float64 {
	rates := make(map[string]float64, len(samples))
	for _, s := range samples {
		if s.Chances < MinQualifyingSample {
			continue
		}
		rates[s.TeamID] = float64(s.Errors) / float64(s.Chances)
	}
	return scoreRates(rates)
}

// scoreRates converts per-team rates into clamped, rounded z-scores.
func scoreRates(rates map[string]float64) map[string]float64 {
	if len(rates) < minQualifyingTeams {
		return map[string]float64{}
	}

	mean := meanOf(rates)
	dev := sampleStdDev(rates, mean)
	if dev == 0 {
		dev = zeroDeviationFloor
	}

	scores := make(map[string]float64, len(rates))
	for id, rate := range rates {
		z := (rate - mean) / dev
		scores[id] = round3(clamp(z, -1, 1))
	}
	return scores
}

func meanOf(rates map[string]float64) float64 {
	var sum float64
	for _, r := range rates {
		sum += r
	}
	return sum / float64(len(rates))
}

// sampleStdDev uses the n-1 denominator; callers guarantee len >= 2.
func sampleStdDev(rates map[string]float64, mean float64) float64 {
	var sumSq float64
	for _, r := range rates {
		d := r - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(rates)-1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// QualifyingTeams lists the team IDs present in a strictness index, sorted
// for deterministic logging.
func QualifyingTeams(index map[string]float64) []string {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
