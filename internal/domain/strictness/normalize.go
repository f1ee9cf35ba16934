package strictness

// DefaultFactor scales how much of the strictness score feeds the correction.
// At 0.5, a fully strict scorer (+1.0) lifts a stat by at most 5%.
const DefaultFactor = 0.5

// Normalize applies a team's strictness score to a derived rate statistic and
// returns the bias-corrected value, bounded to [0, 1]. A zero value is
// returned unchanged: there is no baseline to correct.
func Normalize(value, strictness, factor float64) float64 {
	if value == 0 {
		return 0
	}
	adjusted := value * (1 + strictness*factor*0.1)
	return clamp(adjusted, 0, 1)
}
