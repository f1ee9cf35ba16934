package stats

import (
	"fmt"
	"math"
	"strconv"
)

// FormatRate renders a rate statistic with a fixed number of decimal places.
func FormatRate(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// formatDefined renders a rate, or "0" when its denominator was zero and the
// value carries no information.
func formatDefined(v float64, defined bool, places int) string {
	if !defined {
		return "0"
	}
	return FormatRate(v, places)
}

// FormatInningsPitched renders thirds-encoded innings in box-score style:
// the whole innings, then a single digit of outs (5.333 -> "5.1", 6.0 -> "6.0").
func FormatInningsPitched(ip float64) string {
	whole := int(ip)
	outs := int(math.Round((ip - float64(whole)) * 3))
	return fmt.Sprintf("%d.%d", whole, outs)
}
