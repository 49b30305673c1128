package tracker

import (
	"fmt"
	"math"
)

// Percent is a ratio expressed in percentage points.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Rounded returns the percent rounded to the nearest integer. Status
// classifications happen on this value; the raw value is kept for math.
func (p Percent) Rounded() int { return int(math.Round(float64(p))) }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
