// Package cpcalc computes Combat Power values from base stats and the
// published level→multiplier curve. Displayed CP numbers are the system's
// primary factual payload, so the formula matches the in-game one exactly.
package cpcalc

import "math"

// Multiplier is one entry of the CP multiplier curve.
type Multiplier struct {
	Level      float64 `json:"level"`
	Multiplier float64 `json:"multiplier"`
}

// fallbackMultiplier is used when the curve has no entry for the exact level.
const fallbackMultiplier = 0.5

// perfectIV is assumed on every stat for displayed reference CPs.
const perfectIV = 15

// Compute returns the CP for the given base stats at the exact level. The
// curve is searched for the exact level with no interpolation. Results are
// clamped to a minimum of 10.
func Compute(baseAttack, baseDefense, baseStamina int, level float64, curve []Multiplier) int {
	multiplier := fallbackMultiplier
	for _, m := range curve {
		if m.Level == level {
			multiplier = m.Multiplier
			break
		}
	}

	attack := float64(baseAttack+perfectIV) * multiplier
	defense := float64(baseDefense+perfectIV) * multiplier
	stamina := float64(baseStamina+perfectIV) * multiplier

	cp := int(attack * math.Sqrt(defense) * math.Sqrt(stamina) / 10)
	if cp < 10 {
		return 10
	}
	return cp
}
