package balldontlie

import (
	"math"
	"strconv"
	"strings"
)

const (
	cmPerInch     = 2.54
	kgPerPound    = 0.453592
	inchesPerFoot = 12

	// Upper bounds for a plausible human measurement. Larger values are
	// treated as malformed rather than converted.
	maxFeet   = 9
	maxPounds = 1500
)

// heightCm converts "F-I" to whole centimeters. Missing or malformed input is nil.
func heightCm(raw *string) *int {
	if raw == nil {
		return nil
	}
	feetRaw, inchesRaw, ok := strings.Cut(strings.TrimSpace(*raw), "-")
	if !ok {
		return nil
	}
	feet, err := strconv.Atoi(strings.TrimSpace(feetRaw))
	if err != nil || feet < 0 || feet > maxFeet {
		return nil
	}
	inches, err := strconv.Atoi(strings.TrimSpace(inchesRaw))
	if err != nil || inches < 0 || inches >= inchesPerFoot {
		return nil
	}
	total := float64(feet*inchesPerFoot+inches) * cmPerInch
	if total == 0 {
		return nil
	}
	cm := int(math.Round(total))
	return &cm
}

// weightKg converts pounds to whole kilograms. Missing or malformed input is nil.
func weightKg(raw *string) *int {
	if raw == nil {
		return nil
	}
	lbs, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(lbs) || lbs <= 0 || lbs > maxPounds {
		return nil
	}
	kg := int(math.Round(lbs * kgPerPound))
	return &kg
}
