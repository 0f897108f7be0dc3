package planet

import (
	"fmt"
	"math"
	"math/big"
)

// PlanetYears returns how many of p's orbital periods fit in the system's age,
// using floor division.
func PlanetYears(sys *SolarSystem, p Planet) (*big.Int, error) {
	if p.YearLength == nil || *p.YearLength <= 0 {
		return nil, fmt.Errorf("planet years for %q: %w", p.Name, ErrDivision)
	}
	years := new(big.Int).Set(sys.ageSeconds)
	return years.Quo(years, big.NewInt(*p.YearLength)), nil
}

// DistanceBetween returns the absolute difference between the two planets'
// distances from the sun, in 10^6 km.
func DistanceBetween(a, b Planet) (float64, error) {
	if a.DistanceFromSun == nil {
		return 0, fmt.Errorf("distance from the sun of %q: %w", a.Name, ErrUnknownValue)
	}
	if b.DistanceFromSun == nil {
		return 0, fmt.Errorf("distance from the sun of %q: %w", b.Name, ErrUnknownValue)
	}
	return math.Abs(*a.DistanceFromSun - *b.DistanceFromSun), nil
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
