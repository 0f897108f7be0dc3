package planet

import (
	"math/big"
	"strings"
)

// secondsPerYear uses a flat 365-day year.
const secondsPerYear = 365 * 24 * 60 * 60

// SolarSystem is an ordered collection of planets plus the system's age.
// Insertion order is display order. The age is fixed at construction.
type SolarSystem struct {
	Name string

	planets    []Planet
	ageSeconds *big.Int
}

// NewSolarSystem creates a system from a name, an age in seconds, and an
// initial set of planets. Both the slice and the age are copied.
func NewSolarSystem(name string, ageSeconds *big.Int, planets []Planet) *SolarSystem {
	age := new(big.Int)
	if ageSeconds != nil {
		age.Set(ageSeconds)
	}
	return &SolarSystem{
		Name:       name,
		planets:    append([]Planet(nil), planets...),
		ageSeconds: age,
	}
}

// AgeFromYears converts an age in years to seconds. The result does not fit
// in an int64 for realistic ages, hence big.Int.
func AgeFromYears(years int64) *big.Int {
	age := big.NewInt(years)
	return age.Mul(age, big.NewInt(secondsPerYear))
}

// Age returns a copy of the system's age in seconds.
func (s *SolarSystem) Age() *big.Int {
	return new(big.Int).Set(s.ageSeconds)
}

// AddPlanet appends p. Duplicate names are allowed.
func (s *SolarSystem) AddPlanet(p Planet) {
	s.planets = append(s.planets, p)
}

// AddPlanets appends each planet in ps, preserving their relative order.
func (s *SolarSystem) AddPlanets(ps []Planet) {
	s.planets = append(s.planets, ps...)
}

// PlanetNames returns planet names in display order.
func (s *SolarSystem) PlanetNames() []string {
	names := make([]string, len(s.planets))
	for i, p := range s.planets {
		names[i] = p.Name
	}
	return names
}

// Planets returns a copy of the planets in display order.
func (s *SolarSystem) Planets() []Planet {
	return append([]Planet(nil), s.planets...)
}

// Len reports how many planets the system holds.
func (s *SolarSystem) Len() int {
	return len(s.planets)
}

// Planet returns the planet at zero-based index i. It panics if i is out of
// range, like a slice index.
func (s *SolarSystem) Planet(i int) Planet {
	return s.planets[i]
}

// Find returns the first planet whose name matches, ignoring case.
func (s *SolarSystem) Find(name string) (Planet, bool) {
	for _, p := range s.planets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Planet{}, false
}
