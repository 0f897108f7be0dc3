package planet

import (
	"strconv"

	"github.com/papapumpkin/orrery/internal/format"
)

// Fact keys, in display order.
const (
	FactMass            = "mass"
	FactDiameter        = "diameter"
	FactMoons           = "moons"
	FactDistanceFromSun = "distance_from_the_sun"
	FactRings           = "rings"
	FactYearLength      = "length_of_planet_year"
)

// Fact pairs a planet attribute with its display unit. Value renders the raw
// attribute, or the empty string when the planet does not carry it.
type Fact struct {
	Key   string
	Unit  string
	Value func(Planet) string
}

// Facts returns the unit table: the set and order of facts shown for a planet.
// Each call returns a fresh slice.
func Facts() []Fact {
	return []Fact{
		{Key: FactMass, Unit: "10^24 kg", Value: func(p Planet) string { return floatValue(p.Mass) }},
		{Key: FactDiameter, Unit: "km", Value: func(p Planet) string { return intValue(p.Diameter) }},
		{Key: FactMoons, Unit: "moon(s)", Value: func(p Planet) string { return intValue(p.Moons) }},
		{Key: FactDistanceFromSun, Unit: "10^6 km", Value: func(p Planet) string { return floatValue(p.DistanceFromSun) }},
		{Key: FactRings, Unit: "rings", Value: func(p Planet) string { return intValue(p.Rings) }},
		{Key: FactYearLength, Unit: "seconds", Value: func(p Planet) string { return intValue(p.YearLength) }},
	}
}

// LookupFact finds a fact in the unit table by key.
func LookupFact(key string) (Fact, bool) {
	for _, f := range Facts() {
		if f.Key == key {
			return f, true
		}
	}
	return Fact{}, false
}

// UnitFor returns the display unit for key, or "" for an unknown key.
func UnitFor(key string) string {
	f, _ := LookupFact(key)
	return f.Unit
}

func floatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return format.Decimal(*v)
}

func intValue(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
