// Package planet models planets and the solar system that holds them, along
// with the facts derived from their attributes.
package planet

// Planet holds a body's static attributes. Every numeric field is optional:
// nil means the value is unknown, never zero. Planets added by a user during
// a session carry only a name.
type Planet struct {
	Name            string
	Mass            *float64 // 10^24 kg
	Diameter        *int64   // km
	Moons           *int64
	DistanceFromSun *float64 // 10^6 km
	Rings           *int64
	YearLength      *int64 // seconds
}

// New returns a planet with only its name set.
func New(name string) Planet {
	return Planet{Name: name}
}

// Float returns a pointer to v for populating optional fields.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v for populating optional fields.
func Int(v int64) *int64 {
	return &v
}
