package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog validation.
var (
	// ErrMissingField indicates a required field is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicateName indicates two or more planets share a name.
	ErrDuplicateName = errors.New("duplicate planet name")
	// ErrOutOfBounds indicates a numeric field is outside its valid range.
	ErrOutOfBounds = errors.New("value out of range")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

// Validation categories.
const (
	ValCatMissingField    ValidationCategory = "missing_field"
	ValCatDuplicateName   ValidationCategory = "duplicate_name"
	ValCatBoundsViolation ValidationCategory = "bounds_violation"
)

// ValidationError records a catalog problem with planet context.
type ValidationError struct {
	Category ValidationCategory
	Planet   string
	Field    string
	Err      error
}

// Error returns a human-readable string including the planet and field.
func (e *ValidationError) Error() string {
	switch {
	case e.Planet != "" && e.Field != "":
		return fmt.Sprintf("planet %s: %s: %v", e.Planet, e.Field, e.Err)
	case e.Planet != "":
		return fmt.Sprintf("planet %s: %v", e.Planet, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks that every catalog planet can take part in a session:
// planet years need a positive year length and distances need a distance
// from the sun. It returns nil when the catalog is usable.
func (c *Catalog) Validate() []ValidationError {
	var errs []ValidationError

	if c.System.Name == "" {
		errs = append(errs, ValidationError{Category: ValCatMissingField, Field: "system.name", Err: ErrMissingField})
	}
	if c.System.AgeYears <= 0 {
		errs = append(errs, ValidationError{Category: ValCatBoundsViolation, Field: "system.age_years", Err: ErrOutOfBounds})
	}
	if len(c.Planets) == 0 {
		errs = append(errs, ValidationError{Category: ValCatMissingField, Field: "planets", Err: ErrMissingField})
	}

	seen := make(map[string]bool, len(c.Planets))
	for i, e := range c.Planets {
		label := e.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
			errs = append(errs, ValidationError{Category: ValCatMissingField, Planet: label, Field: "name", Err: ErrMissingField})
		} else if seen[e.Name] {
			errs = append(errs, ValidationError{Category: ValCatDuplicateName, Planet: label, Err: ErrDuplicateName})
		}
		seen[e.Name] = true

		if e.YearLength == nil {
			errs = append(errs, ValidationError{Category: ValCatMissingField, Planet: label, Field: "length_of_planet_year", Err: ErrMissingField})
		} else if *e.YearLength <= 0 {
			errs = append(errs, ValidationError{Category: ValCatBoundsViolation, Planet: label, Field: "length_of_planet_year", Err: ErrOutOfBounds})
		}
		if e.DistanceFromSun == nil {
			errs = append(errs, ValidationError{Category: ValCatMissingField, Planet: label, Field: "distance_from_the_sun", Err: ErrMissingField})
		}
	}
	return errs
}
