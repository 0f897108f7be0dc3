// Package catalog loads the planet data a session starts from. The canonical
// Sol system is embedded in the binary; a user may point at their own TOML
// catalog instead.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/orrery/internal/planet"
)

//go:embed sol.toml
var defaultCatalog []byte

// ErrNoCatalog indicates the catalog file does not exist.
var ErrNoCatalog = errors.New("catalog file not found")

// System describes the solar system itself.
type System struct {
	Name     string `toml:"name"`
	AgeYears int64  `toml:"age_years"`
}

// Entry is one planet as written in a catalog file. Omitted numeric fields
// stay nil.
type Entry struct {
	Name            string   `toml:"name"`
	Mass            *float64 `toml:"mass"`
	Diameter        *int64   `toml:"diameter"`
	Moons           *int64   `toml:"moons"`
	DistanceFromSun *float64 `toml:"distance_from_the_sun"`
	Rings           *int64   `toml:"rings"`
	YearLength      *int64   `toml:"length_of_planet_year"`
}

// Catalog is a parsed catalog document.
type Catalog struct {
	System  System  `toml:"system"`
	Planets []Entry `toml:"planets"`

	// Source is the file the catalog was read from, or "" when embedded.
	Source string `toml:"-"`
}

// Default returns the embedded Sol catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoCatalog)
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Source = path
	return c, nil
}

// Resolve loads the catalog at path, or the embedded one when path is empty.
func Resolve(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}

// Planet converts the entry into a planet record.
func (e Entry) Planet() planet.Planet {
	return planet.Planet{
		Name:            e.Name,
		Mass:            e.Mass,
		Diameter:        e.Diameter,
		Moons:           e.Moons,
		DistanceFromSun: e.DistanceFromSun,
		Rings:           e.Rings,
		YearLength:      e.YearLength,
	}
}

// SolarSystem builds the in-memory system described by the catalog.
func (c *Catalog) SolarSystem() *planet.SolarSystem {
	planets := make([]planet.Planet, len(c.Planets))
	for i, e := range c.Planets {
		planets[i] = e.Planet()
	}
	return planet.NewSolarSystem(c.System.Name, planet.AgeFromYears(c.System.AgeYears), planets)
}

// Name returns a label for where the catalog came from.
func (c *Catalog) Name() string {
	if c.Source == "" {
		return "embedded"
	}
	return c.Source
}
