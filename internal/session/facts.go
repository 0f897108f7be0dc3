package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/orrery/internal/format"
	"github.com/papapumpkin/orrery/internal/planet"
)

// PrintFacts writes the fact dump for p: a heading, then one right-aligned
// line per fact in table order. Facts p does not carry print as an empty
// value followed by the unit.
func PrintFacts(w io.Writer, p planet.Planet, facts []planet.Fact, width int) {
	fmt.Fprintf(w, "FUN FACTS ABOUT %s:\n", strings.ToUpper(p.Name))
	for _, f := range facts {
		fmt.Fprintln(w, format.FactLine(format.TitleCase(f.Key), f.Value(p), f.Unit, width))
	}
}

// PrintYears writes how many of p's years have passed since sys formed.
func PrintYears(w io.Writer, sys *planet.SolarSystem, p planet.Planet) error {
	years, err := planet.PlanetYears(sys, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nIt has been %s %s years since the formation of %s.\n",
		format.GroupDigits(years), p.Name, sys.Name)
	return nil
}
