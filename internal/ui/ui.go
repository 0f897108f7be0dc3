// Package ui prints command status output (catalog summaries, validation
// results, errors) to a terminal stream. Styling degrades to plain text when
// the stream is not a terminal or color is disabled.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/papapumpkin/orrery/internal/catalog"
	"github.com/papapumpkin/orrery/internal/format"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // headings
	colorSuccess = lipgloss.Color("#00E676") // valid
	colorDanger  = lipgloss.Color("#FF5252") // errors
	colorMuted   = lipgloss.Color("#8C8C8C") // secondary text
)

// Printer writes styled status lines.
type Printer struct {
	out io.Writer

	heading lipgloss.Style
	success lipgloss.Style
	danger  lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Printer writing to out. When color is false every style
// renders as plain text.
func New(out io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:     out,
		heading: r.NewStyle().Bold(true).Foreground(colorPrimary),
		success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		danger:  r.NewStyle().Bold(true).Foreground(colorDanger),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, "%s%s\n", p.danger.Render("error: "), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.muted.Render(msg))
}

// CatalogSummary lists every planet in the catalog with its distance and
// year length, or "?" where the catalog leaves them out.
func (p *Printer) CatalogSummary(c *catalog.Catalog) {
	fmt.Fprintf(p.out, "%s %s\n", p.heading.Render("catalog: "+c.System.Name), p.muted.Render("("+c.Name()+")"))
	fmt.Fprintf(p.out, "age: %s years\n", format.GroupInt(c.System.AgeYears))
	for i, e := range c.Planets {
		distance, year := "?", "?"
		if e.DistanceFromSun != nil {
			distance = format.Decimal(*e.DistanceFromSun)
		}
		if e.YearLength != nil {
			year = format.GroupInt(*e.YearLength)
		}
		fmt.Fprintf(p.out, "  %2d. %-12s %10s 10^6 km  %16s s\n", i+1, e.Name, distance, year)
	}
}

// ValidationResult reports whether the catalog passed validation.
func (p *Printer) ValidationResult(c *catalog.Catalog, errs []catalog.ValidationError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "%s — %d planet(s), no errors\n", p.success.Render(fmt.Sprintf("✓ catalog %q", c.Name())), len(c.Planets))
		return
	}
	fmt.Fprintf(p.out, "%s — %d error(s):\n", p.danger.Render(fmt.Sprintf("✗ catalog %q", c.Name())), len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.out, "  %s%s\n", p.danger.Render("• "), e.Error())
	}
}
