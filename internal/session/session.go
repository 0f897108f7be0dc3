// Package session runs the interactive planet explorer: pick a planet, read
// its facts, compare it with a second planet, and optionally name new planets.
//
// A Session is a strictly sequential state machine over a line-oriented
// reader and writer. Each prompt blocks until a line arrives. Malformed menu
// or yes/no answers re-prompt; arithmetic over planets that lack the needed
// data ends the session with an error.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/papapumpkin/orrery/internal/logging"
	"github.com/papapumpkin/orrery/internal/planet"
)

// DefaultFactWidth is the column budget for the value portion of a fact line,
// measured from the end of the label.
const DefaultFactWidth = 40

// ErrInputClosed indicates input ended while a prompt was waiting.
var ErrInputClosed = errors.New("input closed")

// Outcome reports how a session that returned without error ended.
type Outcome int

const (
	// OutcomeCompleted means the final planet listing was printed.
	OutcomeCompleted Outcome = iota
	// OutcomeExited means the user chose Exit from a planet menu.
	OutcomeExited
	// OutcomeDeclined means the user answered "no" to adding planets.
	OutcomeDeclined
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExited:
		return "exited"
	case OutcomeDeclined:
		return "declined"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Options tunes a Session. Zero values select the defaults.
type Options struct {
	FactWidth int
	Logger    *slog.Logger
}

// Session holds everything one interactive run needs. The solar system is
// the only state it mutates.
type Session struct {
	system *planet.SolarSystem
	facts  []planet.Fact
	in     *bufio.Scanner
	out    io.Writer
	width  int
	log    *slog.Logger

	first   planet.Planet
	second  planet.Planet
	outcome Outcome
}

// New creates a session over sys that reads answers from in and writes the
// transcript to out. facts is the unit table shown for a chosen planet.
func New(sys *planet.SolarSystem, facts []planet.Fact, in io.Reader, out io.Writer, opts Options) *Session {
	width := opts.FactWidth
	if width <= 0 {
		width = DefaultFactWidth
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		system: sys,
		facts:  facts,
		in:     bufio.NewScanner(in),
		out:    out,
		width:  width,
		log:    log.With("component", "session"),
	}
}

// Run drives the session from the first planet menu to a terminal state.
// The context is checked between states; a prompt already waiting for input
// is not interrupted.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	st := stateSelectFirst
	for st != stateDone {
		if err := ctx.Err(); err != nil {
			return s.outcome, err
		}
		s.log.Debug("entering state", "state", st.String())
		next, err := s.step(st)
		if err != nil {
			s.log.Debug("session failed", "state", st.String(), "error", err)
			return s.outcome, err
		}
		st = next
	}
	s.log.Debug("session finished", "outcome", s.outcome.String(), "planets", s.system.Len())
	return s.outcome, nil
}

// System returns the solar system the session works on.
func (s *Session) System() *planet.SolarSystem {
	return s.system
}
