package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/orrery/internal/planet"
)

// choosePlanet prints the numbered planet menu with a trailing Exit entry and
// reads until a number in [1, N+1] arrives. ok is false when Exit was chosen.
func (s *Session) choosePlanet() (p planet.Planet, ok bool, err error) {
	names := s.system.PlanetNames()
	exit := len(names) + 1
	for i, name := range names {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, name)
	}
	fmt.Fprintf(s.out, "%d. Exit\n", exit)
	fmt.Fprintln(s.out)

	for {
		line, err := s.readLine()
		if err != nil {
			return planet.Planet{}, false, err
		}
		if n, valid := parseChoice(line, exit); valid {
			if n == exit {
				return planet.Planet{}, false, nil
			}
			return s.system.Planet(n - 1), true, nil
		}
		s.log.Debug("rejected menu input", "input", line)
		fmt.Fprintf(s.out, "Please input a number between 1 and %d > ", exit)
	}
}

// parseChoice reports whether line is an integer in [1, limit].
func parseChoice(line string, limit int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > limit {
		return 0, false
	}
	return n, true
}

// readLine returns the next input line without its line terminator.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.in.Text(), nil
}
