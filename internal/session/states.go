package session

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/orrery/internal/format"
	"github.com/papapumpkin/orrery/internal/planet"
)

// state is one step of the interactive session.
type state int

const (
	stateSelectFirst state = iota
	stateDisplayFacts
	stateDisplayYears
	stateSelectSecond
	stateDisplayDistance
	stateConfirmAdd
	stateCollectPlanets
	stateReport
	stateDone
)

var stateNames = [...]string{
	stateSelectFirst:     "select_first_planet",
	stateDisplayFacts:    "display_facts",
	stateDisplayYears:    "display_years",
	stateSelectSecond:    "select_second_planet",
	stateDisplayDistance: "display_distance",
	stateConfirmAdd:      "confirm_add_planets",
	stateCollectPlanets:  "collect_new_planets",
	stateReport:          "report_and_list",
	stateDone:            "done",
}

func (st state) String() string {
	if int(st) < len(stateNames) {
		return stateNames[st]
	}
	return fmt.Sprintf("state(%d)", int(st))
}

// step runs st and returns the state that follows it.
func (s *Session) step(st state) (state, error) {
	switch st {
	case stateSelectFirst:
		return s.selectFirst()
	case stateDisplayFacts:
		return s.displayFacts()
	case stateDisplayYears:
		return s.displayYears()
	case stateSelectSecond:
		return s.selectSecond()
	case stateDisplayDistance:
		return s.displayDistance()
	case stateConfirmAdd:
		return s.confirmAdd()
	case stateCollectPlanets:
		return s.collectPlanets()
	case stateReport:
		return s.report()
	}
	return stateDone, nil
}

func (s *Session) selectFirst() (state, error) {
	fmt.Fprintln(s.out, "Which planet would you like to learn about?")
	p, ok, err := s.choosePlanet()
	if err != nil {
		return stateDone, err
	}
	if !ok {
		s.outcome = OutcomeExited
		return stateDone, nil
	}
	s.first = p
	return stateDisplayFacts, nil
}

func (s *Session) displayFacts() (state, error) {
	PrintFacts(s.out, s.first, s.facts, s.width)
	return stateDisplayYears, nil
}

func (s *Session) displayYears() (state, error) {
	if err := PrintYears(s.out, s.system, s.first); err != nil {
		return stateDone, err
	}
	return stateSelectSecond, nil
}

func (s *Session) selectSecond() (state, error) {
	fmt.Fprintln(s.out, "\nOk, choose another planet to calculate the distance between the planets!")
	p, ok, err := s.choosePlanet()
	if err != nil {
		return stateDone, err
	}
	if !ok {
		s.outcome = OutcomeExited
		return stateDone, nil
	}
	s.second = p
	return stateDisplayDistance, nil
}

func (s *Session) displayDistance() (state, error) {
	d, err := planet.DistanceBetween(s.first, s.second)
	if err != nil {
		return stateDone, err
	}
	fmt.Fprintf(s.out, "%s is %s %s from %s.\n",
		s.first.Name, format.Decimal(planet.RoundTo(d, 2)), planet.UnitFor(planet.FactDistanceFromSun), s.second.Name)
	return stateConfirmAdd, nil
}

func (s *Session) confirmAdd() (state, error) {
	fmt.Fprint(s.out, "\nDo you want to add some new planets to the solar system? > ")
	for {
		answer, err := s.readLine()
		if err != nil {
			return stateDone, err
		}
		switch answer {
		case "yes":
			return stateCollectPlanets, nil
		case "no":
			fmt.Fprintln(s.out, "OK BYE")
			s.outcome = OutcomeDeclined
			return stateDone, nil
		}
		fmt.Fprint(s.out, "Please type 'yes' or 'no' > ")
	}
}

func (s *Session) collectPlanets() (state, error) {
	fmt.Fprintln(s.out, "Ok, type up some planet names! (type 'exit' to stop)")
	for {
		fmt.Fprint(s.out, "Planet Name: ")
		name, err := s.readLine()
		if err != nil {
			return stateDone, err
		}
		if name == "exit" {
			return stateReport, nil
		}
		s.system.AddPlanet(planet.New(name))
		s.log.Debug("planet added", "name", name, "planets", s.system.Len())
	}
}

func (s *Session) report() (state, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "BREAKING NEWS! %s HAS NEW PLANETS.\n", strings.ToUpper(s.system.Name))
	fmt.Fprintf(s.out, "Here are all the planets in %s:\n", s.system.Name)
	for _, name := range s.system.PlanetNames() {
		fmt.Fprintf(s.out, "  %s\n", name)
	}
	s.outcome = OutcomeCompleted
	return stateDone, nil
}
