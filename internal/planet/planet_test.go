package planet

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func earth() Planet {
	return Planet{
		Name:            "Earth",
		Mass:            Float(5.97),
		Diameter:        Int(12756),
		Moons:           Int(1),
		DistanceFromSun: Float(149.6),
		Rings:           Int(0),
		YearLength:      Int(31_629_460),
	}
}

func mars() Planet {
	return Planet{
		Name:            "Mars",
		Mass:            Float(0.642),
		Diameter:        Int(6792),
		Moons:           Int(2),
		DistanceFromSun: Float(227.9),
		Rings:           Int(0),
		YearLength:      Int(59_722_203),
	}
}

func sol(planets ...Planet) *SolarSystem {
	return NewSolarSystem("Sol", AgeFromYears(4_600_000_000_000), planets)
}

func TestAgeFromYears(t *testing.T) {
	t.Parallel()
	want, _ := new(big.Int).SetString("145065600000000000000", 10)
	if got := AgeFromYears(4_600_000_000_000); got.Cmp(want) != 0 {
		t.Errorf("AgeFromYears = %s, want %s", got, want)
	}
}

func TestNew_OnlyName(t *testing.T) {
	t.Parallel()
	p := New("Vulcan")
	if p.Name != "Vulcan" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Mass != nil || p.Diameter != nil || p.Moons != nil || p.DistanceFromSun != nil || p.Rings != nil || p.YearLength != nil {
		t.Errorf("expected all numeric fields unset, got %+v", p)
	}
}

func TestSolarSystem_AddPlanetPreservesOrder(t *testing.T) {
	t.Parallel()
	s := sol(earth(), mars())
	s.AddPlanet(New("Vulcan"))
	s.AddPlanet(New("Vulcan"))
	s.AddPlanets([]Planet{New("Krypton"), New("")})

	want := []string{"Earth", "Mars", "Vulcan", "Vulcan", "Krypton", ""}
	if diff := cmp.Diff(want, s.PlanetNames()); diff != "" {
		t.Errorf("PlanetNames mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != len(want) {
		t.Errorf("Len = %d, want %d", s.Len(), len(want))
	}
	if got := s.Planet(4).Name; got != "Krypton" {
		t.Errorf("Planet(4) = %q", got)
	}
}

func TestSolarSystem_CopiesInputs(t *testing.T) {
	t.Parallel()
	planets := []Planet{earth()}
	age := big.NewInt(100)
	s := NewSolarSystem("Sol", age, planets)

	planets[0].Name = "changed"
	age.SetInt64(1)
	if s.Planet(0).Name != "Earth" {
		t.Error("system shares the caller's planet slice")
	}
	if s.Age().Int64() != 100 {
		t.Error("system shares the caller's age")
	}

	s.Age().SetInt64(5)
	if s.Age().Int64() != 100 {
		t.Error("Age exposes internal state")
	}

	out := s.Planets()
	out[0].Name = "mutated"
	if s.Planet(0).Name != "Earth" {
		t.Error("Planets exposes internal slice")
	}
}

func TestPlanetNames_NoSideEffects(t *testing.T) {
	t.Parallel()
	s := sol(earth())
	names := s.PlanetNames()
	names[0] = "x"
	if got := s.PlanetNames()[0]; got != "Earth" {
		t.Errorf("PlanetNames leaked mutation: %q", got)
	}
}

func TestPlanetYears(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		yearLength int64
		want       string
	}{
		{"Mercury", 22_823_370, "6356011404100"},
		{"Earth", 31_629_460, "4586407735067"},
		{"Mars", 59_722_203, "2429006177149"},
		{"Pluto", 7_888_669_165, "18389109362"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Planet{Name: tt.name, YearLength: Int(tt.yearLength)}
			got, err := PlanetYears(sol(), p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("PlanetYears(%s) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestPlanetYears_DoesNotMutateAge(t *testing.T) {
	t.Parallel()
	s := sol()
	before := s.Age()
	if _, err := PlanetYears(s, earth()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Age().Cmp(before) != 0 {
		t.Errorf("age changed from %s to %s", before, s.Age())
	}
}

func TestPlanetYears_UnknownYearLength(t *testing.T) {
	t.Parallel()
	for _, p := range []Planet{New("Vulcan"), {Name: "Zero", YearLength: Int(0)}, {Name: "Neg", YearLength: Int(-5)}} {
		_, err := PlanetYears(sol(), p)
		if !errors.Is(err, ErrDivision) {
			t.Errorf("PlanetYears(%s) error = %v, want ErrDivision", p.Name, err)
		}
	}
}

func TestDistanceBetween(t *testing.T) {
	t.Parallel()
	d, err := DistanceBetween(earth(), mars())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := RoundTo(d, 2); got != 78.3 {
		t.Errorf("rounded distance = %v, want 78.3", got)
	}

	back, err := DistanceBetween(mars(), earth())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("distance not symmetric: %v vs %v", d, back)
	}

	self, _ := DistanceBetween(earth(), earth())
	if self != 0 {
		t.Errorf("self distance = %v", self)
	}
}

func TestDistanceBetween_UnknownValue(t *testing.T) {
	t.Parallel()
	if _, err := DistanceBetween(earth(), New("Vulcan")); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("error = %v, want ErrUnknownValue", err)
	}
	if _, err := DistanceBetween(New("Vulcan"), earth()); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("error = %v, want ErrUnknownValue", err)
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{78.30000000000001, 2, 78.3},
		{1.005, 1, 1},
		{2.675, 0, 3},
		{5848.5, 2, 5848.5},
	}
	for _, tt := range tests {
		tt := tt
		if got := RoundTo(tt.in, tt.places); got != tt.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestFacts_TableOrder(t *testing.T) {
	t.Parallel()
	var keys, units []string
	for _, f := range Facts() {
		keys = append(keys, f.Key)
		units = append(units, f.Unit)
	}
	wantKeys := []string{"mass", "diameter", "moons", "distance_from_the_sun", "rings", "length_of_planet_year"}
	wantUnits := []string{"10^24 kg", "km", "moon(s)", "10^6 km", "rings", "seconds"}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantUnits, units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestFacts_Values(t *testing.T) {
	t.Parallel()
	jupiter := Planet{Name: "Jupiter", Mass: Float(1898), YearLength: Int(376_882_324)}
	got := map[string]string{}
	for _, f := range Facts() {
		got[f.Key] = f.Value(jupiter)
	}
	want := map[string]string{
		"mass":                  "1898",
		"diameter":              "",
		"moons":                 "",
		"distance_from_the_sun": "",
		"rings":                 "",
		"length_of_planet_year": "376882324",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupFact(t *testing.T) {
	t.Parallel()
	f, ok := LookupFact(FactDistanceFromSun)
	if !ok {
		t.Fatal("distance fact not found")
	}
	if f.Value(earth()) != "149.6" {
		t.Errorf("value = %q", f.Value(earth()))
	}
	if _, ok := LookupFact("color"); ok {
		t.Error("unexpected fact for unknown key")
	}
	if UnitFor(FactDistanceFromSun) != "10^6 km" {
		t.Errorf("UnitFor = %q", UnitFor(FactDistanceFromSun))
	}
	if UnitFor("color") != "" {
		t.Error("UnitFor unknown key should be empty")
	}
}

func TestSolarSystem_Find(t *testing.T) {
	t.Parallel()
	s := sol(earth(), mars())
	s.AddPlanet(New("Earth"))

	p, ok := s.Find("eArTh")
	if !ok {
		t.Fatal("Earth not found")
	}
	if p.YearLength == nil {
		t.Error("Find returned the later duplicate instead of the first match")
	}
	if _, ok := s.Find("Vulcan"); ok {
		t.Error("found a planet that does not exist")
	}
}
