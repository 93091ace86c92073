package feiertage

import (
	"fmt"
	"strings"
)

// State represents one of the 16 German federal states
type State int

const (
	BadenWuerttemberg State = iota
	Bayern
	Berlin
	Brandenburg
	Bremen
	Hamburg
	Hessen
	MecklenburgVorpommern
	Niedersachsen
	NordrheinWestfalen
	RheinlandPfalz
	Saarland
	Sachsen
	SachsenAnhalt
	SchleswigHolstein
	Thueringen
)

// stateInfo holds the ISO 3166-2:DE code and German name for a state
type stateInfo struct {
	code string
	name string
}

var stateInfos = [...]stateInfo{
	BadenWuerttemberg:     {"DE-BW", "Baden-Württemberg"},
	Bayern:                {"DE-BY", "Bayern"},
	Berlin:                {"DE-BE", "Berlin"},
	Brandenburg:           {"DE-BB", "Brandenburg"},
	Bremen:                {"DE-HB", "Bremen"},
	Hamburg:               {"DE-HH", "Hamburg"},
	Hessen:                {"DE-HE", "Hessen"},
	MecklenburgVorpommern: {"DE-MV", "Mecklenburg-Vorpommern"},
	Niedersachsen:         {"DE-NI", "Niedersachsen"},
	NordrheinWestfalen:    {"DE-NW", "Nordrhein-Westfalen"},
	RheinlandPfalz:        {"DE-RP", "Rheinland-Pfalz"},
	Saarland:              {"DE-SL", "Saarland"},
	Sachsen:               {"DE-SN", "Sachsen"},
	SachsenAnhalt:         {"DE-ST", "Sachsen-Anhalt"},
	SchleswigHolstein:     {"DE-SH", "Schleswig-Holstein"},
	Thueringen:            {"DE-TH", "Thüringen"},
}

// AllStates returns all 16 federal states in declaration order
func AllStates() []State {
	states := make([]State, len(stateInfos))
	for i := range states {
		states[i] = State(i)
	}
	return states
}

// Valid reports whether the state is one of the 16 recognized values
func (s State) Valid() bool {
	return s >= BadenWuerttemberg && s <= Thueringen
}

// Code returns the ISO 3166-2:DE code of the state (e.g. "DE-BY")
func (s State) Code() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateInfos[s].code
}

// Name returns the German name of the state (e.g. "Bayern")
func (s State) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateInfos[s].name
}

// String returns the ISO code of the state
func (s State) String() string {
	return s.Code()
}

// ParseState parses a state from its ISO 3166-2:DE code (with or without the
// "DE-" prefix) or its German name. Matching is case-insensitive.
func ParseState(value string) (State, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return 0, fmt.Errorf("parse state %q: %w", value, ErrUnknownState)
	}

	for i, info := range stateInfos {
		code := strings.ToLower(info.code)
		if normalized == code || normalized == strings.TrimPrefix(code, "de-") {
			return State(i), nil
		}
		if normalized == strings.ToLower(info.name) {
			return State(i), nil
		}
	}

	return 0, fmt.Errorf("parse state %q: %w", value, ErrUnknownState)
}
