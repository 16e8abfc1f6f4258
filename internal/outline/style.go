package outline

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Style selects the outline technique
type Style int

const (
	// RimDiscard displaces along normals and discards camera-facing fragments
	RimDiscard Style = iota
	// ScaledShell scales the clone uniformly and fills it with flat color
	ScaledShell
)

// Styles lists every known style in declaration order
var Styles = []Style{RimDiscard, ScaledShell}

var styleNames = map[Style]string{
	RimDiscard:  "rim",
	ScaledShell: "shell",
}

// String returns the short name used in config and flags
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ProgramName returns the name the shader program is registered under
func (s Style) ProgramName() string {
	switch s {
	case RimDiscard:
		return "customOutline"
	case ScaledShell:
		return "customScale"
	default:
		return ""
	}
}

// Valid reports whether s is a known style
func (s Style) Valid() bool {
	_, ok := styleNames[s]
	return ok
}

// ParseStyle parses a style name. Program names are accepted as aliases.
func ParseStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Styles {
		if key == s.String() || key == strings.ToLower(s.ProgramName()) {
			return s, nil
		}
	}

	err := fmt.Errorf("unknown outline style %q", name)
	if suggestion := closestStyle(key); suggestion != "" {
		err = fmt.Errorf("%w (did you mean %q?)", err, suggestion)
	}
	return RimDiscard, err
}

// closestStyle returns the nearest style name within an edit distance of 2
func closestStyle(key string) string {
	best := ""
	bestDist := 3
	for _, s := range Styles {
		if d := levenshtein.ComputeDistance(key, s.String()); d < bestDist {
			best = s.String()
			bestDist = d
		}
	}
	return best
}

// MarshalText implements encoding.TextMarshaler
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal %v", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Range returns the slider bounds for the outline scale
func (s Style) Range() (min, max float64) {
	if s == ScaledShell {
		return 1.0, 1.2
	}
	return 0, 0.2
}

// DefaultScale returns the initial slider value
func (s Style) DefaultScale() float64 {
	if s == ScaledShell {
		return 1.05
	}
	return 0
}

// UsesCameraPosition reports whether the fragment stage reads the camera position
func (s Style) UsesCameraPosition() bool {
	return s == RimDiscard
}

// ResetsScale reports whether the clone's own scale is reset to identity
func (s Style) ResetsScale() bool {
	return s == ScaledShell
}
