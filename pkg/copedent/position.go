package copedent

import "strings"

// Position is a named set of simultaneously engaged controls. The zero
// value (no controls) is the open position.
type Position struct {
	// Name is the display label: "Open", a control label, or a compound
	// label such as "A+B".
	Name string

	// Controls lists the engaged controls. Empty means open strings.
	Controls []Control
}

// Open returns the open-strings position.
func Open() Position {
	return Position{Name: "Open"}
}

// NewPosition builds a position from engaged controls, deriving its label.
func NewPosition(controls ...Control) Position {
	if len(controls) == 0 {
		return Open()
	}
	return Position{Name: joinLabel(controls), Controls: controls}
}

// IsOpen reports whether the position engages no controls.
func (p Position) IsOpen() bool {
	return len(p.Controls) == 0
}

// String returns the position label.
func (p Position) String() string {
	return p.Name
}

// joinLabel joins control labels with "+": pedals A and B become "A+B".
func joinLabel(controls []Control) string {
	labels := make([]string, len(controls))
	for i, c := range controls {
		labels[i] = c.String()
	}
	return strings.Join(labels, "+")
}

// buildCatalog assembles the curated catalog: Open, every single control
// in chart order, then the given compounds.
func buildCatalog(controls []Control, compounds [][]Control) []Position {
	catalog := make([]Position, 0, 1+len(controls)+len(compounds))
	catalog = append(catalog, Open())
	for _, c := range controls {
		catalog = append(catalog, NewPosition(c))
	}
	for _, combo := range compounds {
		catalog = append(catalog, NewPosition(combo...))
	}
	return catalog
}
