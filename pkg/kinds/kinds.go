// Package kinds classifies navigator names into behavioral kinds. Overlay
// (modal) navigators stack above the main flow and can be dismissed
// independently; the detail navigator hosts the central detail pane whose
// identity drives push-vs-navigate decisions.
//
// Classification is pure: it depends only on the name and the table it is
// asked against, never on tree state.
package kinds

import (
	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/registry"
)

// Default navigator kind names
const (
	LeftOverlay  = "left-overlay"
	RightOverlay = "right-overlay"
	DetailPane   = "detail-pane"
)

// Kind describes the behavioral traits of one navigator name
type Kind struct {
	// Name is the navigator identifier routes are matched against
	Name string

	// Modal marks overlay-style navigators
	Modal bool

	// Detail marks the central detail-pane navigator
	Detail bool
}

// Table is an immutable-after-construction classification table
type Table struct {
	reg registry.Registry[Kind]
}

// NewTable builds a classification table from the given kinds. Duplicate
// names are rejected.
func NewTable(list ...Kind) (*Table, error) {
	reg := registry.New[Kind]()
	for _, k := range list {
		if err := reg.Register(k.Name, k); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot register navigator kind %q", k.Name)
		}
	}
	return &Table{reg: reg}, nil
}

// DefaultTable returns the built-in classification: two overlay kinds and
// one detail pane
func DefaultTable() *Table {
	t, err := NewTable(
		Kind{Name: LeftOverlay, Modal: true},
		Kind{Name: RightOverlay, Modal: true},
		Kind{Name: DetailPane, Detail: true},
	)
	if err != nil {
		// The built-in list has no duplicates
		panic(err)
	}
	return t
}

// IsModal reports whether the named navigator is overlay-style. Unknown
// names are never modal.
func (t *Table) IsModal(name string) bool {
	k, err := t.reg.Get(name)
	if err != nil {
		return false
	}
	return k.Modal
}

// IsDetail reports whether the named navigator is the detail pane
func (t *Table) IsDetail(name string) bool {
	k, err := t.reg.Get(name)
	if err != nil {
		return false
	}
	return k.Detail
}

// ModalNames returns the registered overlay navigator names, sorted
func (t *Table) ModalNames() []string {
	var out []string
	for _, name := range t.reg.List() {
		if t.IsModal(name) {
			out = append(out, name)
		}
	}
	return out
}

// DetailNavigator returns the name of the detail-pane navigator, or false
// when the table defines none
func (t *Table) DetailNavigator() (string, bool) {
	for _, name := range t.reg.List() {
		if t.IsDetail(name) {
			return name, true
		}
	}
	return "", false
}
