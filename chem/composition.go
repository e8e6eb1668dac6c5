package chem

import (
	"fmt"
	"sort"
	"strings"
)

// Composition maps chemical element symbols to signed atom counts.
// Negative counts are legal and describe a net loss of atoms, as in
// deamidation or water loss.
type Composition map[string]int

// Clone returns an independent copy of c.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for el, n := range c {
		out[el] = n
	}
	return out
}

// Add accumulates other into c. Entries that cancel to zero are removed so
// that equal compositions always have equal map contents.
func (c Composition) Add(other Composition) {
	for el, n := range other {
		c.AddCount(el, n)
	}
}

// AddCount adds n atoms of element el to c, pruning zero entries.
func (c Composition) AddCount(el string, n int) {
	next := c[el] + n
	if next == 0 {
		delete(c, el)
	} else {
		c[el] = next
	}
}

// Equal reports whether c and other describe the same atom counts.
func (c Composition) Equal(other Composition) bool {
	if len(c) != len(other) {
		return false
	}
	for el, n := range c {
		if other[el] != n {
			return false
		}
	}
	return true
}

// Mass returns the monoisotopic mass of c. An element symbol absent from
// the element table is reported as an error.
func (c Composition) Mass() (float64, error) {
	var m float64
	for el, n := range c {
		em, ok := ElementMass(el)
		if !ok {
			return 0, fmt.Errorf("chem: unknown element %q", el)
		}
		m += em * float64(n)
	}
	return m, nil
}

// String renders c as a formula with elements in Hill order (carbon,
// hydrogen, then alphabetical).
func (c Composition) String() string {
	els := make([]string, 0, len(c))
	for el := range c {
		if el != "C" && el != "H" {
			els = append(els, el)
		}
	}
	sort.Strings(els)
	if _, ok := c["H"]; ok {
		els = append([]string{"H"}, els...)
	}
	if _, ok := c["C"]; ok {
		els = append([]string{"C"}, els...)
	}

	var b strings.Builder
	for _, el := range els {
		fmt.Fprintf(&b, "%s%d", el, c[el])
	}
	return b.String()
}
