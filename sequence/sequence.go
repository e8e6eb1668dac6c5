// Package sequence defines the parsed data model of a ProForma peptidoform:
// the ordered residue positions with their modification tags, and the
// sequence-wide properties (termini, labile and unlocalized modifications,
// fixed-modification rules, charge, isotope labels).
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/proteomelab/go-proforma/chem"
)

// TagKind classifies how a modification tag's text resolves to a
// composition and mass.
type TagKind int

const (
	// TagNamed is a modification name resolved against the reference table.
	TagNamed TagKind = iota
	// TagMassShift is a bare signed mass delta such as "+15.9949". It has a
	// mass but no composition.
	TagMassShift
	// TagFormula is a chemical formula such as "Formula:C2H2O".
	TagFormula
)

// Tag is a single modification tag. Label is the text as written between
// the brackets and is the tag's identity for equality, renaming and
// serialization. Composition and mass are resolved lazily on demand.
type Tag struct {
	Label string
	Kind  TagKind
	shift float64
}

// NewTag classifies a tag label. Classification never fails; labels that
// cannot be resolved are reported by Composition and Mass instead.
func NewTag(label string) Tag {
	if shift, err := strconv.ParseFloat(label, 64); err == nil && (strings.HasPrefix(label, "+") || strings.HasPrefix(label, "-")) {
		return Tag{Label: label, Kind: TagMassShift, shift: shift}
	}
	if len(label) > len("Formula:") && strings.EqualFold(label[:len("Formula:")], "Formula:") {
		return Tag{Label: label, Kind: TagFormula}
	}
	return Tag{Label: label, Kind: TagNamed}
}

// name returns the lookup key of a named tag, stripping an optional
// "U:" or "UNIMOD:" prefix.
func (t Tag) name() string {
	for _, prefix := range []string{"U:", "UNIMOD:"} {
		if len(t.Label) > len(prefix) && strings.EqualFold(t.Label[:len(prefix)], prefix) {
			return t.Label[len(prefix):]
		}
	}
	return t.Label
}

// Composition resolves the tag to its delta composition. Mass-shift tags
// and unknown modification names cannot be resolved.
func (t Tag) Composition() (chem.Composition, error) {
	switch t.Kind {
	case TagMassShift:
		return nil, fmt.Errorf("mass shift %q has no composition", t.Label)
	case TagFormula:
		return chem.ParseFormula(t.Label[len("Formula:"):])
	default:
		comp, ok := chem.LookupModification(t.name())
		if !ok {
			return nil, fmt.Errorf("unknown modification %q", t.Label)
		}
		return comp, nil
	}
}

// Mass resolves the tag to its monoisotopic mass delta.
func (t Tag) Mass() (float64, error) {
	if t.Kind == TagMassShift {
		return t.shift, nil
	}
	comp, err := t.Composition()
	if err != nil {
		return 0, err
	}
	return comp.Mass()
}

// Position is one residue of the parsed sequence together with its
// localized modification tags, if any.
type Position struct {
	Residue byte
	Tags    []Tag
}

// Parsed is the ordered residue sequence, N- to C-terminal.
type Parsed []Position

// Sequence returns the plain residue string with modifications stripped.
func (p Parsed) Sequence() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, pos := range p {
		b.WriteByte(pos.Residue)
	}
	return b.String()
}

// FixedModRule states that Tag applies at every occurrence of any of the
// target residues.
type FixedModRule struct {
	Tag     Tag
	Targets []byte
}

// ChargeState is the precursor charge annotation. It is carried as a struct
// so an explicit charge of zero stays distinguishable from no annotation.
type ChargeState struct {
	Charge int
}

// Properties holds the sequence-wide annotations of a peptidoform.
type Properties struct {
	NTerm       []Tag
	CTerm       []Tag
	Unlocalized []Tag
	Labile      []Tag
	Fixed       []FixedModRule
	Charge      *ChargeState
	Isotopes    []string
}
