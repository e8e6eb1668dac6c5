package proforma

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/proteomelab/go-proforma/internal/lexer"
	"github.com/proteomelab/go-proforma/internal/parser"
	"github.com/proteomelab/go-proforma/internal/writer"
	"github.com/proteomelab/go-proforma/sequence"
)

// Peptidoform is a peptide sequence with its modifications and charge
// state, parsed from ProForma v2 notation.
//
// Derived values (canonical text, composition, mass, m/z) are recomputed
// from the stored state on every call. RenameModifications,
// AddFixedModifications and ApplyFixedModifications mutate that state
// without locking; callers sharing one instance across goroutines must
// serialize writers externally.
type Peptidoform struct {
	parsed sequence.Parsed
	props  sequence.Properties
}

// Parse parses a peptidoform from ProForma v2 notation.
//
//	pf, err := proforma.Parse("ACDM[Oxidation]EK")
//
// Inputs carrying isotopic labeling (for example "<13C>") are rejected with
// an *UnsupportedFeatureError.
func Parse(text string) (*Peptidoform, error) {
	l := lexer.New(text)
	p := parser.New(l)
	parsed, props := p.Parse()

	if msgs := p.Errors(); len(msgs) > 0 {
		return nil, fmt.Errorf("proforma: parsing error: %s", strings.Join(msgs, "; "))
	}
	if len(props.Isotopes) > 0 {
		return nil, &UnsupportedFeatureError{Feature: "isotope labeling"}
	}

	return &Peptidoform{parsed: parsed, props: props}, nil
}

// Sequence returns the stripped residue sequence, N- to C-terminal, with
// all modifications removed.
func (p *Peptidoform) Sequence() string {
	return p.parsed.Sequence()
}

// Proforma returns the peptidoform in canonical ProForma v2 notation.
// Parsing the result and serializing it again yields the same text.
func (p *Peptidoform) Proforma() string {
	return writer.Write(p.parsed, p.props)
}

// String returns the canonical ProForma notation.
func (p *Peptidoform) String() string {
	return p.Proforma()
}

// PrecursorCharge returns the precursor charge and whether a charge state
// was annotated. An explicit charge of zero reports (0, true); a missing
// annotation reports (0, false).
func (p *Peptidoform) PrecursorCharge() (int, bool) {
	if p.props.Charge == nil {
		return 0, false
	}
	return p.props.Charge.Charge, true
}

// Equal reports whether p and other serialize to the same canonical text.
// Internal representation differences that do not survive serialization do
// not affect equality.
func (p *Peptidoform) Equal(other *Peptidoform) bool {
	if other == nil {
		return false
	}
	return p.Proforma() == other.Proforma()
}

// Hash returns a 64-bit FNV-1a hash of the canonical text. Peptidoforms
// that are Equal hash identically.
func (p *Peptidoform) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.Proforma()))
	return h.Sum64()
}
