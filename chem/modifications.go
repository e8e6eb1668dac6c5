package chem

import "strings"

// Delta compositions for a curated set of common modifications, keyed by
// their Unimod interim names. Entries with isotope-labelled elements (TMT,
// iTRAQ, SILAC labels) are excluded because the element table carries only
// the most abundant isotopes.
var modificationComposition = map[string]Composition{
	"Acetyl":          {"C": 2, "H": 2, "O": 1},
	"Amidated":        {"H": 1, "N": 1, "O": -1},
	"Biotin":          {"C": 10, "H": 14, "N": 2, "O": 2, "S": 1},
	"Carbamidomethyl": {"C": 2, "H": 3, "N": 1, "O": 1},
	"Carbamyl":        {"C": 1, "H": 1, "N": 1, "O": 1},
	"Deamidated":      {"H": -1, "N": -1, "O": 1},
	"Dehydrated":      {"H": -2, "O": -1},
	"Dimethyl":        {"C": 2, "H": 4},
	"Formyl":          {"C": 1, "O": 1},
	"Gln->pyro-Glu":   {"H": -3, "N": -1},
	"Glu->pyro-Glu":   {"H": -2, "O": -1},
	"Methyl":          {"C": 1, "H": 2},
	"Oxidation":       {"O": 1},
	"Phospho":         {"H": 1, "O": 3, "P": 1},
	"Propionamide":    {"C": 3, "H": 5, "N": 1, "O": 1},
	"Succinyl":        {"C": 4, "H": 4, "O": 3},
	"Sulfo":           {"O": 3, "S": 1},
	"Trimethyl":       {"C": 3, "H": 6},
}

// modificationIndex keys the table by lower-cased name for case-insensitive
// lookup.
var modificationIndex = func() map[string]Composition {
	out := make(map[string]Composition, len(modificationComposition))
	for name, comp := range modificationComposition {
		out[strings.ToLower(name)] = comp
	}
	return out
}()

// LookupModification returns a copy of the delta composition for the named
// modification. The lookup is case-insensitive.
func LookupModification(name string) (Composition, bool) {
	comp, ok := modificationIndex[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return comp.Clone(), true
}
