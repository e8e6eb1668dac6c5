package chem

// Elemental compositions of amino-acid residues (the in-chain form, without
// the terminal H and OH). Covers the twenty standard residues plus
// selenocysteine (U) and pyrrolysine (O). Ambiguity codes such as X, B and Z
// have no defined composition and are deliberately absent.
var residueComposition = map[byte]Composition{
	'A': {"C": 3, "H": 5, "N": 1, "O": 1},
	'R': {"C": 6, "H": 12, "N": 4, "O": 1},
	'N': {"C": 4, "H": 6, "N": 2, "O": 2},
	'D': {"C": 4, "H": 5, "N": 1, "O": 3},
	'C': {"C": 3, "H": 5, "N": 1, "O": 1, "S": 1},
	'E': {"C": 5, "H": 7, "N": 1, "O": 3},
	'Q': {"C": 5, "H": 8, "N": 2, "O": 2},
	'G': {"C": 2, "H": 3, "N": 1, "O": 1},
	'H': {"C": 6, "H": 7, "N": 3, "O": 1},
	'I': {"C": 6, "H": 11, "N": 1, "O": 1},
	'L': {"C": 6, "H": 11, "N": 1, "O": 1},
	'K': {"C": 6, "H": 12, "N": 2, "O": 1},
	'M': {"C": 5, "H": 9, "N": 1, "O": 1, "S": 1},
	'F': {"C": 9, "H": 9, "N": 1, "O": 1},
	'P': {"C": 5, "H": 7, "N": 1, "O": 1},
	'S': {"C": 3, "H": 5, "N": 1, "O": 2},
	'T': {"C": 4, "H": 7, "N": 1, "O": 2},
	'W': {"C": 11, "H": 10, "N": 2, "O": 1},
	'Y': {"C": 9, "H": 9, "N": 1, "O": 2},
	'V': {"C": 5, "H": 9, "N": 1, "O": 1},
	'U': {"C": 3, "H": 5, "N": 1, "O": 1, "Se": 1},
	'O': {"C": 12, "H": 19, "N": 3, "O": 2},
}

// residueMass is derived from residueComposition so the two tables cannot
// drift apart.
var residueMass = func() map[byte]float64 {
	out := make(map[byte]float64, len(residueComposition))
	for aa, comp := range residueComposition {
		m, err := comp.Mass()
		if err != nil {
			panic(err)
		}
		out[aa] = m
	}
	return out
}()

// ResidueComposition returns a copy of the elemental composition of the
// residue with the given one-letter code.
func ResidueComposition(aa byte) (Composition, bool) {
	comp, ok := residueComposition[aa]
	if !ok {
		return nil, false
	}
	return comp.Clone(), true
}

// ResidueMass returns the monoisotopic mass of the residue with the given
// one-letter code.
func ResidueMass(aa byte) (float64, bool) {
	m, ok := residueMass[aa]
	return m, ok
}
