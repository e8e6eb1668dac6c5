package chem

// Monoisotopic masses of the most abundant natural isotope of each element,
// NIST reference values.
var elementMass = map[string]float64{
	"H":  1.00782503207,
	"C":  12.0,
	"N":  14.0030740048,
	"O":  15.99491461956,
	"S":  31.97207100,
	"P":  30.97376163,
	"Se": 79.9165213,
	"Na": 22.9897692809,
	"K":  38.96370668,
	"Ca": 39.96259098,
	"Mg": 23.9850417,
	"Fe": 55.9349375,
	"Zn": 63.9291422,
	"Cl": 34.96885268,
	"F":  18.99840322,
	"Br": 78.9183371,
	"I":  126.904473,
	"B":  11.0093054,
	"Si": 27.9769265325,
}

// ElementMass returns the monoisotopic mass of the element with the given
// symbol.
func ElementMass(symbol string) (float64, bool) {
	m, ok := elementMass[symbol]
	return m, ok
}

// ProtonMass returns the mass added to a molecule per unit of positive
// charge. It is sourced from the hydrogen-1 entry of the element table.
func ProtonMass() float64 {
	return elementMass["H"]
}
