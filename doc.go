/*
Package proforma represents modified peptide sequences (peptidoforms) parsed
from ProForma v2 notation and computes their atomic composition,
monoisotopic mass and mass-to-charge ratio.

# Parsing and derived properties

A Peptidoform is constructed once from notation text and then queried:

	pf, err := proforma.Parse("ACDM[Oxidation]EK/2")
	if err != nil {
		// handle error
	}
	pf.Sequence() // "ACDMEK"
	mass, _ := pf.Mass()
	mz, ok, _ := pf.MZ() // ok is false when no charge is annotated

The supported notation subset covers localized tags ("M[Oxidation]"),
N- and C-terminal tags ("[Acetyl]-PEP", "PEP-[Amidated]"), labile tags
("{Formula:C6H10O5}"), unlocalized tags ("[Phospho]?", "[Phospho]^2?"),
fixed-modification rules ("<[Carbamidomethyl]@C>") and a trailing charge
("/2", "/-1"). Tag text may be a modification name from the built-in
reference table, a signed mass shift ("+15.9949"), or a chemical formula
("Formula:C2H2O"). Isotopic labeling ("<13C>") is not supported and is
rejected at construction.

# Composition and mass accounting

SequentialComposition and SequentialMass return one entry for the
N-terminus, one per residue and one for the C-terminus. Composition and
Mass aggregate those entries together with labile and unlocalized
modifications, so the per-position values always sum exactly to the
whole-molecule values. Resolution failures are classified: an unknown
residue code yields *AmbiguousResidueError, an unresolvable tag yields
*ModificationError.

# Rewriting

Three operations mutate a Peptidoform in place. RenameModifications maps
tag labels to new labels across every tag location. AddFixedModifications
appends fixed-modification rules, and ApplyFixedModifications materializes
the rules as localized tags:

	pf, _ := proforma.Parse("ATPEILTCNSIGCLK")
	pf.AddFixedModifications([]proforma.FixedModification{
		{Label: "Carbamidomethyl", Targets: []string{"C"}},
	})
	pf.ApplyFixedModifications()
	pf.Proforma() // "ATPEILTC[Carbamidomethyl]NSIGC[Carbamidomethyl]LK"

Equality and hashing are defined by the canonical text: two peptidoforms
compare Equal exactly when Proforma returns identical strings.
*/
package proforma
