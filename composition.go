package proforma

import (
	"gonum.org/v1/gonum/floats"

	"github.com/proteomelab/go-proforma/chem"
	"github.com/proteomelab/go-proforma/sequence"
)

// SequentialComposition returns the atomic composition of the N-terminus,
// of each (modified) residue in order, and of the C-terminus: always
// len(sequence)+2 entries.
//
// The N-terminus starts at H, the C-terminus at OH. Fixed-modification
// rules contribute at every target residue in addition to any localized
// tags there. When several rules target the same residue, the last rule
// wins for this accounting.
func (p *Peptidoform) SequentialComposition() ([]chem.Composition, error) {
	fixedRules := make(map[byte]chem.Composition)
	for _, rule := range p.props.Fixed {
		comp, err := p.tagComposition(rule.Tag)
		if err != nil {
			return nil, err
		}
		for _, target := range rule.Targets {
			fixedRules[target] = comp
		}
	}

	compList := make([]chem.Composition, 0, len(p.parsed)+2)

	nTerm := chem.Composition{"H": 1}
	for _, tag := range p.props.NTerm {
		comp, err := p.tagComposition(tag)
		if err != nil {
			return nil, err
		}
		nTerm.Add(comp)
	}
	compList = append(compList, nTerm)

	for _, pos := range p.parsed {
		positionComp, ok := chem.ResidueComposition(pos.Residue)
		if !ok {
			return nil, &AmbiguousResidueError{Residue: pos.Residue}
		}
		if fixed, ok := fixedRules[pos.Residue]; ok {
			positionComp.Add(fixed)
		}
		for _, tag := range pos.Tags {
			comp, err := p.tagComposition(tag)
			if err != nil {
				return nil, err
			}
			positionComp.Add(comp)
		}
		compList = append(compList, positionComp)
	}

	cTerm := chem.Composition{"H": 1, "O": 1}
	for _, tag := range p.props.CTerm {
		comp, err := p.tagComposition(tag)
		if err != nil {
			return nil, err
		}
		cTerm.Add(comp)
	}
	compList = append(compList, cTerm)

	return compList, nil
}

// Composition returns the atomic composition of the whole peptidoform: the
// sum of SequentialComposition plus every labile and unlocalized
// modification.
func (p *Peptidoform) Composition() (chem.Composition, error) {
	seq, err := p.SequentialComposition()
	if err != nil {
		return nil, err
	}
	total := chem.Composition{}
	for _, comp := range seq {
		total.Add(comp)
	}
	for _, tag := range p.props.Labile {
		comp, err := p.tagComposition(tag)
		if err != nil {
			return nil, err
		}
		total.Add(comp)
	}
	for _, tag := range p.props.Unlocalized {
		comp, err := p.tagComposition(tag)
		if err != nil {
			return nil, err
		}
		total.Add(comp)
	}
	return total, nil
}

// SequentialMass returns the monoisotopic mass of the N-terminus, of each
// (modified) residue in order, and of the C-terminus. It mirrors
// SequentialComposition's traversal and error conditions exactly, with
// scalar accumulation instead of element counts.
func (p *Peptidoform) SequentialMass() ([]float64, error) {
	fixedRules := make(map[byte]float64)
	for _, rule := range p.props.Fixed {
		m, err := p.tagMass(rule.Tag)
		if err != nil {
			return nil, err
		}
		for _, target := range rule.Targets {
			fixedRules[target] = m
		}
	}

	massList := make([]float64, 0, len(p.parsed)+2)

	nTerm, _ := chem.ElementMass("H")
	for _, tag := range p.props.NTerm {
		m, err := p.tagMass(tag)
		if err != nil {
			return nil, err
		}
		nTerm += m
	}
	massList = append(massList, nTerm)

	for _, pos := range p.parsed {
		positionMass, ok := chem.ResidueMass(pos.Residue)
		if !ok {
			return nil, &AmbiguousResidueError{Residue: pos.Residue}
		}
		if fixed, ok := fixedRules[pos.Residue]; ok {
			positionMass += fixed
		}
		for _, tag := range pos.Tags {
			m, err := p.tagMass(tag)
			if err != nil {
				return nil, err
			}
			positionMass += m
		}
		massList = append(massList, positionMass)
	}

	hMass, _ := chem.ElementMass("H")
	oMass, _ := chem.ElementMass("O")
	cTerm := hMass + oMass
	for _, tag := range p.props.CTerm {
		m, err := p.tagMass(tag)
		if err != nil {
			return nil, err
		}
		cTerm += m
	}
	massList = append(massList, cTerm)

	return massList, nil
}

// Mass returns the monoisotopic mass of the full uncharged peptidoform.
func (p *Peptidoform) Mass() (float64, error) {
	seq, err := p.SequentialMass()
	if err != nil {
		return 0, err
	}
	total := floats.Sum(seq)
	for _, tag := range p.props.Labile {
		m, err := p.tagMass(tag)
		if err != nil {
			return 0, err
		}
		total += m
	}
	for _, tag := range p.props.Unlocalized {
		m, err := p.tagMass(tag)
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}

// MZ returns the monoisotopic mass-to-charge ratio of the peptidoform. The
// second return is false when no charge state is annotated or the charge is
// zero; that is absence, not an error.
func (p *Peptidoform) MZ() (float64, bool, error) {
	charge, ok := p.PrecursorCharge()
	if !ok || charge == 0 {
		return 0, false, nil
	}
	mass, err := p.Mass()
	if err != nil {
		return 0, false, err
	}
	mz := (mass + chem.ProtonMass()*float64(charge)) / float64(charge)
	return mz, true, nil
}

func (p *Peptidoform) tagComposition(tag sequence.Tag) (chem.Composition, error) {
	comp, err := tag.Composition()
	if err != nil {
		return nil, &ModificationError{Label: tag.Label, Err: err}
	}
	return comp, nil
}

func (p *Peptidoform) tagMass(tag sequence.Tag) (float64, error) {
	m, err := tag.Mass()
	if err != nil {
		return 0, &ModificationError{Label: tag.Label, Err: err}
	}
	return m, nil
}
