package proforma

import "github.com/proteomelab/go-proforma/sequence"

// A FixedModification names a modification and the residues it applies to,
// used with AddFixedModifications. Each target is a one-letter residue
// code.
type FixedModification struct {
	Label   string
	Targets []string
}

// RenameModifications replaces every modification tag whose label is a key
// in mapping with a freshly classified tag built from the mapped label.
// Tags with labels absent from the mapping are left untouched. All six tag
// locations are visited: localized tags, both termini, unlocalized, labile,
// and fixed-modification rules.
//
//	pf, _ := proforma.Parse("[ac]-PEPTC[cmm]IDEK")
//	pf.RenameModifications(map[string]string{"ac": "Acetyl", "cmm": "Carbamidomethyl"})
//	pf.Proforma() // "[Acetyl]-PEPTC[Carbamidomethyl]IDEK"
func (p *Peptidoform) RenameModifications(mapping map[string]string) {
	for i, pos := range p.parsed {
		if len(pos.Tags) > 0 {
			p.parsed[i].Tags = renameTags(pos.Tags, mapping)
		}
	}

	for _, tags := range []*[]sequence.Tag{
		&p.props.NTerm,
		&p.props.CTerm,
		&p.props.Unlocalized,
		&p.props.Labile,
	} {
		if len(*tags) > 0 {
			*tags = renameTags(*tags, mapping)
		}
	}

	for i, rule := range p.props.Fixed {
		if newLabel, ok := mapping[rule.Tag.Label]; ok {
			p.props.Fixed[i].Tag = sequence.NewTag(newLabel)
		}
	}
}

func renameTags(tags []sequence.Tag, mapping map[string]string) []sequence.Tag {
	renamed := make([]sequence.Tag, len(tags))
	for i, tag := range tags {
		if newLabel, ok := mapping[tag.Label]; ok {
			renamed[i] = sequence.NewTag(newLabel)
		} else {
			renamed[i] = tag
		}
	}
	return renamed
}

// AddFixedModifications appends a fixed-modification rule for each entry.
// The rules are carried in the notation's fixed-modification prefix until
// ApplyFixedModifications materializes them. Existing rules are never
// merged or removed, even for the same target residue.
//
//	pf, _ := proforma.Parse("ATPEILTCNSIGCLK")
//	pf.AddFixedModifications([]proforma.FixedModification{{Label: "Carbamidomethyl", Targets: []string{"C"}}})
//	pf.Proforma() // "<[Carbamidomethyl]@C>ATPEILTCNSIGCLK"
func (p *Peptidoform) AddFixedModifications(mods []FixedModification) {
	for _, mod := range mods {
		rule := sequence.FixedModRule{Tag: sequence.NewTag(mod.Label)}
		for _, target := range mod.Targets {
			if target != "" {
				rule.Targets = append(rule.Targets, target[0])
			}
		}
		p.props.Fixed = append(p.props.Fixed, rule)
	}
}

// ApplyFixedModifications materializes every fixed-modification rule as
// localized tags at each target residue, then clears the rules. Rules are
// applied in order and accumulate: a residue targeted by several rules
// receives all of their tags, appended after any tags already present.
// Calling it again with no rules left is a no-op.
//
//	pf, _ := proforma.Parse("<[Carbamidomethyl]@C>ATPEILTCNSIGCLK")
//	pf.ApplyFixedModifications()
//	pf.Proforma() // "ATPEILTC[Carbamidomethyl]NSIGC[Carbamidomethyl]LK"
func (p *Peptidoform) ApplyFixedModifications() {
	if len(p.props.Fixed) == 0 {
		return
	}

	ruleTags := make(map[byte][]sequence.Tag)
	for _, rule := range p.props.Fixed {
		for _, target := range rule.Targets {
			ruleTags[target] = append(ruleTags[target], rule.Tag)
		}
	}

	for i, pos := range p.parsed {
		tags, ok := ruleTags[pos.Residue]
		if !ok {
			continue
		}
		merged := make([]sequence.Tag, 0, len(pos.Tags)+len(tags))
		merged = append(merged, pos.Tags...)
		merged = append(merged, tags...)
		p.parsed[i].Tags = merged
	}

	p.props.Fixed = nil
}
