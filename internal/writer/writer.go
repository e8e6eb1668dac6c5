// Package writer serializes the parsed-sequence model back to canonical
// ProForma text.
package writer

import (
	"strconv"
	"strings"

	"github.com/proteomelab/go-proforma/sequence"
)

// Write renders the sequence and its properties in canonical order: fixed
// modification rules, isotope labels, unlocalized tags, labile tags,
// N-terminal tags, the residue sequence with localized tags, C-terminal
// tags, and the charge. Serializing, re-parsing and serializing again
// yields the same text.
func Write(parsed sequence.Parsed, props sequence.Properties) string {
	var b strings.Builder

	for _, rule := range props.Fixed {
		b.WriteString("<[")
		b.WriteString(rule.Tag.Label)
		b.WriteString("]@")
		for i, target := range rule.Targets {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(target)
		}
		b.WriteByte('>')
	}
	for _, isotope := range props.Isotopes {
		b.WriteByte('<')
		b.WriteString(isotope)
		b.WriteByte('>')
	}

	writeUnlocalized(&b, props.Unlocalized)

	for _, tag := range props.Labile {
		b.WriteByte('{')
		b.WriteString(tag.Label)
		b.WriteByte('}')
	}

	if len(props.NTerm) > 0 {
		writeTags(&b, props.NTerm)
		b.WriteByte('-')
	}

	for _, pos := range parsed {
		b.WriteByte(pos.Residue)
		writeTags(&b, pos.Tags)
	}

	if len(props.CTerm) > 0 {
		b.WriteByte('-')
		writeTags(&b, props.CTerm)
	}

	if props.Charge != nil {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(props.Charge.Charge))
	}

	return b.String()
}

// writeUnlocalized collapses runs of identical labels into the "^n" count
// form, the inverse of the parser's expansion.
func writeUnlocalized(b *strings.Builder, tags []sequence.Tag) {
	for i := 0; i < len(tags); {
		j := i + 1
		for j < len(tags) && tags[j].Label == tags[i].Label {
			j++
		}
		b.WriteByte('[')
		b.WriteString(tags[i].Label)
		b.WriteByte(']')
		if n := j - i; n > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(n))
		}
		b.WriteByte('?')
		i = j
	}
}

func writeTags(b *strings.Builder, tags []sequence.Tag) {
	for _, tag := range tags {
		b.WriteByte('[')
		b.WriteString(tag.Label)
		b.WriteByte(']')
	}
}
