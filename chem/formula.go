package chem

import "fmt"

// ParseFormula parses a chemical formula such as "C2H3NO" or "C-1H-2O" into
// a Composition. Element symbols are an upper-case letter optionally
// followed by a lower-case letter; each may carry an optional signed integer
// count (default 1). Spaces between groups are ignored.
func ParseFormula(s string) (Composition, error) {
	comp := Composition{}
	i := 0
	for i < len(s) {
		if s[i] == ' ' {
			i++
			continue
		}
		if !isUpper(s[i]) {
			return nil, fmt.Errorf("chem: invalid formula %q: unexpected character %q", s, s[i])
		}
		j := i + 1
		if j < len(s) && isLower(s[j]) {
			j++
		}
		el := s[i:j]
		if _, ok := elementMass[el]; !ok {
			return nil, fmt.Errorf("chem: invalid formula %q: unknown element %q", s, el)
		}
		i = j

		n, width, err := parseCount(s[i:])
		if err != nil {
			return nil, fmt.Errorf("chem: invalid formula %q: %v", s, err)
		}
		i += width
		comp.AddCount(el, n)
	}
	if len(comp) == 0 {
		return nil, fmt.Errorf("chem: empty formula %q", s)
	}
	return comp, nil
}

// parseCount reads an optional signed integer prefix of s and returns its
// value and consumed width. An absent count means one atom.
func parseCount(s string) (int, int, error) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if start == i {
		if neg || (start > 0) {
			return 0, 0, fmt.Errorf("sign without digits")
		}
		return 1, 0, nil
	}
	n := 0
	for _, ch := range s[start:i] {
		n = n*10 + int(ch-'0')
	}
	if neg {
		n = -n
	}
	return n, i, nil
}

func isUpper(ch byte) bool { return 'A' <= ch && ch <= 'Z' }
func isLower(ch byte) bool { return 'a' <= ch && ch <= 'z' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
