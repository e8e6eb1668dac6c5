package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/biogo/biogo/alphabet"

	"github.com/proteomelab/go-proforma/chem"
	"github.com/proteomelab/go-proforma/internal/lexer"
	"github.com/proteomelab/go-proforma/internal/token"
	"github.com/proteomelab/go-proforma/sequence"
)

// Parser holds the state of the parser.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  token.Token
	peekToken token.Token
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns a slice of error messages encountered during parsing.
func (p *Parser) Errors() []string {
	return p.errors
}

// Parse parses a ProForma string into the residue sequence and the
// sequence-wide properties. Grammar, in order: global annotations
// ("<...>"), unlocalized tags ("[tag]?", optionally "[tag]^n?"), labile
// tags ("{tag}"), N-terminal tags ("[tag]-"), the residue sequence with
// localized tags, C-terminal tags ("-[tag]"), and a charge suffix ("/n").
func (p *Parser) Parse() (sequence.Parsed, sequence.Properties) {
	var parsed sequence.Parsed
	var props sequence.Properties

	p.parsePrefix(&props)
	p.parseNTerm(&props)

	for p.curTokenIs(token.RESIDUE) {
		parsed = append(parsed, p.parsePosition())
	}
	if len(parsed) == 0 {
		p.errorf("empty sequence")
	}

	p.parseCTerm(&props)
	p.parseCharge(&props)

	if !p.curTokenIs(token.EOF) {
		p.errorf("unexpected token after sequence: %s (%q)", p.curToken.Type, p.curToken.Literal)
	}

	return parsed, props
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// parsePrefix consumes the annotations allowed before the sequence: global
// angle annotations, unlocalized tags, and labile tags, in any interleaving.
func (p *Parser) parsePrefix(props *sequence.Properties) {
	for {
		switch {
		case p.curTokenIs(token.GLOBAL):
			p.parseGlobal(props)
		case p.curTokenIs(token.LABILE):
			props.Labile = append(props.Labile, sequence.NewTag(p.curToken.Literal))
			p.nextToken()
		case p.curTokenIs(token.TAG) && (p.peekTokenIs(token.QUESTION) || p.peekTokenIs(token.CARET)):
			p.parseUnlocalized(props)
		default:
			return
		}
	}
}

// parseGlobal interprets one angle annotation: either a fixed-modification
// rule ("[tag]@C,M") or an isotope label ("13C").
func (p *Parser) parseGlobal(props *sequence.Properties) {
	payload := p.curToken.Literal
	defer p.nextToken()

	if !strings.HasPrefix(payload, "[") {
		if payload == "" {
			p.errorf("empty global annotation")
			return
		}
		props.Isotopes = append(props.Isotopes, payload)
		return
	}

	end := strings.LastIndex(payload, "]")
	if end < 0 {
		p.errorf("malformed fixed modification rule %q", payload)
		return
	}
	label := payload[1:end]
	rest := payload[end+1:]
	if !strings.HasPrefix(rest, "@") || len(rest) < 2 {
		p.errorf("fixed modification rule %q is missing targets", payload)
		return
	}

	var targets []byte
	for _, target := range strings.Split(rest[1:], ",") {
		target = strings.TrimSpace(target)
		if len(target) != 1 || !isResidueLetter(target[0]) {
			p.errorf("invalid fixed modification target %q", target)
			return
		}
		targets = append(targets, target[0])
	}
	props.Fixed = append(props.Fixed, sequence.FixedModRule{
		Tag:     sequence.NewTag(label),
		Targets: targets,
	})
}

// parseUnlocalized consumes "[tag]?" or "[tag]^n?". A count expands to that
// many tag entries so downstream accounting stays additive.
func (p *Parser) parseUnlocalized(props *sequence.Properties) {
	tag := sequence.NewTag(p.curToken.Literal)
	p.nextToken()

	count := 1
	if p.curTokenIs(token.CARET) {
		p.nextToken()
		if !p.curTokenIs(token.INT) {
			p.errorf("expected count after '^', got %s", p.curToken.Type)
			return
		}
		n, err := strconv.Atoi(p.curToken.Literal)
		if err != nil || n < 1 {
			p.errorf("invalid unlocalized modification count %q", p.curToken.Literal)
			return
		}
		count = n
		p.nextToken()
	}

	if !p.curTokenIs(token.QUESTION) {
		p.errorf("expected '?' after unlocalized modification, got %s", p.curToken.Type)
		return
	}
	p.nextToken()

	for i := 0; i < count; i++ {
		props.Unlocalized = append(props.Unlocalized, tag)
	}
}

// parseNTerm consumes "[tag]...-" if present. A bare leading tag without a
// following dash has no meaning in the notation.
func (p *Parser) parseNTerm(props *sequence.Properties) {
	if !p.curTokenIs(token.TAG) {
		return
	}
	var tags []sequence.Tag
	for p.curTokenIs(token.TAG) {
		tags = append(tags, sequence.NewTag(p.curToken.Literal))
		p.nextToken()
	}
	if !p.curTokenIs(token.DASH) {
		p.errorf("expected '-' after N-terminal modification, got %s", p.curToken.Type)
		return
	}
	p.nextToken()
	props.NTerm = tags
}

func (p *Parser) parsePosition() sequence.Position {
	pos := sequence.Position{Residue: p.curToken.Literal[0]}
	if !isResidueLetter(pos.Residue) {
		p.errorf("invalid residue %q", string(pos.Residue))
	}
	p.nextToken()
	for p.curTokenIs(token.TAG) {
		pos.Tags = append(pos.Tags, sequence.NewTag(p.curToken.Literal))
		p.nextToken()
	}
	return pos
}

func (p *Parser) parseCTerm(props *sequence.Properties) {
	if !p.curTokenIs(token.DASH) {
		return
	}
	p.nextToken()
	var tags []sequence.Tag
	for p.curTokenIs(token.TAG) {
		tags = append(tags, sequence.NewTag(p.curToken.Literal))
		p.nextToken()
	}
	if len(tags) == 0 {
		p.errorf("expected C-terminal modification after '-'")
		return
	}
	props.CTerm = tags
}

func (p *Parser) parseCharge(props *sequence.Properties) {
	if !p.curTokenIs(token.SLASH) {
		return
	}
	p.nextToken()
	negative := false
	if p.curTokenIs(token.DASH) {
		negative = true
		p.nextToken()
	}
	if !p.curTokenIs(token.INT) {
		p.errorf("expected charge after '/', got %s", p.curToken.Type)
		return
	}
	charge, err := strconv.Atoi(p.curToken.Literal)
	if err != nil {
		p.errorf("invalid charge %q", p.curToken.Literal)
		return
	}
	if negative {
		charge = -charge
	}
	props.Charge = &sequence.ChargeState{Charge: charge}
	p.nextToken()
}

// isResidueLetter reports whether ch is an upper-case protein-alphabet
// letter. The residue table covers letters the alphabet lacks, such as U
// (selenocysteine) and O (pyrrolysine). Ambiguity codes (X, B, Z) are valid
// letters here; they fail later when a composition or mass is requested for
// them.
func isResidueLetter(ch byte) bool {
	if !unicode.IsUpper(rune(ch)) {
		return false
	}
	if alphabet.Protein.IsValid(alphabet.Letter(unicode.ToLower(rune(ch)))) {
		return true
	}
	_, ok := chem.ResidueComposition(ch)
	return ok
}

func (p *Parser) errorf(format string, args ...any) {
	pos := p.curToken.Pos
	p.errors = append(p.errors, fmt.Sprintf("offset %d: %s", pos, fmt.Sprintf(format, args...)))
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}
