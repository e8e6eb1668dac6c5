package token

// Type is the type of a token.
type Type string

// Token represents a lexical token of the ProForma notation. Pos is the
// zero-based byte offset of the token in the input.
type Token struct {
	Type    Type
	Literal string
	Pos     int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown or invalid token
	EOF     Type = "EOF"     // End of input

	// Literals
	RESIDUE Type = "RESIDUE" // a single amino-acid letter
	INT     Type = "INT"     // 2, 13
	TAG     Type = "TAG"     // [...] payload, brackets stripped
	LABILE  Type = "LABILE"  // {...} payload, braces stripped
	GLOBAL  Type = "GLOBAL"  // <...> payload, angles stripped

	// Delimiters
	DASH     Type = "-"
	SLASH    Type = "/"
	CARET    Type = "^"
	QUESTION Type = "?"
)
