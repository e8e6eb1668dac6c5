package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteomelab/go-proforma/internal/lexer"
	"github.com/proteomelab/go-proforma/sequence"
)

func parse(t *testing.T, input string) (sequence.Parsed, sequence.Properties) {
	t.Helper()
	p := New(lexer.New(input))
	parsed, props := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors for %q", input)
	return parsed, props
}

func TestParse_Full(t *testing.T) {
	parsed, props := parse(t, "<[Carbamidomethyl]@C,M>[Phospho]^2?{Hex}[Acetyl]-PEC[Oxidation]K-[Amidated]/-2")

	require.Equal(t, "PECK", parsed.Sequence())
	require.Empty(t, parsed[0].Tags)
	require.Len(t, parsed[2].Tags, 1)
	require.Equal(t, "Oxidation", parsed[2].Tags[0].Label)

	require.Len(t, props.Fixed, 1)
	require.Equal(t, "Carbamidomethyl", props.Fixed[0].Tag.Label)
	require.Equal(t, []byte{'C', 'M'}, props.Fixed[0].Targets)

	require.Len(t, props.Unlocalized, 2)
	require.Equal(t, "Phospho", props.Unlocalized[0].Label)
	require.Equal(t, "Phospho", props.Unlocalized[1].Label)

	require.Len(t, props.Labile, 1)
	require.Equal(t, "Hex", props.Labile[0].Label)

	require.Len(t, props.NTerm, 1)
	require.Equal(t, "Acetyl", props.NTerm[0].Label)
	require.Len(t, props.CTerm, 1)
	require.Equal(t, "Amidated", props.CTerm[0].Label)

	require.NotNil(t, props.Charge)
	require.Equal(t, -2, props.Charge.Charge)
	require.Empty(t, props.Isotopes)
}

func TestParse_MultipleTagsPerPosition(t *testing.T) {
	parsed, _ := parse(t, "PEK[Oxidation][Phospho]")
	require.Len(t, parsed[2].Tags, 2)
	require.Equal(t, "Oxidation", parsed[2].Tags[0].Label)
	require.Equal(t, "Phospho", parsed[2].Tags[1].Label)
}

func TestParse_Isotopes(t *testing.T) {
	_, props := parse(t, "<13C><15N>PEPTIDE")
	require.Equal(t, []string{"13C", "15N"}, props.Isotopes)
}

func TestParse_AmbiguityCodesLex(t *testing.T) {
	parsed, _ := parse(t, "PXBZ")
	require.Equal(t, "PXBZ", parsed.Sequence())
}

func TestParse_SelenocysteineAndPyrrolysine(t *testing.T) {
	parsed, _ := parse(t, "PEPUK")
	require.Equal(t, "PEPUK", parsed.Sequence())

	parsed, _ = parse(t, "PEPOK")
	require.Equal(t, "PEPOK", parsed.Sequence())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"lowercase residue", "PEpK"},
		{"digit residue", "PE1K"},
		{"missing n-term dash", "[Acetyl]PEPTIDE"},
		{"missing c-term tag", "PEPTIDE-"},
		{"bad fixed rule targets", "<[Carbamidomethyl]@CM2>PEP"},
		{"unlocalized count of zero", "[Phospho]^0?PEP"},
		{"charge not a number", "PEPTIDE/x"},
		{"trailing garbage", "PEPTIDE/2!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(lexer.New(tt.input))
			p.Parse()
			require.NotEmpty(t, p.Errors())
		})
	}
}
