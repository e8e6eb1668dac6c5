package proforma_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteomelab/go-proforma"
)

func TestRenameModifications(t *testing.T) {
	t.Run("renames across terminal and localized tags", func(t *testing.T) {
		pf, err := proforma.Parse("[ac]-PEPTC[cmm]IDEK")
		require.NoError(t, err)

		pf.RenameModifications(map[string]string{
			"ac":  "Acetyl",
			"cmm": "Carbamidomethyl",
		})
		require.Equal(t, "[Acetyl]-PEPTC[Carbamidomethyl]IDEK", pf.Proforma())
	})

	t.Run("renames every tag location", func(t *testing.T) {
		pf, err := proforma.Parse("<[cmm]@C>[ph]?{gl}[ac]-PEPC[ox]IDE-[am]")
		require.NoError(t, err)

		pf.RenameModifications(map[string]string{
			"cmm": "Carbamidomethyl",
			"ph":  "Phospho",
			"gl":  "Glycan",
			"ac":  "Acetyl",
			"ox":  "Oxidation",
			"am":  "Amidated",
		})
		require.Equal(t,
			"<[Carbamidomethyl]@C>[Phospho]?{Glycan}[Acetyl]-PEPC[Oxidation]IDE-[Amidated]",
			pf.Proforma())
	})

	t.Run("renames repeated occurrences", func(t *testing.T) {
		pf, err := proforma.Parse("AC[cmm]DC[cmm]K")
		require.NoError(t, err)

		pf.RenameModifications(map[string]string{"cmm": "Carbamidomethyl"})
		require.Equal(t, "AC[Carbamidomethyl]DC[Carbamidomethyl]K", pf.Proforma())
	})

	t.Run("absent keys leave tags unchanged", func(t *testing.T) {
		pf, err := proforma.Parse("[ac]-PEPTC[cmm]IDEK")
		require.NoError(t, err)
		before := pf.Proforma()

		pf.RenameModifications(map[string]string{"nothere": "Oxidation"})
		require.Equal(t, before, pf.Proforma())
	})

	t.Run("renamed tag resolves afterwards", func(t *testing.T) {
		pf, err := proforma.Parse("PEPTC[cmm]IDE")
		require.NoError(t, err)
		_, err = pf.Mass()
		require.Error(t, err)

		pf.RenameModifications(map[string]string{"cmm": "Carbamidomethyl"})
		_, err = pf.Mass()
		require.NoError(t, err)
	})
}

func TestAddFixedModifications(t *testing.T) {
	pf, err := proforma.Parse("ATPEILTCNSIGCLK")
	require.NoError(t, err)

	pf.AddFixedModifications([]proforma.FixedModification{
		{Label: "Carbamidomethyl", Targets: []string{"C"}},
	})
	require.Equal(t, "<[Carbamidomethyl]@C>ATPEILTCNSIGCLK", pf.Proforma())

	// Appending never merges with existing rules.
	pf.AddFixedModifications([]proforma.FixedModification{
		{Label: "Oxidation", Targets: []string{"C", "M"}},
	})
	require.Equal(t, "<[Carbamidomethyl]@C><[Oxidation]@C,M>ATPEILTCNSIGCLK", pf.Proforma())
}

func TestApplyFixedModifications(t *testing.T) {
	t.Run("materializes at every target residue", func(t *testing.T) {
		pf, err := proforma.Parse("ATPEILTCNSIGCLK")
		require.NoError(t, err)

		pf.AddFixedModifications([]proforma.FixedModification{
			{Label: "Carbamidomethyl", Targets: []string{"C"}},
		})
		pf.ApplyFixedModifications()
		require.Equal(t, "ATPEILTC[Carbamidomethyl]NSIGC[Carbamidomethyl]LK", pf.Proforma())
		require.NotContains(t, pf.Proforma(), "<")
	})

	t.Run("parsed rules materialize the same way", func(t *testing.T) {
		pf, err := proforma.Parse("<[Carbamidomethyl]@C>ATPEILTCNSIGCLK")
		require.NoError(t, err)

		pf.ApplyFixedModifications()
		require.Equal(t, "ATPEILTC[Carbamidomethyl]NSIGC[Carbamidomethyl]LK", pf.Proforma())
	})

	t.Run("appends after existing localized tags", func(t *testing.T) {
		pf, err := proforma.Parse("<[Carbamidomethyl]@C>AC[Oxidation]K")
		require.NoError(t, err)

		pf.ApplyFixedModifications()
		require.Equal(t, "AC[Oxidation][Carbamidomethyl]K", pf.Proforma())
	})

	t.Run("accumulates rules for the same target in rule order", func(t *testing.T) {
		pf, err := proforma.Parse("<[Oxidation]@M><[Phospho]@M>AMK")
		require.NoError(t, err)

		pf.ApplyFixedModifications()
		require.Equal(t, "AM[Oxidation][Phospho]K", pf.Proforma())
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		pf, err := proforma.Parse("<[Carbamidomethyl]@C>ACK")
		require.NoError(t, err)

		pf.ApplyFixedModifications()
		once := pf.Proforma()
		pf.ApplyFixedModifications()
		require.Equal(t, once, pf.Proforma())
	})

	t.Run("mass is unchanged by materialization", func(t *testing.T) {
		pf, err := proforma.Parse("<[Carbamidomethyl]@C>ATPEILTCNSIGCLK/2")
		require.NoError(t, err)

		before, err := pf.Mass()
		require.NoError(t, err)

		pf.ApplyFixedModifications()
		after, err := pf.Mass()
		require.NoError(t, err)
		require.InDelta(t, before, after, 1e-9)
	})
}

func TestApplyFixedModifications_PreservesOtherProperties(t *testing.T) {
	pf, err := proforma.Parse("<[Carbamidomethyl]@C>[Acetyl]-ACK-[Amidated]/2")
	require.NoError(t, err)

	pf.ApplyFixedModifications()
	out := pf.Proforma()
	require.True(t, strings.HasPrefix(out, "[Acetyl]-"))
	require.True(t, strings.HasSuffix(out, "-[Amidated]/2"))
	require.Contains(t, out, "C[Carbamidomethyl]")
}
