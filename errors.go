package proforma

import "fmt"

// PeptidoformError is implemented by every domain error in this package:
// UnsupportedFeatureError, AmbiguousResidueError and ModificationError.
// It lets callers detect the category without enumerating the kinds.
type PeptidoformError interface {
	error
	peptidoformError()
}

// An UnsupportedFeatureError reports that the input uses a notation feature
// this package does not support, such as isotopic labeling.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return "proforma: unsupported feature: " + e.Feature
}

func (e *UnsupportedFeatureError) peptidoformError() {}

// An AmbiguousResidueError reports a residue code that cannot be resolved
// against the standard residue table, such as the ambiguity codes X, B or Z.
type AmbiguousResidueError struct {
	Residue byte
}

func (e *AmbiguousResidueError) Error() string {
	return fmt.Sprintf("proforma: cannot resolve residue %q", string(e.Residue))
}

func (e *AmbiguousResidueError) peptidoformError() {}

// A ModificationError reports a modification tag that cannot be resolved to
// a composition or mass. Label is the tag text as written.
type ModificationError struct {
	Label string
	Err   error
}

func (e *ModificationError) Error() string {
	return fmt.Sprintf("proforma: cannot resolve modification %q: %v", e.Label, e.Err)
}

func (e *ModificationError) Unwrap() error { return e.Err }

func (e *ModificationError) peptidoformError() {}
