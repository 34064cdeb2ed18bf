// Package neptune locates signature regions in reference genomes:
// stretches of sequence that are well conserved across a set of inclusion
// genomes and absent from a set of exclusion genomes. Evidence comes from
// a precomputed k-mer count table rather than alignment.
package neptune

import (
	"github.com/pkg/errors"
)

// Errors returned by the extraction pipeline. Callers test against these
// with errors.Is; the returned errors carry additional context.
var (
	// ErrInvalidParameter marks a numeric input outside its documented domain
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput marks a required input with no usable content
	ErrEmptyInput = errors.New("empty input")

	// ErrModelDegeneracy marks statistical model assumptions that do not
	// hold for the given inputs (zero failure rate, negative variance)
	ErrModelDegeneracy = errors.New("degenerate statistical model")
)

// Reference is a single sequence scanned for signature regions
type Reference struct {
	// ID is the FASTA header up to the first whitespace
	ID string

	// Seq is the uppercased nucleotide sequence
	Seq string
}

// Region is a candidate signature region found within one reference
type Region struct {
	// Reference is the ID of the sequence the region was found in
	Reference string

	// Position is the 0-based start offset of the region
	Position int

	// Seq is the region's subsequence of the reference
	Seq string
}

// Signature is an output record: a candidate region with an ID and
// placeholder scores. Scores are filled in by a downstream stage
type Signature struct {
	// ID is the 0-based index of the signature in discovery order
	ID int

	// Score is the signature's overall score (always 0.0 here)
	Score float64

	// InclusionScore is the inclusion-side score (always 0.0 here)
	InclusionScore float64

	// ExclusionScore is the exclusion-side score (always 0.0 here)
	ExclusionScore float64

	// Seq is the signature's sequence
	Seq string

	// Reference is the ID of the source reference
	Reference string

	// Position is the 0-based start offset within the source reference
	Position int
}
