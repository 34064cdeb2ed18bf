package neptune

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akshay107/neptune/config"
	"github.com/pkg/errors"
)

// fallbacks when neither a user value nor an estimate applies
const (
	defaultRate       = 0.01
	defaultConfidence = 0.95
)

// ParameterSource tells where a resolved parameter value came from
type ParameterSource int

const (
	// SourceEstimated marks a value computed by the statistical model
	SourceEstimated ParameterSource = iota

	// SourceSpecified marks a value supplied by the user
	SourceSpecified

	// SourceDefault marks a built-in fallback value
	SourceDefault
)

func (s ParameterSource) String() string {
	switch s {
	case SourceSpecified:
		return "specified"
	case SourceDefault:
		return "default"
	default:
		return "estimated"
	}
}

// Sources records the provenance of every resolvable parameter
type Sources struct {
	Rate          ParameterSource
	Confidence    ParameterSource
	GCContent     ParameterSource
	ReferenceSize ParameterSource
	InclusionHits ParameterSource
	ExclusionHits ParameterSource
	GapSize       ParameterSource
	SignatureSize ParameterSource
}

// Parameters is the full set of resolved values guiding one extraction
// run. Values are either taken verbatim from the user or estimated by
// the statistical model; Sources records which happened for each
type Parameters struct {
	// Rate is the probability of a mutation or error at any position
	Rate float64

	// Confidence is the statistical confidence of the estimates
	Confidence float64

	// GCContent is the GC-content of the environment
	GCContent float64

	// ReferenceSize is the total size of the references in bases
	ReferenceSize int

	// K is the k-mer size shared by the k-mer table and the scan
	K int

	// TotalInclusion is the number of inclusion genomes
	TotalInclusion int

	// TotalExclusion is the number of exclusion genomes
	TotalExclusion int

	// InclusionHits is the minimum number of inclusion genomes that must
	// share a k-mer before it supports a candidate
	InclusionHits int

	// ExclusionHits is the number of exclusion genomes at which a k-mer
	// disqualifies a candidate
	ExclusionHits int

	// GapSize is the maximum gap between matching k-mers in a candidate
	GapSize int

	// SignatureSize is the minimum candidate size
	SignatureSize int

	// Sources is the provenance of each resolved value above
	Sources Sources
}

// ResolveParameters turns user settings into a full set of run
// parameters. An explicit nonzero user value always wins; anything left
// unset is estimated from the references and the statistical model.
// Zero means unset throughout, so a zero override is never observable
func ResolveParameters(c *config.Config, refs []Reference, k, totalInclusion, totalExclusion int) (Parameters, error) {
	p := Parameters{
		K:              k,
		TotalInclusion: totalInclusion,
		TotalExclusion: totalExclusion,
		GCContent:      c.GCContent,
		ReferenceSize:  c.ReferenceSize,
		Sources: Sources{
			Rate:          SourceDefault,
			Confidence:    SourceDefault,
			GCContent:     SourceSpecified,
			ReferenceSize: SourceSpecified,
			InclusionHits: SourceSpecified,
			ExclusionHits: SourceSpecified,
			GapSize:       SourceSpecified,
			SignatureSize: SourceSpecified,
		},
	}

	// the references stand in for any unset size or GC-content
	if c.GCContent == 0 || c.ReferenceSize == 0 {
		gc, size, err := EstimateReferenceParameters(refs)
		if err != nil {
			return Parameters{}, err
		}
		if c.GCContent == 0 {
			p.GCContent = gc
			p.Sources.GCContent = SourceEstimated
		}
		if c.ReferenceSize == 0 {
			p.ReferenceSize = size
			p.Sources.ReferenceSize = SourceEstimated
		}
	}

	p.Rate = c.Rate
	if p.Rate == 0 {
		p.Rate = defaultRate
	} else {
		p.Sources.Rate = SourceSpecified
	}

	p.Confidence = c.Confidence
	if p.Confidence == 0 {
		p.Confidence = defaultConfidence
	} else {
		p.Sources.Confidence = SourceSpecified
	}

	var err error

	p.InclusionHits = c.InclusionHits
	if p.InclusionHits == 0 {
		if p.InclusionHits, err = EstimateInclusionHits(totalInclusion, p.Rate, p.GCContent, k, p.Confidence); err != nil {
			return Parameters{}, errors.Wrap(err, "failed to estimate the inclusion hits")
		}
		p.Sources.InclusionHits = SourceEstimated
	}

	p.ExclusionHits = c.ExclusionHits
	if p.ExclusionHits == 0 {
		p.ExclusionHits = EstimateExclusionHits(totalExclusion, p.Rate, k)
		p.Sources.ExclusionHits = SourceEstimated
	}

	p.GapSize = c.GapSize
	if p.GapSize == 0 {
		if p.GapSize, err = EstimateGapSize(p.Rate, p.GCContent, k, p.Confidence); err != nil {
			return Parameters{}, errors.Wrap(err, "failed to estimate the gap size")
		}
		p.Sources.GapSize = SourceEstimated
	}

	p.SignatureSize = c.SignatureSize
	if p.SignatureSize == 0 {
		if p.SignatureSize, err = EstimateSignatureSize(k); err != nil {
			return Parameters{}, errors.Wrap(err, "failed to estimate the signature size")
		}
		p.Sources.SignatureSize = SourceEstimated
	}

	return p, nil
}

// WriteReport writes the parameterization report: every resolved value
// for the run and where it came from. referenceFile and kmerFile are
// echoed for traceability
func WriteReport(w io.Writer, p Parameters, referenceFile, kmerFile string) error {
	buf := bufio.NewWriter(w)

	fmt.Fprint(buf, "==== Parameterization Report ====\n\n")
	fmt.Fprintf(buf, "Reference File = %s\n", referenceFile)
	fmt.Fprintf(buf, "Reference Size = %d (%s)\n", p.ReferenceSize, p.Sources.ReferenceSize)
	fmt.Fprintf(buf, "GC-Content = %.2f (%s)\n\n", p.GCContent, p.Sources.GCContent)
	fmt.Fprintf(buf, "SNV Rate = %v (%s)\n", p.Rate, p.Sources.Rate)
	fmt.Fprintf(buf, "Statistical Confidence = %v (%s)\n\n", p.Confidence, p.Sources.Confidence)
	fmt.Fprintf(buf, "Inclusion Genomes = %d\n", p.TotalInclusion)
	fmt.Fprintf(buf, "Minimum Inclusion Hits = %d (%s)\n\n", p.InclusionHits, p.Sources.InclusionHits)
	fmt.Fprintf(buf, "Exclusion Genomes = %d\n", p.TotalExclusion)
	fmt.Fprintf(buf, "Maximum Exclusion Hits = %d (%s)\n\n", p.ExclusionHits, p.Sources.ExclusionHits)
	fmt.Fprintf(buf, "k-mer Size = %d\n", p.K)
	fmt.Fprintf(buf, "k-mer File = %s\n\n", kmerFile)
	fmt.Fprintf(buf, "Maximum k-mer Gap Size = %d (%s)\n", p.GapSize, p.Sources.GapSize)
	fmt.Fprintf(buf, "Minimum Signature Size = %d (%s)\n", p.SignatureSize, p.Sources.SignatureSize)

	return errors.Wrap(buf.Flush(), "failed to write the report")
}
