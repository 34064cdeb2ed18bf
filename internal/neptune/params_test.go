package neptune

import (
	"bytes"
	"math"
	"testing"

	"github.com/akshay107/neptune/config"
	"github.com/pkg/errors"
)

func Test_ResolveParameters_estimated(t *testing.T) {
	refs := []Reference{{ID: "ref", Seq: "ACGTACGTAC"}}

	p, err := ResolveParameters(&config.Config{}, refs, 11, 10, 3)
	if err != nil {
		t.Fatal(err)
	}

	if p.Rate != 0.01 || p.Sources.Rate != SourceDefault {
		t.Errorf("rate = %v (%v), want 0.01 (default)", p.Rate, p.Sources.Rate)
	}
	if p.Confidence != 0.95 || p.Sources.Confidence != SourceDefault {
		t.Errorf("confidence = %v (%v), want 0.95 (default)", p.Confidence, p.Sources.Confidence)
	}
	if math.Abs(p.GCContent-0.5) > epsilon || p.Sources.GCContent != SourceEstimated {
		t.Errorf("gc = %v (%v), want 0.5 (estimated)", p.GCContent, p.Sources.GCContent)
	}
	if p.ReferenceSize != 10 || p.Sources.ReferenceSize != SourceEstimated {
		t.Errorf("reference size = %v (%v), want 10 (estimated)", p.ReferenceSize, p.Sources.ReferenceSize)
	}
	if p.InclusionHits != 6 || p.Sources.InclusionHits != SourceEstimated {
		t.Errorf("inclusion hits = %v (%v), want 6 (estimated)", p.InclusionHits, p.Sources.InclusionHits)
	}
	if p.ExclusionHits != 1 || p.Sources.ExclusionHits != SourceEstimated {
		t.Errorf("exclusion hits = %v (%v), want 1 (estimated)", p.ExclusionHits, p.Sources.ExclusionHits)
	}
	if p.GapSize != 29 || p.Sources.GapSize != SourceEstimated {
		t.Errorf("gap size = %v (%v), want 29 (estimated)", p.GapSize, p.Sources.GapSize)
	}
	if p.SignatureSize != 44 || p.Sources.SignatureSize != SourceEstimated {
		t.Errorf("signature size = %v (%v), want 44 (estimated)", p.SignatureSize, p.Sources.SignatureSize)
	}
	if p.K != 11 || p.TotalInclusion != 10 || p.TotalExclusion != 3 {
		t.Errorf("pass-through values changed: %+v", p)
	}
}

// explicit values always win and skip estimation entirely, so no
// references are needed when everything is supplied
func Test_ResolveParameters_specified(t *testing.T) {
	c := &config.Config{
		Rate:          0.05,
		Confidence:    0.9,
		GCContent:     0.4,
		ReferenceSize: 1234,
		InclusionHits: 7,
		ExclusionHits: 2,
		GapSize:       10,
		SignatureSize: 50,
	}

	p, err := ResolveParameters(c, nil, 7, 5, 2)
	if err != nil {
		t.Fatal(err)
	}

	if p.Rate != 0.05 || p.Confidence != 0.9 || p.GCContent != 0.4 || p.ReferenceSize != 1234 {
		t.Errorf("statistical inputs not taken verbatim: %+v", p)
	}
	if p.InclusionHits != 7 || p.ExclusionHits != 2 || p.GapSize != 10 || p.SignatureSize != 50 {
		t.Errorf("thresholds not taken verbatim: %+v", p)
	}

	want := Sources{
		Rate:          SourceSpecified,
		Confidence:    SourceSpecified,
		GCContent:     SourceSpecified,
		ReferenceSize: SourceSpecified,
		InclusionHits: SourceSpecified,
		ExclusionHits: SourceSpecified,
		GapSize:       SourceSpecified,
		SignatureSize: SourceSpecified,
	}
	if p.Sources != want {
		t.Errorf("sources = %+v, want all specified", p.Sources)
	}
}

func Test_ResolveParameters_partial(t *testing.T) {
	refs := []Reference{{ID: "ref", Seq: "AAGG"}}

	// GC-content specified, size estimated from the references
	p, err := ResolveParameters(&config.Config{GCContent: 0.3}, refs, 11, 10, 0)
	if err != nil {
		t.Fatal(err)
	}

	if p.GCContent != 0.3 || p.Sources.GCContent != SourceSpecified {
		t.Errorf("gc = %v (%v), want 0.3 (specified)", p.GCContent, p.Sources.GCContent)
	}
	if p.ReferenceSize != 4 || p.Sources.ReferenceSize != SourceEstimated {
		t.Errorf("reference size = %v (%v), want 4 (estimated)", p.ReferenceSize, p.Sources.ReferenceSize)
	}
}

func Test_ResolveParameters_errors(t *testing.T) {
	refs := []Reference{{ID: "ref", Seq: "ACGTACGTAC"}}

	tests := []struct {
		name           string
		c              *config.Config
		refs           []Reference
		totalInclusion int
		wantErr        error
	}{
		{"no references to estimate from", &config.Config{}, nil, 10, ErrEmptyInput},
		{"no inclusion genomes", &config.Config{}, refs, 0, ErrModelDegeneracy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveParameters(tt.c, tt.refs, 11, tt.totalInclusion, 0)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResolveParameters() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func Test_WriteReport(t *testing.T) {
	p := Parameters{
		Rate:           0.01,
		Confidence:     0.95,
		GCContent:      0.5,
		ReferenceSize:  10,
		K:              11,
		TotalInclusion: 10,
		TotalExclusion: 3,
		InclusionHits:  6,
		ExclusionHits:  1,
		GapSize:        29,
		SignatureSize:  44,
		Sources: Sources{
			Rate:          SourceDefault,
			Confidence:    SourceDefault,
			GCContent:     SourceEstimated,
			ReferenceSize: SourceEstimated,
			InclusionHits: SourceEstimated,
			ExclusionHits: SourceEstimated,
			GapSize:       SourceEstimated,
			SignatureSize: SourceEstimated,
		},
	}

	var out bytes.Buffer
	if err := WriteReport(&out, p, "refs.fasta", "kmers.tab"); err != nil {
		t.Fatal(err)
	}

	want := `==== Parameterization Report ====

Reference File = refs.fasta
Reference Size = 10 (estimated)
GC-Content = 0.50 (estimated)

SNV Rate = 0.01 (default)
Statistical Confidence = 0.95 (default)

Inclusion Genomes = 10
Minimum Inclusion Hits = 6 (estimated)

Exclusion Genomes = 3
Maximum Exclusion Hits = 1 (estimated)

k-mer Size = 11
k-mer File = kmers.tab

Maximum k-mer Gap Size = 29 (estimated)
Minimum Signature Size = 44 (estimated)
`
	if out.String() != want {
		t.Errorf("WriteReport() = %q, want %q", out.String(), want)
	}
}
