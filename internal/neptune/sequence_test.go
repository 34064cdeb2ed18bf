package neptune

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func Test_ReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"palindrome", "ACGT", "ACGT"},
		{"homopolymer", "AAAAA", "TTTTT"},
		{"mixed", "GATTACA", "TGTAATC"},
		{"ambiguity codes", "ACGTN", "NACGT"},
		{"lowercase", "aacg", "cgtt"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReverseComplement(tt.seq); got != tt.want {
				t.Errorf("ReverseComplement() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the reverse complement of a reverse complement is the input
func Test_ReverseComplement_involution(t *testing.T) {
	for _, seq := range []string{"A", "ACGT", "GATTACA", "TTAGGCATCGN"} {
		if got := ReverseComplement(ReverseComplement(seq)); got != seq {
			t.Errorf("ReverseComplement twice = %v, want %v", got, seq)
		}
	}
}

func Test_EstimateReferenceParameters(t *testing.T) {
	tests := []struct {
		name     string
		refs     []Reference
		wantGC   float64
		wantSize int
		wantErr  error
	}{
		{
			"balanced",
			[]Reference{{ID: "ref", Seq: "ACGT"}},
			0.5,
			4,
			nil,
		},
		{
			"all AT",
			[]Reference{{ID: "ref", Seq: "AATT"}},
			0.0,
			4,
			nil,
		},
		{
			"all GC",
			[]Reference{{ID: "ref", Seq: "GGCC"}},
			1.0,
			4,
			nil,
		},
		{
			"multiple references",
			[]Reference{{ID: "a", Seq: "AATT"}, {ID: "b", Seq: "GGGG"}},
			0.5,
			8,
			nil,
		},
		{
			"ambiguity excluded from GC",
			[]Reference{{ID: "ref", Seq: "ACGTNNNN"}},
			0.5,
			8,
			nil,
		},
		{
			"all ambiguous",
			[]Reference{{ID: "ref", Seq: "NNNN"}},
			0,
			0,
			ErrEmptyInput,
		},
		{
			"no references",
			nil,
			0,
			0,
			ErrEmptyInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotGC, gotSize, err := EstimateReferenceParameters(tt.refs)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EstimateReferenceParameters() error = %v, want %v", err, tt.wantErr)
			}
			if math.Abs(gotGC-tt.wantGC) > epsilon {
				t.Errorf("EstimateReferenceParameters() gc = %v, want %v", gotGC, tt.wantGC)
			}
			if gotSize != tt.wantSize {
				t.Errorf("EstimateReferenceParameters() size = %v, want %v", gotSize, tt.wantSize)
			}
		})
	}
}
