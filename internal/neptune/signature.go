package neptune

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// AssembleSignatures wraps candidate regions into signature records,
// assigning 0-based sequential IDs in discovery order. The scores are
// placeholders for a downstream scoring stage and stay 0.0 here
func AssembleSignatures(regions []Region) []Signature {
	sigs := make([]Signature, len(regions))
	for i, region := range regions {
		sigs[i] = Signature{
			ID:        i,
			Seq:       region.Seq,
			Reference: region.Reference,
			Position:  region.Position,
		}
	}
	return sigs
}

// WriteSignatures writes signatures as FASTA-like records. The header
// line carries the id, the three scores, the length, the source
// reference and the 0-based start position
func WriteSignatures(w io.Writer, sigs []Signature) error {
	buf := bufio.NewWriter(w)
	for _, sig := range sigs {
		_, err := fmt.Fprintf(
			buf,
			">%d score=%.4f in=%.4f ex=%.4f len=%d ref=%s pos=%d\n%s\n",
			sig.ID, sig.Score, sig.InclusionScore, sig.ExclusionScore,
			len(sig.Seq), sig.Reference, sig.Position, sig.Seq,
		)
		if err != nil {
			return errors.Wrap(err, "failed to write a signature")
		}
	}

	return errors.Wrap(buf.Flush(), "failed to write signatures")
}

// WriteSignaturesTSV writes signatures as tab separated records behind
// a header line, one signature per row
func WriteSignaturesTSV(w io.Writer, sigs []Signature) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(buf, "id\tscore\tin\tex\tsequence\treference\tposition"); err != nil {
		return errors.Wrap(err, "failed to write the header")
	}
	for _, sig := range sigs {
		_, err := fmt.Fprintf(
			buf,
			"%d\t%.4f\t%.4f\t%.4f\t%s\t%s\t%d\n",
			sig.ID, sig.Score, sig.InclusionScore, sig.ExclusionScore,
			sig.Seq, sig.Reference, sig.Position,
		)
		if err != nil {
			return errors.Wrap(err, "failed to write a signature")
		}
	}

	return errors.Wrap(buf.Flush(), "failed to write signatures")
}
