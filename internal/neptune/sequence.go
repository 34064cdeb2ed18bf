package neptune

import (
	"github.com/pkg/errors"
)

// complement maps each nucleotide to its Watson-Crick pair, including
// IUPAC ambiguity codes. Bytes without a complement map to themselves
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := map[byte]byte{
		'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
		'U': 'A',
		'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
		'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
		'D': 'H', 'H': 'D', 'N': 'N',
	}
	for base, comp := range pairs {
		complement[base] = comp
		complement[base+'a'-'A'] = comp + 'a' - 'A'
	}
}

// ReverseComplement returns the reverse complement of a nucleotide
// sequence. Characters without a defined complement are kept as they are
func ReverseComplement(s string) string {
	rc := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		rc[len(s)-1-i] = complement[s[i]]
	}
	return string(rc)
}

// EstimateReferenceParameters derives the GC-content and the total size
// of the references. GC-content counts G and C against all unambiguous
// bases; ambiguity codes contribute to neither side. Size is the summed
// length of every reference, ambiguity codes included
func EstimateReferenceParameters(refs []Reference) (gc float64, size int, err error) {
	var gcCount, atCount int

	for _, ref := range refs {
		size += len(ref.Seq)
		for i := 0; i < len(ref.Seq); i++ {
			switch ref.Seq[i] {
			case 'G', 'C', 'g', 'c':
				gcCount++
			case 'A', 'T', 'a', 't':
				atCount++
			}
		}
	}

	if gcCount+atCount == 0 {
		return 0, 0, errors.Wrap(ErrEmptyInput, "no unambiguous bases in the references")
	}

	return float64(gcCount) / float64(gcCount+atCount), size, nil
}
