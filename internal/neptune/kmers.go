package neptune

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// KmerSet is a membership set of uppercase k-mers
type KmerSet map[string]struct{}

// Contains reports whether the k-mer is in the set
func (s KmerSet) Contains(kmer string) bool {
	_, ok := s[kmer]
	return ok
}

// Membership holds the two k-mer sets a scan classifies windows against.
// Both sets are built once and never mutated afterwards. A k-mer may be
// in both sets at once; the scanner resolves the conflict
type Membership struct {
	// K is the k-mer size shared by every entry
	K int

	// Inclusion holds k-mers seen in enough inclusion genomes
	Inclusion KmerSet

	// Exclusion holds k-mers seen in enough exclusion genomes
	Exclusion KmerSet
}

// ReadKmerSize infers k from the first k-mer of an aggregated count table
func ReadKmerSize(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		return len(fields[0]), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to read the k-mer table")
	}

	return 0, errors.Wrap(ErrEmptyInput, "no k-mers in the table")
}

// BuildMembership reads an aggregated k-mer count table, one
// "kmer inclusionCount exclusionCount" record per line, and builds the
// inclusion and exclusion membership sets. A k-mer joins the inclusion
// set when its inclusion count meets inclusionHits and the exclusion set
// when its exclusion count meets exclusionHits
func BuildMembership(r io.Reader, inclusionHits, exclusionHits int) (Membership, error) {
	mem := Membership{
		Inclusion: KmerSet{},
		Exclusion: KmerSet{},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return Membership{}, errors.Errorf("malformed k-mer record on line %d: %q", line, scanner.Text())
		}

		kmer := strings.ToUpper(fields[0])
		if mem.K == 0 {
			mem.K = len(kmer)
		} else if len(kmer) != mem.K {
			return Membership{}, errors.Errorf("k-mer %s on line %d is not %d bases long", kmer, line, mem.K)
		}

		inclusionCount, err := strconv.Atoi(fields[1])
		if err != nil {
			return Membership{}, errors.Wrapf(err, "bad inclusion count on line %d", line)
		}
		exclusionCount, err := strconv.Atoi(fields[2])
		if err != nil {
			return Membership{}, errors.Wrapf(err, "bad exclusion count on line %d", line)
		}

		if inclusionCount >= inclusionHits {
			mem.Inclusion[kmer] = struct{}{}
		}
		if exclusionCount >= exclusionHits {
			mem.Exclusion[kmer] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return Membership{}, errors.Wrap(err, "failed to read the k-mer table")
	}

	if mem.K == 0 {
		return Membership{}, errors.Wrap(ErrEmptyInput, "no k-mers in the table")
	}

	return mem, nil
}
