package neptune

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// chain is an open candidate region during a scan. anchor and lastHit are
// the start indices of the first and the most recent matching window
type chain struct {
	anchor  int
	lastHit int
}

// Extractor scans references for candidate signature regions. The
// membership sets and thresholds are fixed for the lifetime of a scan
// and are never mutated by it
type Extractor struct {
	// Membership classifies each window as inclusion or exclusion evidence
	Membership Membership

	// GapSize is the maximum distance between the starts of two matching
	// windows before an open chain is abandoned
	GapSize int

	// SignatureSize is the minimum length of an emitted region
	SignatureSize int

	// Threads is the number of references scanned concurrently.
	// Zero or less means one worker per CPU
	Threads int

	// Progress, when set, is called once per scanned reference. It is
	// called concurrently from the scanning workers
	Progress func(Reference)
}

// Extract scans every reference and returns the candidate regions,
// ordered by input reference order and then by position within each
// reference. The ordering is independent of the thread count
func (x *Extractor) Extract(refs []Reference) ([]Region, error) {
	if len(refs) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "there are no references")
	}
	if x.Membership.K < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "k-mer size %d is out of range", x.Membership.K)
	}
	if len(x.Membership.Inclusion) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "there are no inclusion k-mers")
	}
	if x.SignatureSize < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "signature size %d is out of range", x.SignatureSize)
	}
	if x.GapSize < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "gap size %d is out of range", x.GapSize)
	}

	threads := x.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	perRef := make([][]Region, len(refs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perRef[i] = x.scan(refs[i])
				if x.Progress != nil {
					x.Progress(refs[i])
				}
			}
		}()
	}

	for i := range refs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var regions []Region
	for _, found := range perRef {
		regions = append(regions, found...)
	}

	return regions, nil
}

// scan walks every window of a single reference, chaining inclusion
// evidence into candidate regions and breaking chains on exclusion
// evidence. Exclusion wins when a window carries both kinds of evidence
func (x *Extractor) scan(ref Reference) (regions []Region) {
	k := x.Membership.K
	var open *chain

	// emit the open chain as a region when it spans enough sequence
	closeChain := func() {
		if span := open.lastHit + k - open.anchor; span >= x.SignatureSize {
			regions = append(regions, Region{
				Reference: ref.ID,
				Position:  open.anchor,
				Seq:       ref.Seq[open.anchor : open.lastHit+k],
			})
		}
		open = nil
	}

	for i := 0; i+k <= len(ref.Seq); i++ {
		kmer := ref.Seq[i : i+k]
		reverse := ReverseComplement(kmer)

		if x.Membership.Exclusion.Contains(kmer) || x.Membership.Exclusion.Contains(reverse) {
			// exclusion evidence breaks any chain
			if open != nil {
				closeChain()
			}
			continue
		}

		if x.Membership.Inclusion.Contains(kmer) || x.Membership.Inclusion.Contains(reverse) {
			switch {
			case open == nil:
				open = &chain{anchor: i, lastHit: i}
			case i-open.lastHit <= x.GapSize:
				open.lastHit = i
			default:
				// the gap grew too large, emit and restart here
				closeChain()
				open = &chain{anchor: i, lastHit: i}
			}
		}
	}

	if open != nil {
		closeChain()
	}

	return regions
}
