package neptune

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// signatureSizeFactor scales the k-mer size into a minimum region size
const signatureSizeFactor = 4.0

// ProbHomologousBaseMutateMatch returns the probability that two
// homologous bases, which have both mutated, mutated to the same base.
// The substitution model is weighted by the GC-content of the environment
func ProbHomologousBaseMutateMatch(gc float64) (float64, error) {
	if gc < 0 || gc > 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "GC-content %v is out of range", gc)
	}

	return (2*math.Pow(gc/(gc+1), 2)+
		math.Pow((1-gc)/(gc+1), 2))*(1-gc) +
		(2*math.Pow((1-gc)/(2-gc), 2)+
			math.Pow(gc/(2-gc), 2))*gc, nil
}

// ProbHomologousBaseMatch returns the probability that two homologous
// bases match each other after each base independently mutates with the
// passed rate. Either neither base mutates or both mutate to the same base
func ProbHomologousBaseMatch(rate, gc float64) (float64, error) {
	if rate < 0 || rate > 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "mutation rate %v is out of range", rate)
	}

	mutateMatch, err := ProbHomologousBaseMutateMatch(gc)
	if err != nil {
		return 0, err
	}

	return math.Pow(1-rate, 2) + math.Pow(rate, 2)*mutateMatch, nil
}

// ProbHomologousKmerMatch returns the probability that two homologous
// k-mers match each other exactly, assuming every base position mutates
// independently
func ProbHomologousKmerMatch(rate, gc float64, k int) (float64, error) {
	if k < 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "k-mer size %d is out of range", k)
	}

	baseMatch, err := ProbHomologousBaseMatch(rate, gc)
	if err != nil {
		return 0, err
	}

	return math.Pow(baseMatch, float64(k)), nil
}

// EstimateSignatureSize returns the minimum size of a candidate region,
// a small multiple of the k-mer size
func EstimateSignatureSize(k int) (int, error) {
	if k < 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "k-mer size %d is out of range", k)
	}

	return int(math.Ceil(signatureSizeFactor * float64(k))), nil
}

// EstimateGapSize returns the maximum number of bases between two
// matching k-mers before an open candidate region is abandoned.
//
// The distance between matching k-mers is modeled with the mean and
// variance of recurrence times of a length-k success run (Feller) and
// bounded with the one-sided Chebyshev inequality at the passed
// confidence. The variance approximation breaks down for some inputs;
// a zero failure rate or a negative variance is reported as a model
// degeneracy rather than clamped
func EstimateGapSize(rate, gc float64, k int, confidence float64) (int, error) {
	if k < 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "k-mer size %d is out of range", k)
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "statistical confidence %v is out of range", confidence)
	}

	p, err := ProbHomologousBaseMatch(rate, gc)
	if err != nil {
		return 0, err
	}
	q := 1 - p
	kf := float64(k)

	qpk := q * math.Pow(p, kf)
	if qpk <= 0 {
		return 0, errors.Wrapf(ErrModelDegeneracy, "base match probability %v leaves no gap distribution", p)
	}

	mean := (1 - math.Pow(p, kf)) / qpk
	variance := 1/math.Pow(qpk, 2) - (2*kf+1)/qpk - p/math.Pow(q, 2)
	if variance < 0 || math.IsNaN(variance) {
		return 0, errors.Wrapf(ErrModelDegeneracy, "negative gap variance %v", variance)
	}

	deviations := math.Sqrt(1 / (1 - confidence))
	estimate := math.Ceil(mean + deviations*math.Sqrt(variance))
	if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
		return 0, errors.Wrapf(ErrModelDegeneracy, "unbounded gap size estimate")
	}

	return int(estimate), nil
}

// EstimateInclusionHits returns the minimum number of inclusion genomes
// that must contain a k-mer before the k-mer supports a candidate region.
//
// The number of the other totalInclusion-1 genomes sharing a homologous
// k-mer with the reference is modeled as a binomial and bounded from
// below with a one-sided normal approximation at the passed confidence
func EstimateInclusionHits(totalInclusion int, rate, gc float64, k int, confidence float64) (int, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "statistical confidence %v is out of range", confidence)
	}

	p, err := ProbHomologousKmerMatch(rate, gc, k)
	if err != nil {
		return 0, err
	}
	q := 1 - p
	n := float64(totalInclusion)

	mean := (n - 1) * p
	variance := (n - 1) * p * q
	if variance < 0 {
		return 0, errors.Wrapf(ErrModelDegeneracy, "negative inclusion hit variance with %d inclusion genomes", totalInclusion)
	}

	deviations := distuv.UnitNormal.Quantile(confidence)
	estimate := math.Floor(1 + mean - deviations*math.Sqrt(variance))

	return int(math.Max(0, estimate)), nil
}

// EstimateExclusionHits returns the number of exclusion genomes at which
// a k-mer disqualifies a candidate region. The estimate is a constant:
// a single exclusion hit always disqualifies. The inputs are accepted
// for symmetry with EstimateInclusionHits but are not yet part of a model
func EstimateExclusionHits(totalExclusion int, rate float64, k int) int {
	return 1
}
