package neptune

import (
	"os"
	"strings"
	"time"

	"github.com/akshay107/neptune/config"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ExtractCmd takes a cobra command (with its flags) and runs Extract
func ExtractCmd(cmd *cobra.Command, args []string) {
	Extract(parseExtractFlags(cmd))
}

// Extract is for running an end to end signature extraction against the
// reference genomes
func Extract(flags *Flags, conf *config.Config) {
	handleErr := func(err error) {
		if err != nil {
			log.Fatalf("failed to extract signatures from %s: %v", strings.Join(flags.references, ", "), err)
		}
	}
	start := time.Now()

	sigs, _, err := extract(flags, conf) // scan the references for candidate regions
	handleErr(err)

	// write the results to a file
	handleErr(writeOutput(flags.out, conf.Format, sigs))

	elapsed := time.Since(start).Truncate(time.Millisecond)
	log.Infof("wrote %s to %s in %s", english.Plural(len(sigs), "signature", ""), flags.out, elapsed)
}

// extract builds the signatures end to end:
//
// read the references, infer k from the k-mer table, resolve the run
// parameters (estimating whatever the user left unset), build the
// inclusion and exclusion k-mer sets, and scan every reference for
// candidate regions
//
// the parameterization report is written next to the output before the
// scan starts so a failed run still leaves its parameters behind
func extract(flags *Flags, conf *config.Config) ([]Signature, Parameters, error) {
	log.Info("building references")
	refs, err := ReadReferences(flags.references)
	if err != nil {
		return nil, Parameters{}, err
	}

	k, err := KmerSizeFromFile(flags.kmers)
	if err != nil {
		return nil, Parameters{}, err
	}

	log.Info("estimating parameters")
	params, err := ResolveParameters(conf, refs, k, len(flags.inclusion), len(flags.exclusion))
	if err != nil {
		return nil, Parameters{}, err
	}
	log.Debugf("scanning %s bases with k = %d", humanize.Comma(int64(params.ReferenceSize)), params.K)

	if err := writeReport(flags.report(), params, flags); err != nil {
		return nil, Parameters{}, err
	}

	log.Info("building k-mer membership")
	membership, err := MembershipFromFile(flags.kmers, params.InclusionHits, params.ExclusionHits)
	if err != nil {
		return nil, Parameters{}, err
	}

	log.Info("extracting signatures")
	extractor := &Extractor{
		Membership:    membership,
		GapSize:       params.GapSize,
		SignatureSize: params.SignatureSize,
		Threads:       conf.Threads,
	}
	if log.GetLevel() >= log.InfoLevel {
		bar := pb.New(len(refs))
		bar.SetWriter(os.Stderr)
		bar.Start()
		defer bar.Finish()
		extractor.Progress = func(Reference) { bar.Increment() }
	}

	regions, err := extractor.Extract(refs)
	if err != nil {
		return nil, Parameters{}, err
	}

	return AssembleSignatures(regions), params, nil
}

// ParamsCmd takes a cobra command (with its flags) and runs Params
func ParamsCmd(cmd *cobra.Command, args []string) {
	Params(parseParamsFlags(cmd))
}

// Params resolves the run parameters without scanning anything and
// prints the parameterization report to stdout
func Params(flags *Flags, conf *config.Config) {
	handleErr := func(err error) {
		if err != nil {
			log.Fatalf("failed to estimate parameters: %v", err)
		}
	}

	var refs []Reference
	if len(flags.references) > 0 {
		var err error
		refs, err = ReadReferences(flags.references)
		handleErr(err)
	}

	k := flags.kmerSize
	if k == 0 && flags.kmers != "" {
		var err error
		k, err = KmerSizeFromFile(flags.kmers)
		handleErr(err)
	}
	if k < 1 {
		handleErr(errors.Wrap(ErrInvalidParameter, "a k-mer size or a k-mer file is required"))
	}

	params, err := ResolveParameters(conf, refs, k, flags.inclusionCount, flags.exclusionCount)
	handleErr(err)

	handleErr(WriteReport(os.Stdout, params, strings.Join(flags.references, ", "), flags.kmers))
}

// writeReport writes the parameterization report to path
func writeReport(path string, params Parameters, flags *Flags) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create the report file %s", path)
	}

	if err := WriteReport(file, params, strings.Join(flags.references, ", "), flags.kmers); err != nil {
		file.Close()
		return err
	}

	return errors.Wrapf(file.Close(), "failed to close the report file %s", path)
}

// writeOutput writes the signatures to path in the requested format
func writeOutput(path, format string, sigs []Signature) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create the output file %s", path)
	}

	if format == "tsv" {
		err = WriteSignaturesTSV(file, sigs)
	} else {
		err = WriteSignatures(file, sigs)
	}
	if err != nil {
		file.Close()
		return err
	}

	return errors.Wrapf(file.Close(), "failed to close the output file %s", path)
}
