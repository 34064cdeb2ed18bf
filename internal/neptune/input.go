package neptune

import (
	"github.com/akshay107/neptune/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags contains the parsed command line inputs of the extract and
// params commands
type Flags struct {
	// reference FASTA files to scan for signatures
	references []string

	// inclusion genome files, counted for the statistical model
	inclusion []string

	// exclusion genome files, counted for the statistical model
	exclusion []string

	// the aggregated k-mer count table
	kmers string

	// the signature output path, the report lands next to it
	out string

	// a direct k-mer size, for the params command when no table is given
	kmerSize int

	// direct genome counts, for the params command
	inclusionCount int
	exclusionCount int
}

// NewFlags makes a Flags object manually, for testing
func NewFlags(references, inclusion, exclusion []string, kmers, out string) (*Flags, *config.Config) {
	return &Flags{
		references: references,
		inclusion:  inclusion,
		exclusion:  exclusion,
		kmers:      kmers,
		out:        out,
	}, config.New()
}

// report is the path of the parameterization report, next to the output
func (f *Flags) report() string {
	return f.out + ".report"
}

// parseExtractFlags gathers the extract command's flags from the cobra
// command. Settings that feed the statistical model travel through viper
// into the Config instead
func parseExtractFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}

	if fs.references, err = cmd.Flags().GetStringSlice("reference"); err != nil {
		log.Fatalf("failed to parse the reference flag: %v", err)
	}
	if fs.inclusion, err = cmd.Flags().GetStringSlice("inclusion"); err != nil {
		log.Fatalf("failed to parse the inclusion flag: %v", err)
	}
	if fs.exclusion, err = cmd.Flags().GetStringSlice("exclusion"); err != nil {
		log.Fatalf("failed to parse the exclusion flag: %v", err)
	}
	if fs.kmers, err = cmd.Flags().GetString("kmers"); err != nil {
		log.Fatalf("failed to parse the kmers flag: %v", err)
	}
	if fs.out, err = cmd.Flags().GetString("output"); err != nil {
		log.Fatalf("failed to parse the output flag: %v", err)
	}
	if fs.out == "" {
		log.Fatal("an output file is required")
	}

	return fs, config.New()
}

// parseParamsFlags gathers the params command's flags from the cobra
// command
func parseParamsFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}

	if fs.references, err = cmd.Flags().GetStringSlice("reference"); err != nil {
		log.Fatalf("failed to parse the reference flag: %v", err)
	}
	if fs.kmers, err = cmd.Flags().GetString("kmers"); err != nil {
		log.Fatalf("failed to parse the kmers flag: %v", err)
	}
	if fs.kmerSize, err = cmd.Flags().GetInt("kmer-size"); err != nil {
		log.Fatalf("failed to parse the kmer-size flag: %v", err)
	}
	if fs.inclusionCount, err = cmd.Flags().GetInt("inclusion-count"); err != nil {
		log.Fatalf("failed to parse the inclusion-count flag: %v", err)
	}
	if fs.exclusionCount, err = cmd.Flags().GetInt("exclusion-count"); err != nil {
		log.Fatalf("failed to parse the exclusion-count flag: %v", err)
	}

	return fs, config.New()
}
