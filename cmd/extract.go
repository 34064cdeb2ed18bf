package cmd

import (
	"github.com/akshay107/neptune/internal/neptune"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// extractCmd is for extracting candidate signatures from reference genomes
var extractCmd = &cobra.Command{
	Use:                        "extract",
	Short:                      "Extract candidate signatures from reference genomes",
	Run:                        neptune.ExtractCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Extract candidate signatures from one or more references using aggregated
k-mer counts from the inclusion and exclusion genomes.

Runs of k-mers found in enough inclusion genomes are chained into candidate
regions. A k-mer found in an exclusion genome breaks the chain. Thresholds
left unset are estimated from the mutation rate, GC-content and statistical
confidence; the resolved values land in a report next to the output file.`,
	Aliases: []string{"ex"},
}

// set flags
func init() {
	RootCmd.AddCommand(extractCmd)

	// Flags for specifying the paths to the reference file, genome files, and output file
	extractCmd.Flags().StringSliceP("reference", "r", nil, "FASTA reference(s) from which to extract signatures")
	extractCmd.Flags().StringSliceP("inclusion", "i", nil, "inclusion genome(s)")
	extractCmd.Flags().StringSliceP("exclusion", "e", nil, "exclusion genome(s)")
	extractCmd.Flags().StringP("kmers", "k", "", "aggregated k-mer file: one 'kmer inclusion-count exclusion-count' per line")
	extractCmd.Flags().StringP("output", "o", "", "output file name, the parameterization report lands next to it")
	extractCmd.Flags().IntP("threads", "t", 0, "number of references scanned concurrently (default all CPUs)")
	extractCmd.Flags().StringP("format", "f", "fasta", "output format: fasta or tsv")

	// Mark required flags
	extractCmd.MarkFlagRequired("reference")
	extractCmd.MarkFlagRequired("inclusion")
	extractCmd.MarkFlagRequired("kmers")
	extractCmd.MarkFlagRequired("output")

	// Bind the parameters to viper
	viper.BindPFlag("threads", extractCmd.Flags().Lookup("threads"))
	viper.BindPFlag("format", extractCmd.Flags().Lookup("format"))
}
