package cmd

import (
	"github.com/akshay107/neptune/internal/neptune"
	"github.com/spf13/cobra"
)

// paramsCmd is for resolving run parameters without extracting anything
var paramsCmd = &cobra.Command{
	Use:                        "params",
	Short:                      "Print the parameterization report without extracting",
	Run:                        neptune.ParamsCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Resolve every threshold an extraction run would use and print the
parameterization report to stdout.

The k-mer size comes from --kmer-size or from the first k-mer of a --kmers
file. GC-content and reference size are estimated when --reference is given.
Anything supplied explicitly is taken verbatim, the rest is estimated.`,
	Aliases: []string{"parameters"},
}

// set flags
func init() {
	RootCmd.AddCommand(paramsCmd)

	paramsCmd.Flags().StringSliceP("reference", "r", nil, "FASTA reference(s) to estimate GC-content and size from")
	paramsCmd.Flags().StringP("kmers", "k", "", "aggregated k-mer file to infer the k-mer size from")
	paramsCmd.Flags().Int("kmer-size", 0, "k-mer size, an alternative to --kmers")
	paramsCmd.Flags().Int("inclusion-count", 0, "number of inclusion genomes")
	paramsCmd.Flags().Int("exclusion-count", 0, "number of exclusion genomes")
}
