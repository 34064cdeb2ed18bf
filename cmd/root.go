// Package cmd is for command line interactions with the neptune application
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "neptune",
	Short: `Discover signature regions: stretches of a reference genome shared
by a group of inclusion genomes and absent from a group of exclusion genomes`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	// settings feeding the statistical model. zero means unset: anything
	// left at zero is estimated, an explicit value is taken verbatim
	RootCmd.PersistentFlags().Float64P("rate", "q", 0, "probability of a mutation or error at an arbitrary position (default 0.01)")
	RootCmd.PersistentFlags().Float64P("confidence", "c", 0, "statistical confidence of the estimated thresholds (default 0.95)")
	RootCmd.PersistentFlags().Float64("gc-content", 0, "GC-content of the environment (default estimated from the references)")
	RootCmd.PersistentFlags().Int("reference-size", 0, "estimated total reference size (default measured from the references)")
	RootCmd.PersistentFlags().Int("inhits", 0, "minimum inclusion hits to build a candidate (default estimated)")
	RootCmd.PersistentFlags().Int("exhits", 0, "minimum exclusion hits to remove a candidate (default estimated)")
	RootCmd.PersistentFlags().IntP("gap", "g", 0, "maximum number of bases between k-mer hits in a candidate (default estimated)")
	RootCmd.PersistentFlags().IntP("size", "s", 0, "minimum candidate size (default estimated)")
	RootCmd.PersistentFlags().Bool("quiet", false, "log warnings and errors only")

	// bind the settings to viper, config.New unmarshals them
	viper.BindPFlag("rate", RootCmd.PersistentFlags().Lookup("rate"))
	viper.BindPFlag("confidence", RootCmd.PersistentFlags().Lookup("confidence"))
	viper.BindPFlag("gc-content", RootCmd.PersistentFlags().Lookup("gc-content"))
	viper.BindPFlag("reference-size", RootCmd.PersistentFlags().Lookup("reference-size"))
	viper.BindPFlag("inhits", RootCmd.PersistentFlags().Lookup("inhits"))
	viper.BindPFlag("exhits", RootCmd.PersistentFlags().Lookup("exhits"))
	viper.BindPFlag("gap", RootCmd.PersistentFlags().Lookup("gap"))
	viper.BindPFlag("size", RootCmd.PersistentFlags().Lookup("size"))
	viper.BindPFlag("quiet", RootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in a .neptune config file and ENV variables if set
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName(".neptune")

	// the config file is optional, only complain when one exists but is broken
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read the config file %s: %v", viper.ConfigFileUsed(), err)
		}
	}

	if viper.GetBool("quiet") {
		log.SetLevel(log.WarnLevel)
	}
}
