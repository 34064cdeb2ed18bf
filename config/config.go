// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in a .neptune config file and those available from the
// command line.
//
// Every statistical setting treats zero as unset: the parameter
// resolver estimates anything left at zero and takes any other value
// verbatim. A zero override is therefore never observable
type Config struct {
	// the probability of a mutation or error at an arbitrary position
	Rate float64 `mapstructure:"rate"`

	// the statistical confidence of every estimated threshold
	Confidence float64 `mapstructure:"confidence"`

	// the GC-content of the environment
	GCContent float64 `mapstructure:"gc-content"`

	// the total size of the references in bases
	ReferenceSize int `mapstructure:"reference-size"`

	// the minimum number of inclusion genomes sharing a k-mer
	// before the k-mer supports a candidate
	InclusionHits int `mapstructure:"inhits"`

	// the number of exclusion genomes sharing a k-mer at which
	// the k-mer disqualifies a candidate
	ExclusionHits int `mapstructure:"exhits"`

	// the maximum gap between k-mer hits within one candidate
	GapSize int `mapstructure:"gap"`

	// the minimum size of an extracted candidate
	SignatureSize int `mapstructure:"size"`

	// the number of references scanned concurrently, zero means all CPUs
	Threads int `mapstructure:"threads"`

	// the output format, "fasta" or "tsv"
	Format string `mapstructure:"format"`
}

// New returns a new Config struct populated by Viper settings (either
// from a local .neptune config file and/or command line arguments)
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}
