package config

import (
	"testing"

	"github.com/spf13/viper"
)

func Test_New(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("rate", 0.05)
	viper.Set("confidence", 0.9)
	viper.Set("gc-content", 0.4)
	viper.Set("reference-size", 1234)
	viper.Set("inhits", 7)
	viper.Set("exhits", 2)
	viper.Set("gap", 15)
	viper.Set("size", 60)
	viper.Set("threads", 4)
	viper.Set("format", "tsv")

	c := New()

	if c.Rate != 0.05 {
		t.Errorf("Config.Rate = %v, want 0.05", c.Rate)
	}
	if c.Confidence != 0.9 {
		t.Errorf("Config.Confidence = %v, want 0.9", c.Confidence)
	}
	if c.GCContent != 0.4 {
		t.Errorf("Config.GCContent = %v, want 0.4", c.GCContent)
	}
	if c.ReferenceSize != 1234 {
		t.Errorf("Config.ReferenceSize = %v, want 1234", c.ReferenceSize)
	}
	if c.InclusionHits != 7 {
		t.Errorf("Config.InclusionHits = %v, want 7", c.InclusionHits)
	}
	if c.ExclusionHits != 2 {
		t.Errorf("Config.ExclusionHits = %v, want 2", c.ExclusionHits)
	}
	if c.GapSize != 15 {
		t.Errorf("Config.GapSize = %v, want 15", c.GapSize)
	}
	if c.SignatureSize != 60 {
		t.Errorf("Config.SignatureSize = %v, want 60", c.SignatureSize)
	}
	if c.Threads != 4 {
		t.Errorf("Config.Threads = %v, want 4", c.Threads)
	}
	if c.Format != "tsv" {
		t.Errorf("Config.Format = %v, want tsv", c.Format)
	}
}

// settings left out of viper stay zero so the parameter resolver
// knows to estimate them
func Test_New_unset(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := New()

	if c.Rate != 0 || c.Confidence != 0 || c.GCContent != 0 {
		t.Errorf("unset statistical settings are nonzero: %+v", c)
	}
	if c.InclusionHits != 0 || c.ExclusionHits != 0 || c.GapSize != 0 || c.SignatureSize != 0 {
		t.Errorf("unset thresholds are nonzero: %+v", c)
	}
}
