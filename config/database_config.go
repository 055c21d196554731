package config

import (
	"fmt"
	"time"
)

// selection modes for choosing one work summary out of a work group
const (
	// take the first summary in each group, as ORCID lists them
	SelectFirst = "first"
	// rank summaries by the trust placed in their sources
	SelectRanked = "ranked"
)

// The author registry (ORCID) enumerates a researcher's works.
type registryConfig struct {
	// the base URL of the registry's public API
	URL string `yaml:"url"`
	// request timeout (seconds)
	Timeout int `yaml:"timeout"`
	// how a work summary is selected from each work group ("ranked" or "first")
	Selection string `yaml:"selection"`
	// name of a source whose entries are preferred over others
	Curator string `yaml:"curator"`
	// name of a source whose entries are preferred over all others
	Aggregator string `yaml:"aggregator"`
}

// The citation metadata service (Crossref) supplies authors, dates, and abstracts
// for DOIs.
type metadataConfig struct {
	// the base URL of the metadata service's API
	URL string `yaml:"url"`
	// request timeout (seconds)
	Timeout int `yaml:"timeout"`
	// contact address sent along with requests (optional)
	Mailto string `yaml:"mailto"`
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		URL:        "https://pub.orcid.org/v2.0",
		Timeout:    30,
		Selection:  SelectRanked,
		Curator:    "Luc Blassel",
		Aggregator: "Crossref Metadata Search",
	}
}

func defaultMetadataConfig() metadataConfig {
	return metadataConfig{
		URL:     "https://api.crossref.org",
		Timeout: 30,
	}
}

// returns the registry request timeout as a duration
func (c registryConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// returns the metadata request timeout as a duration
func (c metadataConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func validateRegistryParameters(params registryConfig) error {
	if err := validateBaseURL("registry", params.URL); err != nil {
		return err
	}
	if params.Timeout <= 0 {
		return fmt.Errorf("Invalid registry timeout: %d (must be positive)", params.Timeout)
	}
	switch params.Selection {
	case SelectFirst, SelectRanked:
	default:
		return fmt.Errorf("Invalid registry selection: '%s' (must be '%s' or '%s')",
			params.Selection, SelectRanked, SelectFirst)
	}
	return nil
}

func validateMetadataParameters(params metadataConfig) error {
	if err := validateBaseURL("metadata", params.URL); err != nil {
		return err
	}
	if params.Timeout <= 0 {
		return fmt.Errorf("Invalid metadata timeout: %d (must be positive)", params.Timeout)
	}
	return nil
}
