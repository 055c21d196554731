package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// a type with service configuration parameters
type serviceConfig struct {
	// port on which the service listens
	Port int `json:"port" yaml:"port"`
	// maximum number of allowed incoming connections
	MaxConnections int `json:"max_connections" yaml:"max_connections"`
	// ORCID iD whose works are listed when a request doesn't name one
	DefaultOrcid string `json:"default_orcid" yaml:"default_orcid"`
	// number of works enriched concurrently per request (1 is strictly sequential)
	PoolSize int `json:"pool_size" yaml:"pool_size"`
	// set to true to enable debug-level (JSON) logging
	Debug bool `json:"debug" yaml:"debug"`
}

// global config variables
var Service serviceConfig
var Registry registryConfig
var Metadata metadataConfig

// the ORCID iD used when none is configured or requested
const DefaultOrcid = "0000-0002-6598-7673"

// ORCID iDs are four blocks of four digits, the last of which may end in X
var orcidPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}-[0-9]{4}-[0-9]{3}[0-9X]$`)

// returns true if the given string is shaped like an ORCID iD
func IsOrcid(id string) bool {
	return orcidPattern.MatchString(id)
}

// This struct performs the unmarshalling from the YAML config file and then
// copies its fields to the globals above.
type configFile struct {
	Service  serviceConfig  `yaml:"service"`
	Registry registryConfig `yaml:"registry"`
	Metadata metadataConfig `yaml:"metadata"`
}

// This helper locates and reads a configuration file, returning an error
// indicating success or failure. All environment variables of the form
// ${ENV_VAR} are expanded.
func readConfig(bytes []byte) error {
	// Before we do anything else, expand any provided environment variables.
	bytes = []byte(os.ExpandEnv(string(bytes)))

	var conf configFile
	conf.Service.Port = 8080
	conf.Service.MaxConnections = 100
	conf.Service.DefaultOrcid = DefaultOrcid
	conf.Service.PoolSize = 1
	conf.Registry = defaultRegistryConfig()
	conf.Metadata = defaultMetadataConfig()
	err := yaml.Unmarshal(bytes, &conf)
	if err != nil {
		log.Printf("Couldn't parse configuration data: %s\n", err)
		return err
	}

	// copy the config data into place
	Service = conf.Service
	Registry = conf.Registry
	Metadata = conf.Metadata

	return err
}

// This helper validates the given service parameters, returning an
// error indicating success or failure.
func validateServiceParameters(params serviceConfig) error {
	if params.Port < 0 || params.Port > 65535 {
		return fmt.Errorf("Invalid port: %d (must be 0-65535)", params.Port)
	}
	if params.MaxConnections <= 0 {
		return fmt.Errorf("Invalid max_connections: %d (must be positive)",
			params.MaxConnections)
	}
	if params.PoolSize <= 0 {
		return fmt.Errorf("Invalid pool_size: %d (must be positive)", params.PoolSize)
	}
	if !IsOrcid(params.DefaultOrcid) {
		return fmt.Errorf("Invalid default_orcid: '%s'", params.DefaultOrcid)
	}
	return nil
}

// makes sure the given base URL is an absolute http(s) URL
func validateBaseURL(name, baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("Invalid %s url '%s': %s", name, baseURL, err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("Invalid %s url '%s': scheme must be http or https", name, baseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("Invalid %s url '%s': no host given", name, baseURL)
	}
	return nil
}

// This helper validates the given configfile, returning an error that indicates
// success or failure.
func validateConfig() error {
	err := validateServiceParameters(Service)
	if err != nil {
		return err
	}
	err = validateRegistryParameters(Registry)
	if err != nil {
		return err
	}
	return validateMetadataParameters(Metadata)
}

// Initializes the publication service configuration using the given YAML byte
// data.
func Init(yamlData []byte) error {

	// Read the configuration from our YAML file.
	err := readConfig(yamlData)
	if err != nil {
		return err
	}

	// Validate the configuration.
	err = validateConfig()
	return err
}
