// Package config loads the optional defaults file for the pipelines.
// Everything in it can also be set (or overridden) on the command line;
// the file only exists so a lab machine can pin its toolkit location and
// library directories once.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable pointing at an explicit
// defaults file. Without it, DefaultFile in the working directory is
// tried.
const EnvPath = "BIOMAI_CONFIG"

// DefaultFile is the conventional defaults file name.
const DefaultFile = "biomai.yaml"

// Config carries the per-machine defaults. Zero values mean "not set";
// callers fall back to their own defaults.
type Config struct {
	// Rosetta is the toolkit installation root, overriding $ROSETTA3.
	Rosetta string `yaml:"rosetta"`

	// Experiments is the directory run workspaces are created under.
	Experiments string `yaml:"experiments"`

	// ParamsDB is the residue parameter library directory used when a
	// pipeline is not given one explicitly.
	ParamsDB string `yaml:"params_db"`

	// Weights is the scoring weight-set identifier.
	Weights string `yaml:"weights"`
}

// Load reads the defaults file named by $BIOMAI_CONFIG, or biomai.yaml
// in the working directory. An absent file is not an error; it yields an
// empty Config. The file is read exactly once, at program start.
func Load() (*Config, error) {
	path := os.Getenv(EnvPath)
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file '%s': %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file '%s': %w", path, err)
	}
	return cfg, nil
}
