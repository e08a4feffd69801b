// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mixrate/sampler"
)

const (
	defaultOutputDir  = "mixing_rate_samples"
	defaultEngineAddr = ":8750"
	defaultTolerance  = 1e-6
)

// fileConfig is the TOML layout:
//
//	output = "mixing_rate_samples"
//	tolerance = 1e-6
//
//	[sampler]
//	samples = 30
//	sizes = [8, 16]
//	producers = ["mh", "sdp-mh", "go", "mgo"]
//	allow_self_loops = true
//	force_self_loops = true
//	workers = 0
//	seed = 0
//
//	[engine]
//	url = ""            # remote engine for "mgo"; empty runs it in-process
//	addr = ":8750"      # serve-engine listen address
//	laziness = [0, 0.05, 0.1, 0.2, 0.3, 0.4, 0.5]
type fileConfig struct {
	Output    string         `toml:"output"`
	Tolerance float64        `toml:"tolerance"`
	Sampler   sampler.Config `toml:"sampler"`
	Engine    engineConfig   `toml:"engine"`
}

type engineConfig struct {
	URL      string    `toml:"url"`
	Addr     string    `toml:"addr"`
	Laziness []float64 `toml:"laziness"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Output:    defaultOutputDir,
		Tolerance: defaultTolerance,
		Sampler:   sampler.DefaultConfig(),
		Engine:    engineConfig{Addr: defaultEngineAddr},
	}
}

var errUnknownKeys = errors.New("unknown configuration keys")

// loadConfig overlays the TOML file at path onto the defaults. An empty
// path returns the defaults. Unknown keys are an error.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: %w: %s", path, errUnknownKeys, strings.Join(keys, ", "))
	}

	return cfg, nil
}
