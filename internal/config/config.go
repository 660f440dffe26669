// Package config holds the run configuration: the four artifact paths plus
// logging and tracing knobs. Values come from a YAML file and environment
// variables (ENV > YAML > defaults); CLI flags override on top.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the explicit configuration passed into each stage entry point.
type Config struct {
	Paths PathsConfig `yaml:"paths"`
	Log   LogConfig   `yaml:"log"`

	// TraceForms lists lookup keys whose sync decisions are reported at
	// debug level.
	TraceForms []string `yaml:"trace_forms" env:"MORPHSYNC_TRACE_FORMS"`
}

// PathsConfig holds the input and output artifact paths.
type PathsConfig struct {
	TreeIn     string `yaml:"tree_in"     env:"MORPHSYNC_TREE_IN"     env-default:"data/e100.conllu"`
	AnalysisIn string `yaml:"analysis_in" env:"MORPHSYNC_ANALYSIS_IN" env-default:"data/e100.magold"`
	TreeOut    string `yaml:"tree_out"    env:"MORPHSYNC_TREE_OUT"    env-default:"data/e100.SYNC.conllu"`
	PairsOut   string `yaml:"pairs_out"   env:"MORPHSYNC_PAIRS_OUT"   env-default:"data/adj_mod_pairs.csv"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"MORPHSYNC_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"MORPHSYNC_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from an optional YAML file plus environment
// variables. An empty path means ENV + defaults only; a named file that is
// missing is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}
