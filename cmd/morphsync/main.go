// Command morphsync reconciles a CoNLL-U dependency tree with a MAGOLD
// morphological-analysis file and extracts adjective-modifier pairs from
// the reconciled tree.
//
// Usage:
//
//	morphsync sync      # merge gen/num/rat from the analysis into the tree
//	morphsync extract   # pull ADJ->NOUN MOD pairs from the synced tree
//	morphsync run       # both stages in order
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/agreementlab/morphsync/core/pipeline"
	"github.com/agreementlab/morphsync/internal/config"
	"github.com/agreementlab/morphsync/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for morphsync.
var CLI struct {
	// Global flags
	Config    string   `name:"config" short:"c" help:"YAML config file path" type:"path"`
	LogLevel  string   `name:"log-level" help:"Log level (debug|info|warn|error)"`
	LogFormat string   `name:"log-format" help:"Log format (text|json)"`
	TraceForm []string `name:"trace-form" help:"Surface form(s) to trace through the sync stage"`

	// Path overrides on top of config/env
	TreeIn     string `name:"tree-in" help:"Input tree path" type:"path"`
	AnalysisIn string `name:"analysis-in" help:"Input morphological-analysis path" type:"path"`
	TreeOut    string `name:"tree-out" help:"Output synchronized tree path" type:"path"`
	PairsOut   string `name:"pairs-out" help:"Output pair-table path" type:"path"`

	Sync    SyncCmd    `cmd:"" help:"Synchronize tree features from the morphological analysis"`
	Extract ExtractCmd `cmd:"" help:"Extract adjective-modifier pairs from the synchronized tree"`
	Run     RunCmd     `cmd:"" help:"Run both stages: sync then extract"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// setup loads the configuration, applies CLI overrides, and initializes
// logging for the run.
func setup() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}

	if CLI.LogLevel != "" {
		cfg.Log.Level = CLI.LogLevel
	}
	if CLI.LogFormat != "" {
		cfg.Log.Format = CLI.LogFormat
	}
	if CLI.TreeIn != "" {
		cfg.Paths.TreeIn = CLI.TreeIn
	}
	if CLI.AnalysisIn != "" {
		cfg.Paths.AnalysisIn = CLI.AnalysisIn
	}
	if CLI.TreeOut != "" {
		cfg.Paths.TreeOut = CLI.TreeOut
	}
	if CLI.PairsOut != "" {
		cfg.Paths.PairsOut = CLI.PairsOut
	}
	if len(CLI.TraceForm) > 0 {
		cfg.TraceForms = append(cfg.TraceForms, CLI.TraceForm...)
	}

	logging.InitLogger(logging.ParseLevel(cfg.Log.Level), logging.ParseFormat(cfg.Log.Format))
	logging.WithRunID(uuid.NewString())
	return cfg, nil
}

// SyncCmd runs the feature-synchronization stage.
type SyncCmd struct{}

func (c *SyncCmd) Run() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	stats, err := pipeline.RunSync(cfg)
	if err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}
	fmt.Printf("Lookup keys:     %d\n", stats.LookupKeys)
	fmt.Printf("Tokens matched:  %d\n", stats.Matched)
	fmt.Printf("Tokens updated:  %d\n", stats.Updated)
	fmt.Printf("Wrote: %s\n", cfg.Paths.TreeOut)
	return nil
}

// ExtractCmd runs the pair-extraction stage.
type ExtractCmd struct{}

func (c *ExtractCmd) Run() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	stats, err := pipeline.RunExtract(cfg)
	if err != nil {
		return fmt.Errorf("extract stage: %w", err)
	}
	fmt.Printf("Sentences read:  %d\n", stats.Sentences)
	fmt.Printf("Pairs extracted: %d\n", stats.Pairs)
	fmt.Printf("Wrote: %s\n", cfg.Paths.PairsOut)
	return nil
}

// RunCmd runs both stages in order.
type RunCmd struct{}

func (c *RunCmd) Run() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	syncStats, extractStats, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Lookup keys:     %d\n", syncStats.LookupKeys)
	fmt.Printf("Tokens matched:  %d\n", syncStats.Matched)
	fmt.Printf("Tokens updated:  %d\n", syncStats.Updated)
	fmt.Printf("Sentences read:  %d\n", extractStats.Sentences)
	fmt.Printf("Pairs extracted: %d\n", extractStats.Pairs)
	fmt.Printf("Wrote: %s\n", cfg.Paths.TreeOut)
	fmt.Printf("Wrote: %s\n", cfg.Paths.PairsOut)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("morphsync %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("morphsync"),
		kong.Description("Arabic agreement-feature sync and adjective-pair extraction"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
