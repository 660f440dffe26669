// Package pipeline wires the two processing stages to the filesystem: it
// resolves configured paths, fails fast on missing inputs, runs a stage
// over fully materialized lines, and writes each output artifact wholesale.
package pipeline

import (
	"fmt"

	"github.com/agreementlab/morphsync/core/extract"
	"github.com/agreementlab/morphsync/core/magold"
	"github.com/agreementlab/morphsync/core/syncer"
	"github.com/agreementlab/morphsync/internal/config"
	"github.com/agreementlab/morphsync/internal/fileutil"
	"github.com/agreementlab/morphsync/internal/logging"
)

// SyncStats is the operator-facing outcome of the sync stage.
type SyncStats struct {
	LookupKeys int
	Matched    int
	Updated    int
}

// ExtractStats is the operator-facing outcome of the extraction stage.
type ExtractStats struct {
	Sentences int
	Pairs     int
}

// RunSync builds the morphological lookup and synchronizes the tree,
// writing the result to cfg.Paths.TreeOut.
func RunSync(cfg *config.Config) (SyncStats, error) {
	var stats SyncStats

	if err := fileutil.Exists("tree file", cfg.Paths.TreeIn); err != nil {
		return stats, err
	}
	if err := fileutil.Exists("analysis file", cfg.Paths.AnalysisIn); err != nil {
		return stats, err
	}
	logging.StageInput("sync", cfg.Paths.TreeIn, fileutil.Checksum(cfg.Paths.TreeIn))
	logging.StageInput("sync", cfg.Paths.AnalysisIn, fileutil.Checksum(cfg.Paths.AnalysisIn))

	treeLines, err := fileutil.ReadLines(cfg.Paths.TreeIn)
	if err != nil {
		return stats, err
	}
	analysisLines, err := fileutil.ReadLinesLossy(cfg.Paths.AnalysisIn)
	if err != nil {
		return stats, err
	}

	lookup := magold.Build(analysisLines)

	s := syncer.Syncer{Lookup: lookup}
	if len(cfg.TraceForms) > 0 {
		s.TraceKeys = make(map[string]bool, len(cfg.TraceForms))
		for _, form := range cfg.TraceForms {
			s.TraceKeys[form] = true
		}
		s.Trace = logging.TraceHit
	}
	res := s.Sync(treeLines)

	if err := fileutil.WriteLines(cfg.Paths.TreeOut, res.Lines); err != nil {
		return stats, err
	}

	stats = SyncStats{LookupKeys: len(lookup), Matched: res.Matched, Updated: res.Updated}
	logging.SyncSummary(stats.LookupKeys, stats.Matched, stats.Updated, cfg.Paths.TreeOut)
	return stats, nil
}

// RunExtract reads the synchronized tree and writes the adjective-pair
// table to cfg.Paths.PairsOut.
func RunExtract(cfg *config.Config) (ExtractStats, error) {
	var stats ExtractStats

	if err := fileutil.Exists("synchronized tree file", cfg.Paths.TreeOut); err != nil {
		return stats, err
	}
	logging.StageInput("extract", cfg.Paths.TreeOut, fileutil.Checksum(cfg.Paths.TreeOut))

	lines, err := fileutil.ReadLines(cfg.Paths.TreeOut)
	if err != nil {
		return stats, err
	}

	res := extract.Extract(lines)

	if err := writePairs(cfg.Paths.PairsOut, res.Pairs); err != nil {
		return stats, err
	}

	stats = ExtractStats{Sentences: res.Sentences, Pairs: len(res.Pairs)}
	logging.ExtractSummary(stats.Sentences, stats.Pairs, cfg.Paths.PairsOut)
	return stats, nil
}

// Run chains both stages: sync first, then extraction over the freshly
// written tree.
func Run(cfg *config.Config) (SyncStats, ExtractStats, error) {
	syncStats, err := RunSync(cfg)
	if err != nil {
		return syncStats, ExtractStats{}, fmt.Errorf("sync stage: %w", err)
	}
	extractStats, err := RunExtract(cfg)
	if err != nil {
		return syncStats, extractStats, fmt.Errorf("extract stage: %w", err)
	}
	return syncStats, extractStats, nil
}
