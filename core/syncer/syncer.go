// Package syncer merges authoritative MAGOLD feature triples into the
// tabular tree, line by line.
//
// The pass is lenient and conservative: lines that are blank, comments,
// short on columns, multi-word ranges, keyless, or absent from the lookup pass through
// byte-for-byte, and a matched line whose features already agree with the
// lookup is not re-serialized. Running the pass twice therefore yields zero
// updates on the second run.
package syncer

import (
	"strings"

	"github.com/agreementlab/morphsync/core/conllu"
	"github.com/agreementlab/morphsync/core/magold"
)

// MISC keys consulted, in precedence order, to resolve a token's lookup key.
const (
	KeySurfacePlusBW = "surface_plus_bw"
	KeySurfaceFormBW = "surface_form_bw"
)

// Feature-map keys rewritten by the synchronizer.
const (
	FeatGen = "gen"
	FeatNum = "num"
	FeatRat = "rat"
)

// Result is the outcome of one synchronization pass.
type Result struct {
	// Lines is the full output, same length and order as the input.
	Lines []string
	// Matched counts token lines whose lookup key resolved to a triple.
	Matched int
	// Updated counts matched lines whose feature column actually changed.
	Updated int
}

// TraceFunc receives, for each traced key, the line's feature column before
// and after the pass. after equals before when nothing changed.
type TraceFunc func(key, before, after string)

// Syncer holds the per-run knobs of a synchronization pass.
type Syncer struct {
	Lookup magold.Lookup

	// TraceKeys selects lookup keys whose lines are reported to Trace.
	// Nil disables tracing.
	TraceKeys map[string]bool
	Trace     TraceFunc
}

// ResolveKey picks the lookup key from a token's MISC map:
// surface_plus_bw first, then surface_form_bw. Empty means no key.
func ResolveKey(misc map[string]string) string {
	if v, ok := misc[KeySurfacePlusBW]; ok {
		return v
	}
	if v, ok := misc[KeySurfaceFormBW]; ok {
		return v
	}
	return ""
}

// Sync runs one pass over the tree lines. See the package comment for the
// pass-through and conditional-rewrite rules.
func (s *Syncer) Sync(lines []string) Result {
	res := Result{Lines: make([]string, 0, len(lines))}

	for _, line := range lines {
		res.Lines = append(res.Lines, s.syncLine(line, &res))
	}
	return res
}

func (s *Syncer) syncLine(line string, res *Result) string {
	if conllu.IsBlank(line) || conllu.IsComment(line) {
		return line
	}
	cols := strings.Split(line, "\t")
	if len(cols) < conllu.NumColumns {
		return line
	}
	if strings.ContainsAny(cols[conllu.ColID], "-.") {
		// Multi-word range or empty node: preserved verbatim.
		return line
	}

	feats := conllu.ParseAttrs(cols[conllu.ColFeats])
	misc := conllu.ParseAttrs(cols[conllu.ColMisc])

	key := ResolveKey(misc)
	if key == "" {
		return line
	}
	val, ok := s.Lookup[key]
	if !ok {
		return line
	}
	res.Matched++

	if feats[FeatGen] == val.Gen && feats[FeatNum] == val.Num && feats[FeatRat] == val.Rat {
		// Already in agreement: keep the line byte-identical rather than
		// re-serializing, so unaffected lines stay diff-stable.
		s.trace(key, cols[conllu.ColFeats], cols[conllu.ColFeats])
		return line
	}

	feats[FeatGen] = val.Gen
	feats[FeatNum] = val.Num
	feats[FeatRat] = val.Rat

	before := cols[conllu.ColFeats]
	cols[conllu.ColFeats] = conllu.FormatAttrs(feats)
	res.Updated++
	s.trace(key, before, cols[conllu.ColFeats])
	return strings.Join(cols, "\t")
}

func (s *Syncer) trace(key, before, after string) {
	if s.Trace == nil || !s.TraceKeys[key] {
		return
	}
	s.Trace(key, before, after)
}

// Sync is the plain entry point for callers without tracing needs.
func Sync(lines []string, lookup magold.Lookup) Result {
	s := Syncer{Lookup: lookup}
	return s.Sync(lines)
}
