// Package extract walks the synchronized dependency tree and pulls out
// adjective-modifier to noun-head pairs for downstream agreement analysis.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/agreementlab/morphsync/core/conllu"
)

// ModifierRelation is the dependency-relation label selected for
// adjective-to-noun extraction.
const ModifierRelation = "MOD"

// Pair binds an adjective dependent to its noun-like head within one
// sentence. Raw feature and MISC strings ride along for auditability.
type Pair struct {
	SentIdx int // 1-based sentence ordinal

	AdjID    int
	AdjForm  string
	AdjLemma string
	AdjFeats string
	AdjMisc  string

	HeadID    int
	HeadForm  string
	HeadLemma string
	HeadFeats string
	HeadMisc  string

	Deprel string
}

// Result carries the extracted pairs plus the sentence count for the run
// summary.
type Result struct {
	Pairs     []Pair
	Sentences int
}

// Extract segments the tree lines into sentences and emits one Pair per
// qualifying modifier edge: the dependent's relation is ModifierRelation,
// the dependent classifies as an adjective, its head id resolves within the
// same sentence, and the head classifies as noun-like. A head id missing
// from the sentence (root reference, elided or cross-sentence head) drops
// the edge silently. Dependents are visited in ascending id order so output
// is deterministic.
func Extract(lines []string) Result {
	sentences := conllu.Split(lines)
	res := Result{Sentences: len(sentences)}

	for i, sent := range sentences {
		tokens := sent.Tokens()

		ids := make([]int, 0, len(tokens))
		for id := range tokens {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		for _, id := range ids {
			dep := tokens[id]
			if dep.Deprel != ModifierRelation {
				continue
			}
			if !IsAdjective(dep.Misc) {
				continue
			}
			head, ok := tokens[dep.Head]
			if !ok {
				continue
			}
			if !IsNounLike(head.Misc) {
				continue
			}

			res.Pairs = append(res.Pairs, Pair{
				SentIdx:   i + 1,
				AdjID:     dep.ID,
				AdjForm:   dep.Form,
				AdjLemma:  dep.Lemma,
				AdjFeats:  dep.FeatsRaw,
				AdjMisc:   dep.MiscRaw,
				HeadID:    head.ID,
				HeadForm:  head.Form,
				HeadLemma: head.Lemma,
				HeadFeats: head.FeatsRaw,
				HeadMisc:  head.MiscRaw,
				Deprel:    dep.Deprel,
			})
		}
	}
	return res
}

// CSVHeader is the fixed column order of the pair table. It is written even
// when no pairs were extracted.
var CSVHeader = []string{
	"sent_idx",
	"adj_id", "adj_form", "adj_lemma", "adj_feats", "adj_misc",
	"head_id", "head_form", "head_lemma", "head_feats", "head_misc",
	"deprel",
}

// WriteCSV writes the pair table, header first, one row per pair.
func WriteCSV(w io.Writer, pairs []Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range pairs {
		row := []string{
			fmt.Sprintf("%d", p.SentIdx),
			fmt.Sprintf("%d", p.AdjID), p.AdjForm, p.AdjLemma, p.AdjFeats, p.AdjMisc,
			fmt.Sprintf("%d", p.HeadID), p.HeadForm, p.HeadLemma, p.HeadFeats, p.HeadMisc,
			p.Deprel,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write pair row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
