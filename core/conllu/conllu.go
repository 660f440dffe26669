// Package conllu provides the token model and line-level codecs for the
// tabular dependency-tree format (CoNLL-U): ten tab-separated columns per
// token, blank lines between sentences, `#` comment lines.
//
// The package is deliberately lenient: lines that do not parse are reported
// as such, never rejected, so callers can pass them through byte-for-byte.
package conllu

import (
	"sort"
	"strconv"
	"strings"
)

// NumColumns is the required column count for a token line.
const NumColumns = 10

// Column indices into a token line (0-based).
const (
	ColID     = 0
	ColForm   = 1
	ColLemma  = 2
	ColUPOS   = 3
	ColXPOS   = 4
	ColFeats  = 5
	ColHead   = 6
	ColDeprel = 7
	ColDeps   = 8
	ColMisc   = 9
)

// Empty is the sentinel marking an empty feature or MISC column.
const Empty = "_"

// Token is one parsed token row of the tabular tree.
type Token struct {
	ID       int
	Form     string
	Lemma    string
	UPOS     string
	XPOS     string
	FeatsRaw string
	Head     int
	Deprel   string
	Deps     string
	MiscRaw  string

	Feats map[string]string
	Misc  map[string]string
}

// ParseAttrs decodes a pipe-delimited attribute column (FEATS or MISC) into
// a map. The empty string and the `_` sentinel both decode to an empty map.
// Each segment containing `=` contributes one entry, split on the first `=`;
// segments without `=` are ignored.
func ParseAttrs(raw string) map[string]string {
	attrs := make(map[string]string)
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == Empty {
		return attrs
	}
	for _, part := range strings.Split(raw, "|") {
		if k, v, ok := strings.Cut(part, "="); ok {
			attrs[k] = v
		}
	}
	return attrs
}

// FormatAttrs is the inverse of ParseAttrs for the FEATS column. The empty
// map serializes to `_`; otherwise keys are emitted in sorted order so that
// output is deterministic and diff-stable.
func FormatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return Empty
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + attrs[k]
	}
	return strings.Join(parts, "|")
}

// IsComment reports whether a line is a comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsBlank reports whether a line is blank (whitespace-only), i.e. a
// sentence boundary.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ParseToken parses one token line. It returns nil for comments, for lines
// with fewer than NumColumns tab-separated columns, and for multi-word or
// empty-node ids (ids containing `-` or `.`) as well as ids that are not
// integers. A nil return is a skip signal, never an error.
func ParseToken(line string) *Token {
	if IsComment(line) {
		return nil
	}
	cols := strings.Split(line, "\t")
	if len(cols) < NumColumns {
		return nil
	}

	id := cols[ColID]
	if strings.ContainsAny(id, "-.") {
		// Multi-word token range or empty node: excluded from parsing,
		// preserved verbatim by the callers that own the raw line.
		return nil
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil
	}

	return &Token{
		ID:       n,
		Form:     cols[ColForm],
		Lemma:    cols[ColLemma],
		UPOS:     cols[ColUPOS],
		XPOS:     cols[ColXPOS],
		FeatsRaw: cols[ColFeats],
		Head:     parseHead(cols[ColHead]),
		Deprel:   cols[ColDeprel],
		Deps:     cols[ColDeps],
		MiscRaw:  cols[ColMisc],
		Feats:    ParseAttrs(cols[ColFeats]),
		Misc:     ParseAttrs(cols[ColMisc]),
	}
}

// parseHead parses the head column. Anything that is not a non-negative
// integer means "no head" (0).
func parseHead(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Sentence is one blank-line-delimited block of the tabular tree. Lines
// holds every raw line of the block, comments included, in file order.
type Sentence struct {
	Lines []string
}

// Tokens parses every token line of the sentence into an id-keyed map.
// Comment lines and unparseable lines are skipped.
func (s *Sentence) Tokens() map[int]*Token {
	tokens := make(map[int]*Token)
	for _, line := range s.Lines {
		if t := ParseToken(line); t != nil {
			tokens[t.ID] = t
		}
	}
	return tokens
}

// Split segments raw lines into sentences on blank-line boundaries. Blank
// lines themselves are not retained; comment lines stay with the sentence
// they precede or interrupt.
func Split(lines []string) []*Sentence {
	var sentences []*Sentence
	var cur []string
	for _, line := range lines {
		if IsBlank(line) {
			if len(cur) > 0 {
				sentences = append(sentences, &Sentence{Lines: cur})
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		sentences = append(sentences, &Sentence{Lines: cur})
	}
	return sentences
}
