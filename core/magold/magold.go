// Package magold reads the morphological-analysis gold source (MAGOLD) and
// builds the authoritative feature lookup used to synchronize the tree.
//
// Only analysis lines matter: lines starting with `*` after trimming, each
// carrying a confidence prefix (ignored) and whitespace-separated
// `tag:value` tokens. Four tags are consulted: diac, bw, gen, num, rat.
package magold

import (
	"regexp"
	"strings"
)

// AnalysisMarker prefixes every analysis line in the MAGOLD source.
const AnalysisMarker = "*"

// NotApplicable is the sentinel value meaning a feature does not apply.
// Records carrying it for gen, num, or rat are unusable.
const NotApplicable = "na"

// Tag names extracted from analysis lines.
const (
	TagDiac = "diac"
	TagBW   = "bw"
	TagGen  = "gen"
	TagNum  = "num"
	TagRat  = "rat"
)

// tagPatterns matches `tag:value` with the tag name on a word boundary, so
// e.g. form_gen does not satisfy the gen probe. First match per line wins.
var tagPatterns = map[string]*regexp.Regexp{
	TagDiac: tagPattern(TagDiac),
	TagBW:   tagPattern(TagBW),
	TagGen:  tagPattern(TagGen),
	TagNum:  tagPattern(TagNum),
	TagRat:  tagPattern(TagRat),
}

func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(tag) + `:(\S+)`)
}

// ExtractTag returns the value of the first `tag:value` occurrence in line,
// or "" when the tag is absent. Absence is not an error.
func ExtractTag(line, tag string) string {
	re, ok := tagPatterns[tag]
	if !ok {
		re = tagPattern(tag)
	}
	if m := re.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// Features is the authoritative (gender, number, rationality) triple for
// one surface-form key.
type Features struct {
	Gen string
	Num string
	Rat string
}

// Lookup maps surface-form keys (diacritized form, Buckwalter stem token)
// to their authoritative feature triple. Built once, read-only thereafter.
type Lookup map[string]Features

// BWKey derives the transliterated-form key from a raw bw tag value: the
// segment before the first `/` (the stem, before its POS), with one leading
// morpheme-boundary `+` stripped. Returns "" when nothing remains.
func BWKey(bw string) string {
	tok, _, _ := strings.Cut(bw, "/")
	return strings.TrimPrefix(tok, "+")
}

// Build folds the MAGOLD lines into a Lookup. Per line: trim, skip blanks
// and non-analysis lines, extract the four tags, discard the record unless
// gen, num, and rat are all present and none is the `na` sentinel, then
// register the triple under the diac key and the bw-derived key (either may
// be absent; a line can register zero, one, or two keys). Later lines
// overwrite earlier ones for the same key: last write wins, by policy.
func Build(lines []string) Lookup {
	lookup := make(Lookup)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, AnalysisMarker) {
			continue
		}

		gen := ExtractTag(line, TagGen)
		num := ExtractTag(line, TagNum)
		rat := ExtractTag(line, TagRat)
		if !usable(gen) || !usable(num) || !usable(rat) {
			continue
		}

		val := Features{Gen: gen, Num: num, Rat: rat}
		if diac := ExtractTag(line, TagDiac); diac != "" {
			lookup[diac] = val
		}
		if tok := BWKey(ExtractTag(line, TagBW)); tok != "" {
			lookup[tok] = val
		}
	}
	return lookup
}

func usable(v string) bool {
	return v != "" && v != NotApplicable
}
