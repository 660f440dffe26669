package extract

import "strings"

// Annotation-scheme keys carried in the MISC column. The UPOS/XPOS columns
// are unreliable in this corpus (often just NOM), so classification leans
// on these instead.
const (
	SchemeBW     = "bw"     // Buckwalter POS analysis, e.g. kbyr/ADJ+p/FEM
	SchemeMada   = "mada"   // MADA POS, lowercase, e.g. adj / noun
	SchemeKulick = "kulick" // Kulick treebank tag, e.g. JJ
)

// Classifier sentinels per scheme.
const (
	bwAdjPrefix  = "ADJ"
	bwNounPrefix = "NOUN"
	madaAdj      = "adj"
	madaNoun     = "noun"
	kulickAdj    = "JJ"
)

// IsAdjective reports whether a token's MISC annotations mark it as an
// adjective. The rules are independent heuristics over three annotation
// schemes, evaluated in a fixed order with any single hit sufficing; the
// schemes may disagree and no tie-break is applied.
func IsAdjective(misc map[string]string) bool {
	bw := misc[SchemeBW]

	if strings.HasPrefix(bw, bwAdjPrefix) {
		return true
	}
	if misc[SchemeMada] == madaAdj {
		return true
	}
	if misc[SchemeKulick] == kulickAdj {
		return true
	}
	// ADJ may also sit mid-analysis as its own morpheme segment.
	for _, seg := range strings.Split(bw, "+") {
		if seg == bwAdjPrefix {
			return true
		}
	}
	return false
}

// IsNounLike reports whether a token's MISC annotations mark it as a noun.
// Deliberately narrower than IsAdjective: only the bw prefix and the mada
// tag are consulted.
func IsNounLike(misc map[string]string) bool {
	if strings.HasPrefix(misc[SchemeBW], bwNounPrefix) {
		return true
	}
	return misc[SchemeMada] == madaNoun
}
