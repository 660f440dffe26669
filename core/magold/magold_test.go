package magold

import "testing"

func TestExtractTag(t *testing.T) {
	line := "*1.000000 word:m$Akl diac:ma$Akila bw:ma$Akil/NOUN+a/CASE gen:f form_gen:m num:p rat:i"

	tests := []struct {
		tag  string
		want string
	}{
		{TagDiac, "ma$Akila"},
		{TagBW, "ma$Akil/NOUN+a/CASE"},
		{TagGen, "f"},
		{TagNum, "p"},
		{TagRat, "i"},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := ExtractTag(line, tt.tag); got != tt.want {
			t.Errorf("ExtractTag(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

// form_gen must not satisfy the gen probe: the tag name sits on a word
// boundary, and `_` is a word character.
func TestExtractTagWordBoundary(t *testing.T) {
	line := "*1.0 form_gen:m form_num:s diac:x gen:f num:p rat:y"
	if got := ExtractTag(line, TagGen); got != "f" {
		t.Errorf("gen = %q, want %q", got, "f")
	}
	if got := ExtractTag(line, TagNum); got != "p" {
		t.Errorf("num = %q, want %q", got, "p")
	}
}

func TestBWKey(t *testing.T) {
	tests := []struct {
		bw   string
		want string
	}{
		{"ma$Akil/NOUN+a/CASE", "ma$Akil"},
		{"+a/CASE", "a"},
		{"kbyr", "kbyr"},
		{"/NOUN", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BWKey(tt.bw); got != tt.want {
			t.Errorf("BWKey(%q) = %q, want %q", tt.bw, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	lines := []string{
		";;; comment line",
		"",
		"*1.0 diac:ma$Akila bw:ma$Akil/NOUN+a/CASE gen:f num:p rat:i",
		"*0.5 diac:kabiyr bw:+kbyr/ADJ gen:m num:s rat:n",
		"*0.5 diac:useless gen:na num:s rat:i",
		"*0.5 bw:noGenNum/NOUN rat:i",
		"not an analysis line gen:f num:s rat:i",
	}

	lookup := Build(lines)

	want := map[string]Features{
		"ma$Akila": {Gen: "f", Num: "p", Rat: "i"},
		"ma$Akil":  {Gen: "f", Num: "p", Rat: "i"},
		"kabiyr":   {Gen: "m", Num: "s", Rat: "n"},
		"kbyr":     {Gen: "m", Num: "s", Rat: "n"},
	}
	if len(lookup) != len(want) {
		t.Fatalf("lookup has %d keys, want %d: %v", len(lookup), len(want), lookup)
	}
	for k, v := range want {
		if got, ok := lookup[k]; !ok || got != v {
			t.Errorf("lookup[%q] = %v (present=%v), want %v", k, got, ok, v)
		}
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	lines := []string{
		"*1.0 diac:kitAb gen:m num:s rat:n",
		"*0.9 diac:kitAb gen:f num:p rat:i",
	}
	lookup := Build(lines)
	if got := lookup["kitAb"]; got != (Features{Gen: "f", Num: "p", Rat: "i"}) {
		t.Errorf("lookup[kitAb] = %v, want later record's triple", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	if lookup := Build(nil); len(lookup) != 0 {
		t.Errorf("Build(nil) has %d keys, want 0", len(lookup))
	}
	if lookup := Build([]string{"", ";; x", "plain"}); len(lookup) != 0 {
		t.Errorf("Build of unusable lines has %d keys, want 0", len(lookup))
	}
}
