package logging

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("json should map to FormatJSON")
	}
	if ParseFormat("text") != FormatText {
		t.Error("text should map to FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Error("unknown format should map to FormatText")
	}
}

func TestInitLogger(t *testing.T) {
	InitLogger(LevelDebug, FormatJSON)
	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil after init")
	}
	// Restore the default so other tests log as expected.
	InitLogger(LevelInfo, FormatText)
}
