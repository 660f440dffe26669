package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	pkgerrors "github.com/agreementlab/morphsync/core/errors"
)

func TestExists(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "in.conllu")
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if err := Exists("tree file", path); err != nil {
		t.Errorf("Exists on present file: %v", err)
	}

	err := Exists("tree file", filepath.Join(tempDir, "missing.conllu"))
	if err == nil {
		t.Fatal("Exists on missing file returned nil")
	}
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.conllu") {
		t.Errorf("error does not name the path: %v", err)
	}
}

func TestReadWriteLines(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "tree.conllu")

	lines := []string{"# comment", "1\ta\tb", "", "2\tc\td"}
	if err := WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "# comment\n1\ta\tb\n\n2\tc\td\n" {
		t.Errorf("written bytes = %q", got)
	}

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("round trip = %v, want %v", got, lines)
	}
}

func TestReadLinesCRLF(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "crlf.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("lines = %v", got)
	}
}

func TestReadLinesLossy(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "analysis.magold")
	// 0xFF is never valid UTF-8.
	if err := os.WriteFile(path, []byte("*1.0 diac:x\xffy gen:f\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	got, err := ReadLinesLossy(path)
	if err != nil {
		t.Fatalf("ReadLinesLossy: %v", err)
	}
	if len(got) != 1 || !strings.Contains(got[0], "�") {
		t.Errorf("lossy decode = %q, want replacement rune", got)
	}
}

func TestChecksum(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "in.txt")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	sum := Checksum(path)
	if len(sum) != 64 {
		t.Errorf("checksum length = %d, want 64 hex chars", len(sum))
	}
	if sum != Checksum(path) {
		t.Error("checksum not deterministic")
	}
	if Checksum(filepath.Join(tempDir, "absent")) != "" {
		t.Error("checksum of missing file should be empty")
	}
}
