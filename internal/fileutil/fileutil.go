// Package fileutil provides the whole-file line I/O used by the pipeline
// stages. Every helper opens, fully reads or writes, and closes its file
// within the call; no handle survives past a stage boundary.
package fileutil

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/agreementlab/morphsync/core/errors"
)

// Exists reports whether path names an existing file, returning a
// NotFoundError naming the path otherwise. resource describes the input
// for the error message.
func Exists(resource, path string) error {
	if _, err := os.Stat(path); err != nil {
		return &errors.NotFoundError{Resource: resource, Path: path, Err: err}
	}
	return nil
}

// ReadLines reads a UTF-8 text file and splits it into lines without
// terminators.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return splitLines(string(data)), nil
}

// ReadLinesLossy is ReadLines with invalid UTF-8 byte sequences replaced by
// U+FFFD instead of being preserved. Decoding never fails.
func ReadLinesLossy(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return splitLines(strings.ToValidUTF8(string(data), "�")), nil
}

// splitLines splits on \n, tolerating \r\n, and drops the empty tail that a
// trailing newline would otherwise produce.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// WriteLines writes lines newline-joined and newline-terminated, wholesale.
func WriteLines(path string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

// Checksum returns the hex BLAKE3 digest of a file, for input provenance in
// the run log. Errors are reported as "", not raised; a missing input is
// caught earlier by Exists.
func Checksum(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
