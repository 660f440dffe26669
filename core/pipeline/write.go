package pipeline

import (
	"os"

	"github.com/agreementlab/morphsync/core/errors"
	"github.com/agreementlab/morphsync/core/extract"
)

// writePairs writes the pair table CSV. The file is created, written, and
// closed within this call; a header-only file is still a valid artifact.
func writePairs(path string, pairs []extract.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	defer f.Close()

	if err := extract.WriteCSV(f, pairs); err != nil {
		return errors.Wrapf(err, "failed to write pair table %s", path)
	}
	return f.Close()
}
