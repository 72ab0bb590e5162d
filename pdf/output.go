package pdf

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// writeOutput writes a document to outFile through a temporary file in the
// same directory and renames it into place, so outFile is either left as it
// was or completely written. New files get OutputFileMode.
func writeOutput(outFile string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(outFile), "."+filepath.Base(outFile)+".*.tmp")
	if err != nil {
		return &WriteError{Path: outFile, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return &WriteError{Path: outFile, Err: err}
	}
	// An existing destination keeps its permissions.
	mode := OutputFileMode
	if info, statErr := os.Stat(outFile); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return &WriteError{Path: outFile, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &WriteError{Path: outFile, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &WriteError{Path: outFile, Err: err}
	}
	if err = os.Rename(tmp.Name(), outFile); err != nil {
		return &WriteError{Path: outFile, Err: err}
	}
	return nil
}
