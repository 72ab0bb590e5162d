// Package pdf implements the page-level document operations (merge, rotate,
// keep) on top of pdfcpu.
package pdf

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"
)

func init() {
	// Keep pdfcpu from creating its config directory under the user's home.
	api.DisableConfigDir()
}

// Summary describes what an operation did.
type Summary struct {
	InputPages  int
	OutputPages int
	// Pages lists the affected 1-based page numbers: rotated pages for
	// Rotate, kept pages for Keep. Empty for Merge.
	Pages []int
}

// Processor runs document operations. It holds no state besides its logger and
// is safe for concurrent use.
type Processor struct {
	log logrus.FieldLogger
}

// NewProcessor returns a Processor logging through log. A nil log discards
// everything.
func NewProcessor(log logrus.FieldLogger) *Processor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Processor{log: log}
}

func (p *Processor) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages of the document at inFile.
func (p *Processor) PageCount(inFile string) (int, error) {
	doc, err := readInput(inFile)
	if err != nil {
		return 0, err
	}
	n, err := api.PageCount(doc, p.configuration())
	if err != nil {
		return 0, &DocumentError{Path: inFile, Err: err}
	}
	return n, nil
}

// checkInput verifies that path names a readable regular file with a .pdf suffix.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &InputError{Path: path, Err: fs.ErrNotExist}
		}
		return &InputError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &InputError{Path: path, Err: ErrIsDir}
	}
	if !strings.EqualFold(filepath.Ext(path), PDFExtension) {
		return &InputError{Path: path, Err: ErrNotPDF}
	}
	return nil
}

// readInput loads the whole document into memory so the file handle is
// released before anything is written, which allows writing over the input.
func readInput(path string) (*bytes.Reader, error) {
	if err := checkInput(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return bytes.NewReader(data), nil
}
