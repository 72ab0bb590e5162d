package pdf

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"
)

// Merge appends every page of inFiles, in argument order, into a new document
// written to outFile.
func (p *Processor) Merge(inFiles []string, outFile string) (*Summary, error) {
	if len(inFiles) == 0 {
		return nil, ErrNoInput
	}

	summary := &Summary{}
	docs := make([]io.ReadSeeker, 0, len(inFiles))
	for _, inFile := range inFiles {
		doc, err := readInput(inFile)
		if err != nil {
			return nil, err
		}

		// Counting pages validates each input so a broken file is reported by name.
		pageCount, err := api.PageCount(doc, p.configuration())
		if err != nil {
			return nil, &DocumentError{Path: inFile, Err: err}
		}
		if _, err := doc.Seek(0, io.SeekStart); err != nil {
			return nil, &InputError{Path: inFile, Err: err}
		}

		p.log.WithFields(logrus.Fields{
			"file":  inFile,
			"pages": pageCount,
		}).Info("Adding document")

		summary.InputPages += pageCount
		docs = append(docs, doc)
	}

	err := writeOutput(outFile, func(w io.Writer) error {
		if err := api.MergeRaw(docs, w, false, p.configuration()); err != nil {
			return fmt.Errorf("failed to merge PDFs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.OutputPages = summary.InputPages

	p.log.WithFields(logrus.Fields{
		"output": outFile,
		"files":  len(inFiles),
		"pages":  summary.OutputPages,
	}).Info("Merged PDF written")

	return summary, nil
}
