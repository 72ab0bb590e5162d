package pdf

import (
	"fmt"
	"io"
	"slices"

	"pdf_util/pagespec"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"
)

// Rotate turns the pages selected by pages clockwise by angle degrees and
// writes the whole document, rotated and unrotated pages in their original
// order, to outFile. The page specification "all" selects every page.
func (p *Processor) Rotate(inFile, outFile string, angle int, pages string) (*Summary, error) {
	if !slices.Contains(ValidAngles, angle) {
		return nil, ErrInvalidAngle
	}

	doc, err := readInput(inFile)
	if err != nil {
		return nil, err
	}
	pageCount, err := api.PageCount(doc, p.configuration())
	if err != nil {
		return nil, &DocumentError{Path: inFile, Err: err}
	}

	selected, err := selectPages(pages, pageCount, true)
	if err != nil {
		return nil, err
	}
	if _, err := doc.Seek(0, io.SeekStart); err != nil {
		return nil, &InputError{Path: inFile, Err: err}
	}

	p.log.WithFields(logrus.Fields{
		"file":  inFile,
		"pages": pagespec.Format(selected),
		"angle": angle,
	}).Info("Rotating pages")

	err = writeOutput(outFile, func(w io.Writer) error {
		if err := api.Rotate(doc, w, angle, pagespec.Selection(selected), p.configuration()); err != nil {
			return fmt.Errorf("failed to rotate %s: %w", inFile, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.log.WithField("output", outFile).Info("Rotated PDF written")

	return &Summary{
		InputPages:  pageCount,
		OutputPages: pageCount,
		Pages:       pageNumbers(selected),
	}, nil
}
