package pdf

import (
	"fmt"
	"io"
	"strings"

	"pdf_util/pagespec"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"
)

// Keep writes a document containing only the pages selected by pages, in
// ascending page order, to outFile. All other pages are dropped.
func (p *Processor) Keep(inFile, outFile, pages string) (*Summary, error) {
	doc, err := readInput(inFile)
	if err != nil {
		return nil, err
	}

	// Validate page numbers against the page count before processing
	pageCount, err := api.PageCount(doc, p.configuration())
	if err != nil {
		return nil, &DocumentError{Path: inFile, Err: err}
	}

	selected, err := selectPages(pages, pageCount, false)
	if err != nil {
		return nil, err
	}
	if _, err := doc.Seek(0, io.SeekStart); err != nil {
		return nil, &InputError{Path: inFile, Err: err}
	}

	p.log.WithFields(logrus.Fields{
		"file":  inFile,
		"pages": pagespec.Format(selected),
		"kept":  len(selected),
		"total": pageCount,
	}).Info("Keeping pages")

	err = writeOutput(outFile, func(w io.Writer) error {
		if err := api.Trim(doc, w, pagespec.Selection(selected), p.configuration()); err != nil {
			return fmt.Errorf("failed to extract pages from %s: %w", inFile, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.log.WithField("output", outFile).Info("Extracted PDF written")

	return &Summary{
		InputPages:  pageCount,
		OutputPages: len(selected),
		Pages:       pageNumbers(selected),
	}, nil
}

// selectPages resolves a page specification against a document's page count.
// With allowAll the keyword "all" selects every page. An empty specification
// is always malformed.
func selectPages(spec string, pageCount int, allowAll bool) ([]int, error) {
	if allowAll && strings.EqualFold(strings.TrimSpace(spec), AllPages) {
		return pagespec.All(pageCount), nil
	}

	indices, err := pagespec.Parse(spec, pageCount)
	if err != nil {
		return nil, fmt.Errorf("invalid page selection: %w", err)
	}
	return indices, nil
}

// pageNumbers converts zero-based indices to 1-based page numbers.
func pageNumbers(indices []int) []int {
	numbers := make([]int, len(indices))
	for i, idx := range indices {
		numbers[i] = idx + 1
	}
	return numbers
}
