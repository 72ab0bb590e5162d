package pdf

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPDF is wrapped by InputError for paths without a .pdf suffix.
	ErrNotPDF = errors.New("not a PDF file")

	// ErrIsDir is wrapped by InputError for paths naming a directory.
	ErrIsDir = errors.New("is a directory")

	// ErrInvalidAngle is returned by Rotate for angles other than 90, 180 and 270.
	ErrInvalidAngle = errors.New("angle must be 90, 180, or 270 degrees")

	// ErrNoInput is returned by Merge when no input files are given.
	ErrNoInput = errors.New("no input files")
)

// InputError reports an input document that is missing, unreadable or not a PDF.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// DocumentError reports an input file that pdfcpu could not read as a PDF.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// WriteError reports an output document that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
