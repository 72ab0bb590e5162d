// Package pdftest builds small PDF documents for tests and inspects the
// documents the operations produce.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Build returns a PDF with one page per width. Every page is 792pt high and as
// wide as given, so pages can be told apart after they have been moved around.
func Build(widths ...int) []byte {
	var buf bytes.Buffer
	var offsets []int

	object := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	kids := make([]string, len(widths))
	for i := range widths {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	object("<< /Type /Catalog /Pages 2 0 R >>")
	object(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(widths)))
	for _, w := range widths {
		object(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d 792] /Resources << >> >>", w))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Widths returns the page widths 100, 110, 120, ... for an n page document.
func Widths(n int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = 100 + 10*i
	}
	return widths
}

// WriteFile writes an n page document built from Widths(n) into dir.
func WriteFile(t testing.TB, dir, name string, n int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(Widths(n)...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func configuration() *model.Configuration {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageWidths reads the document at path and returns the width of every page.
func PageWidths(t testing.TB, path string) []int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dims, err := api.PageDims(f, configuration())
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	widths := make([]int, len(dims))
	for i, d := range dims {
		widths[i] = int(d.Width + 0.5)
	}
	return widths
}

// Rotations reads the document at path and returns the /Rotate value of every
// page, 0 where the entry is missing.
func Rotations(t testing.TB, path string) []int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, configuration())
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	rotations := make([]int, ctx.PageCount)
	for i := range rotations {
		d, _, _, err := ctx.PageDict(i+1, false)
		if err != nil {
			t.Fatalf("%s: page %d: %v", path, i+1, err)
		}
		if r := d.IntEntry("Rotate"); r != nil {
			rotations[i] = *r
		}
	}
	return rotations
}
