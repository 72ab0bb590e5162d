package pagespec

import (
	"fmt"
	"strings"
)

// MalformedRangeError is returned when a token is neither a page number nor a
// start-end range, or when the whole specification is empty. Spec holds the
// complete specification the token came from.
type MalformedRangeError struct {
	Token string
	Spec  string
}

func (e *MalformedRangeError) Error() string {
	if e.Token == "" && strings.TrimSpace(e.Spec) == "" {
		return "malformed page range: empty page specification"
	}
	return fmt.Sprintf("malformed page range %q", e.Token)
}

// InvalidPageError is returned for a page number outside 1..PageCount.
type InvalidPageError struct {
	Page      int
	PageCount int
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("page %d is out of bounds (1-%d)", e.Page, e.PageCount)
}

// InvalidRangeError is returned for a range whose start is after its end.
type InvalidRangeError struct {
	Token      string
	Start, End int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid page range %q: start %d is greater than end %d", e.Token, e.Start, e.End)
}
