package pagespec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		spec      string
		pageCount int
		want      []int
	}{
		{"1-3", 5, []int{0, 1, 2}},
		{"1,3,5", 5, []int{0, 2, 4}},
		{"1-3,7,10-12", 15, []int{0, 1, 2, 6, 9, 10, 11}},
		{"1-3,2-4", 5, []int{0, 1, 2, 3}},
		{"5,1,3", 5, []int{0, 2, 4}},
		{"2,2,2", 5, []int{1}},
		{"4-4", 5, []int{3}},
		{" 1 - 2 , 4 ", 5, []int{0, 1, 3}},
		{"\t3\n", 3, []int{2}},
		{"1-5", 5, []int{0, 1, 2, 3, 4}},
	}
	for _, c := range cases {
		got, err := Parse(c.spec, c.pageCount)
		if err != nil {
			t.Errorf("Parse(%q, %d): unexpected error: %v", c.spec, c.pageCount, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Parse(%q, %d): (-want +got):\n%s", c.spec, c.pageCount, d)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		spec  string
		token string
	}{
		{"", ""},
		{"   ", ""},
		{"abc", "abc"},
		{"1,,2", ""},
		{"1,", ""},
		{"-1", "-1"},
		{"1-", "1-"},
		{"1-2-3", "1-2-3"},
		{"+2", "+2"},
		{"1.5", "1.5"},
		{"2 3", "2 3"},
		{"1,x-3", "x-3"},
		{"99999999999999999999999", "99999999999999999999999"},
	}
	for _, c := range cases {
		_, err := Parse(c.spec, 5)
		var malformed *MalformedRangeError
		if !errors.As(err, &malformed) {
			t.Errorf("Parse(%q): got %v, want MalformedRangeError", c.spec, err)
			continue
		}
		if malformed.Token != c.token {
			t.Errorf("Parse(%q): token %q, want %q", c.spec, malformed.Token, c.token)
		}
	}
}

func TestParseInvalidPage(t *testing.T) {
	cases := []struct {
		spec      string
		pageCount int
		page      int
	}{
		{"0", 5, 0},
		{"6", 5, 6},
		{"0-2", 5, 0},
		{"4-6", 5, 6},
		{"1,2,9", 5, 9},
		{"1", 0, 1},
	}
	for _, c := range cases {
		_, err := Parse(c.spec, c.pageCount)
		var invalid *InvalidPageError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%q, %d): got %v, want InvalidPageError", c.spec, c.pageCount, err)
			continue
		}
		if invalid.Page != c.page || invalid.PageCount != c.pageCount {
			t.Errorf("Parse(%q, %d): got page %d of %d", c.spec, c.pageCount, invalid.Page, invalid.PageCount)
		}
	}
}

func TestParseInvalidRange(t *testing.T) {
	for _, spec := range []string{"3-1", "1,5-4", "9-2"} {
		_, err := Parse(spec, 5)
		var invalid *InvalidRangeError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%q): got %v, want InvalidRangeError", spec, err)
			continue
		}
		if invalid.Start <= invalid.End {
			t.Errorf("Parse(%q): start %d, end %d", spec, invalid.Start, invalid.End)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	const spec = "10-12,1-3,7,2"
	first, err := Parse(spec, 15)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(spec, 15)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("repeated parse differs (-first +second):\n%s", d)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"", "malformed page range: empty page specification"},
		{"abc", `malformed page range "abc"`},
		{"6", "page 6 is out of bounds (1-5)"},
		{"3-1", `invalid page range "3-1": start 3 is greater than end 1`},
		{"1,,2", `malformed page range ""`},
	}
	for _, c := range cases {
		_, err := Parse(c.spec, 5)
		if err == nil {
			t.Errorf("Parse(%q): expected error", c.spec)
			continue
		}
		if err.Error() != c.want {
			t.Errorf("Parse(%q): got %q, want %q", c.spec, err.Error(), c.want)
		}
	}
}

func TestMalformedRangeErrorWithoutSpec(t *testing.T) {
	cases := []struct {
		err  *MalformedRangeError
		want string
	}{
		{&MalformedRangeError{Token: "abc"}, `malformed page range "abc"`},
		{&MalformedRangeError{}, "malformed page range: empty page specification"},
		{&MalformedRangeError{Spec: "1,,2"}, `malformed page range ""`},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("%+v: got %q, want %q", *c.err, got, c.want)
		}
	}
}

func TestAll(t *testing.T) {
	if d := cmp.Diff([]int{0, 1, 2}, All(3)); d != "" {
		t.Errorf("All(3) (-want +got):\n%s", d)
	}
	if got := All(0); len(got) != 0 {
		t.Errorf("All(0) = %v", got)
	}
}

func TestSelection(t *testing.T) {
	cases := []struct {
		indices []int
		want    []string
	}{
		{nil, nil},
		{[]int{0}, []string{"1"}},
		{[]int{0, 1, 2, 6, 9, 10, 11}, []string{"1-3", "7", "10-12"}},
		{[]int{1, 3, 5}, []string{"2", "4", "6"}},
		{[]int{4, 5}, []string{"5-6"}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.want, Selection(c.indices)); d != "" {
			t.Errorf("Selection(%v) (-want +got):\n%s", c.indices, d)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	indices, err := Parse("1-3,7,10-12", 15)
	if err != nil {
		t.Fatal(err)
	}
	spec := Format(indices)
	if spec != "1-3,7,10-12" {
		t.Errorf("Format = %q", spec)
	}
	again, err := Parse(spec, 15)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(indices, again); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}
