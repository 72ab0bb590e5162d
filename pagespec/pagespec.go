// Package pagespec turns user page selections such as "1-3,7,10-12" into
// zero-based page indices.
package pagespec

import (
	"errors"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	pagePattern  = regexp.MustCompile(`^\d+$`)
	rangePattern = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)
)

// Parse parses a page specification and returns the selected pages as sorted,
// deduplicated zero-based indices. Pages are 1-based in spec and must lie in
// 1..pageCount.
// Supports formats: "1", "1,3", "1-5", "1,3-5,7"
func Parse(spec string, pageCount int) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, &MalformedRangeError{Spec: spec}
	}

	selected := make(map[int]struct{})
	for _, part := range strings.Split(spec, ",") {
		start, end, err := parseToken(strings.TrimSpace(part), pageCount)
		if err != nil {
			var malformed *MalformedRangeError
			if errors.As(err, &malformed) {
				malformed.Spec = spec
			}
			return nil, err
		}
		for page := start; page <= end; page++ {
			selected[page-1] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(selected)), nil
}

// parseToken resolves a single token to an inclusive 1-based page range.
func parseToken(token string, pageCount int) (int, int, error) {
	switch {
	case pagePattern.MatchString(token):
		page, err := strconv.Atoi(token)
		if err != nil {
			return 0, 0, &MalformedRangeError{Token: token}
		}
		if err := checkPage(page, pageCount); err != nil {
			return 0, 0, err
		}
		return page, page, nil

	case rangePattern.MatchString(token):
		m := rangePattern.FindStringSubmatch(token)
		start, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, &MalformedRangeError{Token: token}
		}
		end, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, 0, &MalformedRangeError{Token: token}
		}
		if start > end {
			return 0, 0, &InvalidRangeError{Token: token, Start: start, End: end}
		}
		if err := checkPage(start, pageCount); err != nil {
			return 0, 0, err
		}
		if err := checkPage(end, pageCount); err != nil {
			return 0, 0, err
		}
		return start, end, nil
	}

	return 0, 0, &MalformedRangeError{Token: token}
}

func checkPage(page, pageCount int) error {
	if page < 1 || page > pageCount {
		return &InvalidPageError{Page: page, PageCount: pageCount}
	}
	return nil
}

// All returns the indices of every page of a pageCount page document.
func All(pageCount int) []int {
	indices := make([]int, 0, max(pageCount, 0))
	for i := 0; i < pageCount; i++ {
		indices = append(indices, i)
	}
	return indices
}

// Selection converts sorted zero-based indices back to 1-based tokens,
// collapsing consecutive runs into ranges: [0 1 2 6] becomes ["1-3" "7"].
func Selection(indices []int) []string {
	var tokens []string
	for i := 0; i < len(indices); {
		j := i
		for j+1 < len(indices) && indices[j+1] == indices[j]+1 {
			j++
		}
		if i == j {
			tokens = append(tokens, strconv.Itoa(indices[i]+1))
		} else {
			tokens = append(tokens, strconv.Itoa(indices[i]+1)+"-"+strconv.Itoa(indices[j]+1))
		}
		i = j + 1
	}
	return tokens
}

// Format is the comma separated form of Selection.
func Format(indices []int) string {
	return strings.Join(Selection(indices), ",")
}
