// Package dayspec parses the day selection given on the command line.
//
// Three forms are accepted: a single day ("3"), a comma-separated list
// ("1,2,5", spaces allowed around the numbers) and an inclusive range ("1-6").
package dayspec

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hammamikhairi/calcprods/internal/domain"
)

// MaxRange is the widest span a range may cover.
const MaxRange = 1000

// Set is a set of day indices.
type Set map[int]struct{}

// Split converts a day specification into day indices, in the order given.
func Split(spec string) ([]int, error) {
	perr := &domain.ParseError{Input: spec}

	switch {
	case isDigits(spec):
		n, err := strconv.Atoi(spec)
		if err != nil {
			return nil, perr
		}
		return []int{n}, nil

	case strings.Contains(spec, ","):
		parts := strings.Split(spec, ",")
		nums := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := atoi(p)
			if err != nil {
				return nil, perr
			}
			nums = append(nums, n)
		}
		return nums, nil

	case strings.Contains(spec, "-"):
		bounds := strings.Split(spec, "-")
		if len(bounds) != 2 {
			return nil, perr
		}
		from, err := atoi(bounds[0])
		if err != nil {
			return nil, perr
		}
		to, err := atoi(bounds[1])
		if err != nil || to < from || to-from > MaxRange {
			return nil, perr
		}
		nums := make([]int, 0, to-from+1)
		for d := from; d <= to; d++ {
			nums = append(nums, d)
		}
		return nums, nil
	}

	return nil, perr
}

// Parse converts a day specification into a Set.
func Parse(spec string) (Set, error) {
	days, err := Split(spec)
	if err != nil {
		return nil, err
	}
	return NewSet(days...), nil
}

// NewSet builds a set from day indices. Duplicates collapse.
func NewSet(days ...int) Set {
	s := make(Set, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

// Contains reports whether day is selected.
func (s Set) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// Sorted returns the selected days in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// atoi trims surrounding whitespace and requires a non-negative integer.
func atoi(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
