package level

import (
	"fmt"
	"math"
	"strconv"
)

// Field value conversions. Actor fields are stored as strings; these
// are the canonical renderings used by every field descriptor. The
// parse direction is deliberately failure-tolerant: a malformed value
// degrades to a documented sentinel instead of an error, because a
// level file edited by hand must still load. The one exception is
// enum names, which have no usable sentinel (see EnumField).

// FormatBool renders a bool as "TRUE"/"FALSE".
func FormatBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// ParseBool returns true only for the exact string "TRUE". Every
// other value, including "FALSE" and the empty string, is false.
func ParseBool(s string) bool {
	return s == "TRUE"
}

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// ParseInt parses a decimal integer. Malformed text yields
// math.MaxInt32, the sentinel stored levels rely on.
func ParseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt32
	}
	return v
}

// FormatFloat renders a float32 in the shortest form that parses back
// to the same value, always with "." as the decimal separator.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// ParseFloat parses a float32. Malformed text yields NaN.
func ParseFloat(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return float32(math.NaN())
	}
	return float32(v)
}

// EnumName maps an ordinal to its name in an explicit name array.
// Out-of-range ordinals are a programming error and panic.
func EnumName(names []string, ordinal int) string {
	return names[ordinal]
}

// EnumOrdinal maps a name back to its ordinal by exact match. Unlike
// every other conversion there is no sentinel that could stand in for
// "no such name", so an unmatched name is a real error.
func EnumOrdinal(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no enum value named %q", name)
}
