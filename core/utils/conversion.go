package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts query parameters and loosely typed values to int.
// Anything unparseable yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case []byte:
		return atoi(string(v))
	case string:
		return atoi(v)
	default:
		return atoi(fmt.Sprint(v))
	}
}

func atoi(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

var truthy = map[string]bool{"1": true, "true": true, "yes": true, "on": true}

// ToBool reports whether val is a truthy flag: true, 1, or one of
// "1", "true", "yes", "on" in any case.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return truthy[strings.ToLower(strings.TrimSpace(v))]
	case []byte:
		return ToBool(string(v))
	case nil:
		return false
	default:
		return ToInt(v) == 1
	}
}

// SplitList splits a comma separated value into trimmed, non-empty items.
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ParseScales parses a comma separated list of positive scale factors ("1,2,3").
func ParseScales(s string) ([]int, error) {
	var scales []int
	for _, item := range SplitList(s) {
		scale, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid scale %q: %w", item, err)
		}
		if scale < 1 {
			return nil, fmt.Errorf("invalid scale %d: must be a positive integer", scale)
		}
		scales = append(scales, scale)
	}
	return scales, nil
}
