package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive integer identifier from a path segment.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
