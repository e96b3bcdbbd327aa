package utils

import (
	"strconv"
	"strings"
)

// ParseLimit parses a result limit from a query parameter.
// Anything that is not a positive base-10 integer yields 0, meaning no limit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
