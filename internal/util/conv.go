package util

import (
	"strconv"
)

// MustParseUint converts a path/query parameter to uint, returning 0 when
// the value is not a number.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParsePage extracts page/limit values with defaults and sane bounds.
func ParsePage(pageStr, limitStr string) (int, int) {
	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
