package crew

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var errInvalidMovieID = errors.New("invalid movieId")

// parseMovieID reads a base-10 integer from the start of s. Leading
// whitespace and a sign are accepted and anything after the digits is
// ignored, so "42abc" yields 42. Only a string with no leading digits, or
// one that overflows int64, is rejected.
func parseMovieID(s string) (int64, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, errInvalidMovieID
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, errInvalidMovieID
	}
	return id, nil
}
