package utils

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrNoLeadingInteger = errors.New("no leading integer")

// ParseLeadingInt reads the base-10 integer at the start of s, after optional
// whitespace and sign, and ignores whatever follows it ("50000abc" is 50000, "1.9" is 1).
func ParseLeadingInt(s string) (int64, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, ErrNoLeadingInteger
	}

	return strconv.ParseInt(s[:end], 10, 64)
}
