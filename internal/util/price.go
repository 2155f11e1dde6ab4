package util

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// ParseYen converts an extracted price such as "1,540円" or "￥1,628" into
// whole yen. Any Unicode decimal digit counts, matching ExtractPrice. The
// second return is false when no digits are present.
func ParseYen(price string) (int, bool) {
	narrow := width.Narrow.String(price)
	var b strings.Builder
	for _, r := range narrow {
		if v, ok := digitValue(r); ok {
			b.WriteByte(byte('0' + v))
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return v, true
}

// digitValue maps a decimal digit from any script to 0-9. Unicode lays out
// every decimal digit set as a contiguous run of ten starting at zero, so the
// offset from the start of the run gives the value.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10, true
}
