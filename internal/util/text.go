package util

import (
	"regexp"
	"strings"
)

// \p{Nd} rather than \d so that full-width digits (２０２４年) are accepted.
var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\p{Nd}{4}年\p{Nd}{1,2}月\p{Nd}{1,2}日`),
		regexp.MustCompile(`\p{Nd}{1,2}月\p{Nd}{1,2}日`),
		regexp.MustCompile(`\p{Nd}{4}/\p{Nd}{1,2}/\p{Nd}{1,2}`),
	}
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\p{Nd}{1,3},?\p{Nd}{1,3}円`),
		regexp.MustCompile(`[¥￥]\p{Nd}{1,3},?\p{Nd}{1,3}`),
	}
)

// ExtractDate returns the first date found in text, trying the full
// 年月日 form, then 月日, then slash-separated. Empty when nothing matches.
func ExtractDate(text string) string {
	return firstMatch(datePatterns, text)
}

// ExtractPrice returns the first yen amount found in text exactly as written.
// The 円-suffixed form wins over the ¥-prefixed one.
func ExtractPrice(text string) string {
	return firstMatch(pricePatterns, text)
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// JoinLabel prefixes title with category and a single space when category
// is present.
func JoinLabel(category, title string) string {
	if category == "" {
		return title
	}
	return category + " " + title
}
