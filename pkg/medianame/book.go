package medianame

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ebook name patterns, tried in order.
var (
	bookSeriesPattern = regexp.MustCompile(`^([^-\[]+?)\s*-\s*\[(.+?)\s+(\d+)\]\s*-\s*(.+)$`)
	bookYearPattern   = regexp.MustCompile(`^([^-]+?)\s*-\s*(.+?)\s*\((\d{4})\)$`)
)

// ParseBook extracts information from an ebook file name.
//
// Recognized shapes, in order:
//
//	Author - [Series 01] - Title.epub
//	Author - Title (2023).epub
//	Author - Title.epub (a heuristic decides which side is the author)
//
// Anything else keeps the whole stem as the title.
func ParseBook(name string) BookInfo {
	info := BookInfo{}
	base := strings.TrimSpace(stem(name))

	if m := bookSeriesPattern.FindStringSubmatch(base); m != nil {
		info.Author = strings.TrimSpace(m[1])
		info.Series = strings.TrimSpace(m[2])
		info.SeriesNumber, _ = strconv.Atoi(m[3])
		info.Title = strings.TrimSpace(m[4])
		return info
	}

	if m := bookYearPattern.FindStringSubmatch(base); m != nil {
		info.Author = strings.TrimSpace(m[1])
		info.Title = strings.TrimSpace(m[2])
		info.Year, _ = strconv.Atoi(m[3])
		return info
	}

	if left, right, ok := strings.Cut(base, "-"); ok {
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if left != "" && right != "" {
			if looksLikeAuthor(left) {
				info.Author = left
				info.Title = right
			} else {
				info.Title = left
				info.Author = right
			}
			return info
		}
	}

	info.Title = base
	return info
}

// looksLikeAuthor reports whether text reads like a person's name:
// two to four words, each starting with an uppercase letter.
func looksLikeAuthor(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
