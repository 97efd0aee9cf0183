// Package sanitize normalizes raw translation keys into identifier-safe
// strings and rewrites printf-style placeholders into brace interpolation.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// %1$s, %12$d and friends. The digit group is the 1-based argument index.
	positionalPlaceholder = regexp.MustCompile(`%(\d+)\$[A-Za-z]`)
	// Any remaining %s, %d etc. A bare $ followed by a letter is deliberately
	// left alone; dollar signs show up in ordinary prose far more often than
	// stray printf verbs.
	simplePlaceholder = regexp.MustCompile(`%[A-Za-z]`)
)

// Sanitize turns a raw translation key into a lowercase identifier.
//
// Leading non-letter characters are trimmed, so the result always starts with
// a letter (or is empty). Of the remaining runes, letters are kept
// lower-cased, digits are kept, a space becomes an underscore, an underscore
// stays, and everything else is dropped silently. When maxLength is positive
// and the result is longer, it is hard-truncated to maxLength runes with no
// word-boundary awareness. Sanitize is pure, total and idempotent.
func Sanitize(key string, maxLength int) string {
	runes := []rune(key)

	start := 0
	for start < len(runes) && !unicode.IsLetter(runes[start]) {
		start++
	}

	result := make([]rune, 0, len(runes)-start)
	for _, r := range runes[start:] {
		switch {
		case unicode.IsLetter(r):
			result = append(result, unicode.ToLower(r))
		case unicode.IsDigit(r):
			result = append(result, r)
		case r == ' ', r == '_':
			result = append(result, '_')
		}
	}

	if maxLength > 0 && len(result) > maxLength {
		result = result[:maxLength]
	}

	return string(result)
}

// TranslatePlaceholders rewrites printf-style placeholders in a translation
// value into {N} interpolation syntax: %1$s becomes {0}, %7$d becomes {6},
// and any leftover %s or %d becomes {0}. Values containing neither % nor $
// are returned unchanged. The transform is one-shot, not idempotent.
func TranslatePlaceholders(value string) string {
	if !strings.ContainsAny(value, "%$") {
		return value
	}

	result := positionalPlaceholder.ReplaceAllStringFunc(value, func(match string) string {
		digits := positionalPlaceholder.FindStringSubmatch(match)[1]
		index, err := strconv.Atoi(digits)
		if err != nil {
			return match
		}
		return "{" + strconv.Itoa(index-1) + "}"
	})

	return simplePlaceholder.ReplaceAllString(result, "{0}")
}
