package nlu

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Query is a user utterance in two forms: Raw keeps the original casing for
// slot values, Lower is what keyword rules look at.
type Query struct {
	Raw   string
	Lower string
}

func NewQuery(text string) Query {
	raw := strings.TrimSpace(text)
	return Query{Raw: raw, Lower: strings.ToLower(raw)}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// containsPhrase reports whether phrase occurs in s without being glued to
// surrounding letters or digits. Both arguments are expected lower-cased.
func containsPhrase(s, phrase string) bool {
	if phrase == "" {
		return false
	}
	for from := 0; from <= len(s)-len(phrase); {
		i := strings.Index(s[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)

		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if (start == 0 || !isWordRune(before)) && (end == len(s) || !isWordRune(after)) {
			return true
		}
		from = start + 1
	}
	return false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(s, p) {
			return true
		}
	}
	return false
}

// afterFirst returns the text following the first match of sep.
func afterFirst(s string, sep *regexp.Regexp) (string, bool) {
	loc := sep.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[1]:], true
}

// beforeFirst returns the text preceding the first match of sep.
func beforeFirst(s string, sep *regexp.Regexp) (string, bool) {
	loc := sep.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[:loc[0]], true
}

func trimTrailingPunct(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "?.,!"))
}

// trimTrailingWord removes word from the end of s when it stands on its own.
func trimTrailingWord(s, word string) (string, bool) {
	lower := strings.ToLower(s)
	if lower == word {
		return "", true
	}
	if strings.HasSuffix(lower, " "+word) {
		return strings.TrimSpace(s[:len(s)-len(word)]), true
	}
	return s, false
}

// dropWords removes every whole-word occurrence of the given words.
func dropWords(s string, words []string) string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		bare := strings.ToLower(strings.Trim(f, "?.,!"))
		if !slices.Contains(words, bare) {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}

// dropLeading strips words from the front of s while they belong to words.
func dropLeading(s string, words []string) string {
	fields := strings.Fields(s)
	i := 0
	for i < len(fields) && slices.Contains(words, strings.ToLower(fields[i])) {
		i++
	}
	return strings.Join(fields[i:], " ")
}
