// Package text holds the deterministic string and number routines used for
// report generation and input parsing. Everything here is a pure function
// over its inputs and safe for concurrent use.
package text

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// SplitList splits s on every occurrence of delim and trims leading and
// trailing whitespace from each segment. Empty segments are preserved, so the
// result always has count(delim)+1 entries. The usual delimiter for input
// lists is ','.
func SplitList(s string, delim rune) []string {
	parts := strings.Split(s, string(delim))
	return lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
}

// BreakIntoLines greedily packs delim-separated tokens into lines of at most
// width characters, breaking only at delimiter boundaries. A single token
// longer than width becomes its own over-length line rather than being split
// mid-token. The usual delimiter for prose is ' '.
func BreakIntoLines(s string, width int, delim rune) []string {
	if s == "" {
		return nil
	}
	tokens := strings.Split(s, string(delim))
	var lines []string
	line := tokens[0]
	for _, tok := range tokens[1:] {
		if len(line)+1+len(tok) <= width {
			line += string(delim) + tok
			continue
		}
		lines = append(lines, line)
		line = tok
	}
	return append(lines, line)
}

// MatchAtStart reports whether name begins with pattern, byte for byte. The
// empty pattern matches everything.
func MatchAtStart(name, pattern string) bool {
	return strings.HasPrefix(name, pattern)
}

// IntegerAt parses a signed run of digits beginning exactly at pos. It
// returns the parsed value and the number of characters consumed. When no
// digit run starts at pos (including pos out of range) it returns
// (-1, 0, false); this is a no-match result, not an error.
func IntegerAt(s string, pos int) (value, length int, ok bool) {
	if pos < 0 || pos >= len(s) {
		return -1, 0, false
	}
	i := pos
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	end := i
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == i {
		return -1, 0, false
	}
	v, err := strconv.Atoi(s[pos:end])
	if err != nil {
		return -1, 0, false
	}
	return v, end - pos, true
}
