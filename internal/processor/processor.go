// Package processor searches the target in input text and prepares result lines for output
package processor

import (
	"fmt"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

// Search returns lines of contents containing target, in file order with 1-based numbers.
// No matches is an empty slice, not an error.
func Search(target, contents string, ignoreCase bool) []model.Match {
	result := []model.Match{}
	m := matcher.New(target, ignoreCase)

	lineN := 1
	for line := range strings.Lines(contents) {
		// отрезаем терминатор строки: "\n" или "\r\n"
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}

		if m.Match(line) {
			result = append(result, model.Match{LineNumber: lineN, Line: line})
		}
		lineN++
	}

	return result
}

// FormatLine renders a match as "<n>:<line>" when enumLine is set, otherwise the line itself
func FormatLine(m model.Match, enumLine bool) string {
	if enumLine { //-n
		return fmt.Sprintf("%d:%s", m.LineNumber, m.Line)
	}
	return m.Line
}

// Fingerprint считает общий хеш по выведенным строкам
func Fingerprint(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
