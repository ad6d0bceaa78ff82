package diagnostics

import "strings"

// SourceLine returns the text of the given 1-indexed line from source,
// as a borrowed substring (no copy beyond what strings.Split already makes
// for the split itself). Input is treated as UTF-8 but sliced by byte
// boundary; the renderer is responsible for column accounting.
func SourceLine(source string, line int) string {
	lines := splitLines(source)
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// SourceRange returns the contiguous block of lines [start, end] (both
// 1-indexed, inclusive) as a single newline-joined string.
func SourceRange(source string, start, end int) string {
	lines := splitLines(source)
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}

// splitLines splits on '\n' only; a trailing '\r' from CRLF input is
// stripped so callers never see it embedded in an excerpt.
func splitLines(source string) []string {
	parts := strings.Split(source, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
