package sanitizer

import "strings"

// asciiWhitespace is the HTML definition of ASCII whitespace:
// tab, line feed, form feed, carriage return and space.
const asciiWhitespace = "\t\n\f\r "

// StripLineBreaks removes every CR and LF from s.
func StripLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

// Trim removes leading and trailing ASCII whitespace. Unlike
// strings.TrimSpace it leaves non-ASCII spaces such as U+00A0 alone.
func Trim(s string) string {
	return strings.Trim(s, asciiWhitespace)
}

// NormalizeNewlines converts CRLF pairs and lone CRs to LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// CollapseWhitespace trims s and replaces each run of ASCII whitespace
// with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isASCIISpace), " ")
}

// StripLeadingNewline removes a single leading LF (or CRLF), the way HTML
// parsers drop the first newline of a textarea body.
func StripLeadingNewline(s string) string {
	if rest, ok := strings.CutPrefix(s, "\r\n"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(s, "\n"); ok {
		return rest
	}
	return s
}

// SplitCommaList splits s on commas and trims ASCII whitespace from each
// entry. Empty entries are kept so callers can reject them.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = Trim(p)
	}
	return parts
}

// JoinCommaList is the inverse of SplitCommaList for already trimmed entries.
func JoinCommaList(parts []string) string {
	return strings.Join(parts, ",")
}

func isASCIISpace(r rune) bool {
	return strings.ContainsRune(asciiWhitespace, r)
}
