// Package markup neutralizes user-supplied free text before it is
// embedded into an HTML-formatted chat notification, and enforces the
// transport length limit on the assembled document.
package markup

import "strings"

// Escape replaces the HTML-significant characters with entity
// equivalents. Ampersand goes first so the entities introduced for
// < and > are not double-escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// SafeJoin escapes every element and joins with the separator. A nil or
// empty slice yields an empty string so callers can fall back to a
// placeholder.
func SafeJoin(items []string, separator string) string {
	if len(items) == 0 {
		return ""
	}
	escaped := make([]string, 0, len(items))
	for _, item := range items {
		escaped = append(escaped, Escape(item))
	}
	return strings.Join(escaped, separator)
}

// StripBold removes the bold tags used by the notification templates.
// Used for the plain-text retry after the webhook rejects HTML parsing.
func StripBold(s string) string {
	s = strings.ReplaceAll(s, "<b>", "")
	s = strings.ReplaceAll(s, "</b>", "")
	return s
}

// Truncate cuts text down so that, with the marker appended, the result
// stays within limit. Counts runes, not bytes: the limit is a character
// limit on the messaging side. Text within the limit passes through
// untouched.
func Truncate(text string, limit int, marker string) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	keep := limit - len([]rune(marker)) - 2 // room for the "\n\n" joint
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "\n\n" + marker
}
