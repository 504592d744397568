package render

import "golang.org/x/net/html"

// EscapeText escapes text for safe inclusion in HTML content.
// It converts <, >, &, ' and " to their entity equivalents.
func EscapeText(s string) string {
	return html.EscapeString(s)
}
