package widget

import (
	"html"
	"strings"
)

// renderList builds "<ul><li>a</li>...</ul>". Items are escaped unless raw is set.
func renderList(items []string, raw bool) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		if !raw {
			item = html.EscapeString(item)
		}
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// listText is the text content of a rendered list, as a browser would report it.
func listText(items []string) string {
	return strings.Join(items, "")
}
