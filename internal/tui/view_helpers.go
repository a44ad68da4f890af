package tui

import "strings"

// renderPage composes the standard page chrome: bold title, body, and a
// faint help line at the bottom.
func renderPage(title, body, help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	if help != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(help))
	}
	return appStyle.Render(b.String())
}
