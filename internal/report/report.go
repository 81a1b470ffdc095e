// Package report renders scan results for terminal consumption.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/mestiri/wrangler/pkg/ports"
)

// Markdown formats scan records as a markdown document: one section per
// scene with its asset table, followed by a per-kind summary.
func Markdown(records []ports.ScanRecord) string {
	var b strings.Builder
	b.WriteString("# Asset scan report\n\n")

	if len(records) == 0 {
		b.WriteString("No snapshots scanned.\n")
		return b.String()
	}

	totals := make(map[string]int)
	for _, rec := range records {
		fmt.Fprintf(&b, "## %s\n\n", rec.Scene)
		if len(rec.Assets) == 0 {
			b.WriteString("No assets classified.\n\n")
			continue
		}
		b.WriteString("| Root | Kind | Geometry | Controls | Joints |\n")
		b.WriteString("| --- | --- | ---: | ---: | ---: |\n")
		for _, a := range rec.Assets {
			root := a.Root
			if len(a.AuxRoots) > 0 {
				root = fmt.Sprintf("%s (+%d)", a.Root, len(a.AuxRoots))
			}
			fmt.Fprintf(&b, "| `%s` | %s | %d | %d | %d |\n",
				root, a.Kind, a.Geometry, a.Controls, a.Joints)
			totals[a.Kind]++
		}
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "%d snapshot(s) scanned.\n\n", len(records))
	for _, kind := range []string{"char", "prop", "envr", "vhcl", "unknown"} {
		if n := totals[kind]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", kind, n)
		}
	}
	return b.String()
}

// Render converts markdown to styled terminal output. When stdout is not a
// terminal (or the terminal has no color support), the markdown is returned
// untouched so it stays pipeable.
func Render(md string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
