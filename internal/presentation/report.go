// Package presentation renders validation reports for the terminal.
package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/skooma"
	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
)

// Verdict returns a colored PASS/FAIL marker for the terminal.
func Verdict(valid bool) string {
	p := termenv.ColorProfile()
	if valid {
		return termenv.String("PASS").Foreground(p.Color("10")).Bold().String()
	}
	return termenv.String("FAIL").Foreground(p.Color("9")).Bold().String()
}

// WritePlain writes one violation per line, then the verdict.
func WritePlain(w io.Writer, source string, report *skooma.Report) {
	for _, msg := range report.Messages() {
		fmt.Fprintln(w, msg)
	}
	fmt.Fprintf(w, "%s %s (%d violations)\n", Verdict(report.Valid()), source, report.Len())
}

// WriteTable writes the violations as a bordered table.
func WriteTable(w io.Writer, source string, report *skooma.Report) {
	if report.Valid() {
		fmt.Fprintf(w, "%s %s\n", Verdict(true), source)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Violation"})
	for i, msg := range report.Messages() {
		t.AppendRow(table.Row{i + 1, msg})
	}
	t.Render()
	fmt.Fprintf(w, "%s %s (%d violations)\n", Verdict(false), source, report.Len())
}

// Markdown returns the report as a markdown document.
func Markdown(source string, report *skooma.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Validation report: %s\n\n", source)
	if report.Valid() {
		b.WriteString("**Result: PASS** — no violations.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "**Result: FAIL** — %d violations.\n\n", report.Len())
	for _, msg := range report.Messages() {
		fmt.Fprintf(&b, "- %s\n", msg)
	}
	return b.String()
}

// WriteMarkdown renders the markdown report through glamour for the
// terminal, falling back to the raw markdown when rendering fails.
func WriteMarkdown(w io.Writer, source string, report *skooma.Report) {
	md := Markdown(source, report)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
