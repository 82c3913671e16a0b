// Package diagnostic renders span-anchored error reports in the style of
// compiler diagnostics.
//
// A Report holds a one-line summary, the original source text, and zero or
// more labeled spans. Rendering underlines each span within the source and
// prints its annotation next to the underline:
//
//	error: hour field is out of range
//	 --> time:1:1
//	  |
//	1 | 63
//	  | ^^ this is not in the proper range (0..24) for hour
//
// Rendering is deterministic: it replays the spans it was constructed with
// and never re-scans the source.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	errColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	frameColor = color.New(color.FgBlue).SprintFunc()
	caretColor = color.New(color.FgYellow).SprintFunc()
)

// Label annotates a half-open byte range [Start, End) of the report source.
// A zero-width label renders as a single caret at Start.
type Label struct {
	Start   int
	End     int
	Message string
}

// Report is a renderable diagnostic anchored to a single-line source string.
// Labels render in the order they were added.
type Report struct {
	// Message is the one-line summary shown after the "error:" prefix.
	Message string

	// Origin names the source in the location line, e.g. "time".
	Origin string

	// Source is the full original input text.
	Source string

	// Labels underline spans within Source.
	Labels []Label

	// Notes render after the labels as "= note: ..." lines.
	Notes []string
}

// String renders the report. The location column is the first label's start
// (1-based), or 1 when the report has no labels.
func (r *Report) String() string {
	col := 1
	if len(r.Labels) > 0 {
		col = r.Labels[0].Start + 1
	}

	gutter := frameColor("  |")

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", errColor("error"), r.Message)
	fmt.Fprintf(&b, "%s %s:1:%d\n", frameColor(" -->"), r.Origin, col)
	b.WriteString(gutter + "\n")
	fmt.Fprintf(&b, "%s %s\n", frameColor("1 |"), r.Source)

	for _, l := range r.Labels {
		width := l.End - l.Start
		if width < 1 {
			width = 1
		}
		carets := strings.Repeat(" ", l.Start) + caretColor(strings.Repeat("^", width))
		fmt.Fprintf(&b, "%s %s %s\n", gutter, carets, l.Message)
	}

	for _, n := range r.Notes {
		fmt.Fprintf(&b, "%s note: %s\n", frameColor("  ="), n)
	}

	return b.String()
}
