package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/bocafinder/selector"
	"github.com/katalvlaran/bocafinder/session"
)

// Palette
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Banner prints the tool name and a subtitle.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s\n\n", Brand.Sprint("bocafinder"), Subtle.Sprint("· "+subtitle))
}

// Labels renders vertex IDs as the 1-based labels shown on the canvas.
func Labels(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id + 1)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// ReportLine formats a successful query.
func ReportLine(res selector.Result) string {
	return fmt.Sprintf("Shortest path to node %d: %s, Length: %.2f", res.Target+1, Labels(res.Path), res.Length)
}

// Report prints a successful query, followed by any unreachable targets.
func Report(w io.Writer, res selector.Result) {
	fmt.Fprintln(w, Good.Sprint(ReportLine(res)))
	if len(res.Unreachable) > 0 {
		fmt.Fprintln(w, Subtle.Sprintf("  unreachable: %s", Labels(res.Unreachable)))
	}
}

// Notice prints one of the two failed-query notices.
func Notice(w io.Writer, msg string) {
	fmt.Fprintln(w, Warn.Sprint(msg))
}

// Outcome prints a one-line summary of a session event.
func Outcome(w io.Writer, step int, out session.Outcome) {
	detail := ""
	switch {
	case out.Edge != nil:
		detail = fmt.Sprintf(" %d-%d", out.Edge.U+1, out.Edge.V+1)
	case out.Vertex >= 0:
		detail = fmt.Sprintf(" %d", out.Vertex+1)
	}
	fmt.Fprintf(w, "  %s %s%s\n", Subtle.Sprintf("%3d", step), Info.Sprint(out.Kind), detail)
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
