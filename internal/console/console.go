// Package console renders trainer data for the terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const headerWidth = 40

var (
	cyanBold    = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellowBold  = color.New(color.FgYellow, color.Bold).SprintFunc()
	greenBold   = color.New(color.FgGreen, color.Bold).SprintFunc()
	magentaBold = color.New(color.FgMagenta, color.Bold).SprintFunc()
	magenta     = color.New(color.FgMagenta).SprintFunc()
	red         = color.New(color.FgRed).SprintFunc()
	blue        = color.New(color.FgBlue).SprintFunc()
)

// BoxedHeader prints the title in a Unicode box with a fixed width.
func BoxedHeader(w io.Writer, title string) {
	border := strings.Repeat("═", headerWidth)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, headerWidth)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// Metric prints a label and value using bold yellow for the label.
func Metric(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

func Section(w io.Writer, title string) {
	fmt.Fprintln(w, greenBold(title))
}

func Bullet(w io.Writer, name string, format string, args ...any) {
	fmt.Fprintf(w, "  • %s: %s\n", magentaBold(name), fmt.Sprintf(format, args...))
}

// Empty prints a dimmed "nothing here" line.
func Empty(w io.Writer, msg string) {
	fmt.Fprintln(w, magenta("  "+msg))
}

func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, red(msg))
}

func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, greenBold(msg))
}
