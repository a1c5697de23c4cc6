package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Destinations for command output; tests swap them for buffers
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
)

// frameLine delimits framed output blocks.
const frameLine = "-----"

// framed prints a delimiter line, runs body, and prints another delimiter,
// even when body fails.
func framed(body func() error) error {
	_, _ = fmt.Fprintln(stdout, frameLine)
	defer func() {
		_, _ = fmt.Fprintln(stdout, frameLine)
	}()
	return body()
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Fprintf(stdout, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(stdout, "⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	_, _ = fmt.Fprintln(stdout, msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(label, value string) {
	PrintLabelValueWithColor(label, value, valueColor)
}

// PrintLabelValueWithColor prints a label-value pair with a custom value color
func PrintLabelValueWithColor(label, value string, valueClr *color.Color) {
	_, _ = labelColor.Fprintf(stdout, "  %s: ", label)
	_, _ = valueClr.Fprintln(stdout, value)
}

// PrintList prints a list of items, one "- item" per line
func PrintList(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Fprintf(stdout, "%s- %s\n", indentStr, item)
	}
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(msg string) {
	_, _ = dimColor.Fprintln(stdout, msg)
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
