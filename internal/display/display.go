// Package display provides unified output formatting for the eventato CLI.
// It visually separates eventato's own messages from the coding agent's output.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daydemir/eventato/internal/types"
	"golang.org/x/term"
)

// Display handles all CLI output with visual hierarchy
type Display struct {
	theme     *Theme
	out       io.Writer
	errOut    io.Writer
	termWidth int
	noColor   bool
}

// NewWithOptions creates a Display with configuration.
// Colors are also disabled when stdout is not a terminal.
func NewWithOptions(noColor bool) *Display {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
	return NewWriter(os.Stdout, os.Stderr, noColor)
}

// NewWriter creates a Display writing to the given streams
func NewWriter(out, errOut io.Writer, noColor bool) *Display {
	d := &Display{
		out:       out,
		errOut:    errOut,
		termWidth: getTerminalWidth(),
		noColor:   noColor,
	}
	if noColor {
		d.theme = NoColorTheme()
	} else {
		d.theme = DefaultTheme()
	}
	return d
}

// getTerminalWidth returns the terminal width, defaulting to 80
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	if width > 120 {
		return 120 // Cap at 120 for readability
	}
	return width
}

// Theme returns the current theme for external use
func (d *Display) Theme() *Theme {
	return d.theme
}

// Banner prints the tool header
func (d *Display) Banner() {
	fmt.Fprintln(d.out, d.theme.Label("Eventato"))
	fmt.Fprintln(d.out, d.theme.Dim("Adding PostHog analytics events to your codebase..."))
	fmt.Fprintln(d.out)
}

// Box prints a boxed message with a title
func (d *Display) Box(title string, lines ...string) {
	if len(lines) == 0 {
		return
	}

	width := d.termWidth - 2
	titleLen := len(title) + 4 // "─ TITLE "
	remainingWidth := width - titleLen
	if remainingWidth < 0 {
		remainingWidth = 0
	}

	// Top border: ┌─ TITLE ─────────────────────────┐
	topLine := BoxTopLeft + BoxHorizontal + " " + title + " " + strings.Repeat(BoxHorizontal, remainingWidth) + BoxTopRight
	fmt.Fprintln(d.out, d.theme.Border(topLine))

	for _, line := range lines {
		paddedLine := padRight(line, width-2)
		fmt.Fprintln(d.out, d.theme.Border(BoxVertical)+" "+d.theme.Text(paddedLine)+" "+d.theme.Border(BoxVertical))
	}

	bottomLine := BoxBottomLeft + strings.Repeat(BoxHorizontal, width) + BoxBottomRight
	fmt.Fprintln(d.out, d.theme.Border(bottomLine))
}

// Status prints a single-line status message
func (d *Display) Status(symbol, message string) {
	fmt.Fprintf(d.out, "%s %s\n", symbol, d.theme.Text(message))
}

// Step prints a pending step before slow work
func (d *Display) Step(message string) {
	d.Status(d.theme.Dim(SymbolPending), message)
}

// Success prints a success message with green checkmark
func (d *Display) Success(message string) {
	d.Status(d.theme.Success(SymbolSuccess), message)
}

// Warning prints a warning message with yellow triangle
func (d *Display) Warning(message string) {
	d.Status(d.theme.Warning(SymbolWarning), message)
}

// Detail prints a dim indented line under the previous status
func (d *Display) Detail(message string) {
	fmt.Fprintln(d.out, IndentDetail+d.theme.Dim(message))
}

// Error prints an error to the error stream
func (d *Display) Error(err error) {
	fmt.Fprintf(d.errOut, "%s %v\n", d.theme.Error("Error:"), err)
}

// Setup prints the detected PostHog setup
func (d *Display) Setup(setup *types.SetupDescriptor) {
	d.Success(fmt.Sprintf("Found PostHog setup: %s", setup.Flavor))
	d.Detail("Import: " + setup.ImportStatement)
	d.Detail("Usage: " + setup.UsagePattern)
	if len(setup.SourceFiles) > 0 {
		d.Detail("Source: " + strings.Join(setup.SourceFiles, ", "))
	}
	fmt.Fprintln(d.out)
}

// Summary prints the collected request before any changes are made
func (d *Display) Summary(req types.EventRequest, dir string) {
	context := req.Context
	if context == "" {
		context = "None"
	}
	fmt.Fprintln(d.out)
	d.Box("SUMMARY",
		"Feature:   "+req.FeatureName,
		"Events:    "+strings.Join(req.EventNames, ", "),
		"Context:   "+Truncate(context, d.termWidth-17),
		"Directory: "+dir,
	)
	fmt.Fprintln(d.out)
}

// Preview prints example snippets and the dry-run notice
func (d *Display) Preview(snippets map[string]string, order []string) {
	for _, event := range order {
		fmt.Fprintln(d.out, d.theme.Info(event))
		for _, line := range strings.Split(snippets[event], "\n") {
			fmt.Fprintln(d.out, IndentDetail+d.theme.Dim(line))
		}
		fmt.Fprintln(d.out)
	}
	d.Status(d.theme.Warning(SymbolPreview), "Dry run mode - no changes will be made")
}

// Files prints the candidate file list
func (d *Display) Files(files []string) {
	d.Success(fmt.Sprintf("Found %d relevant files", len(files)))
	for _, f := range files {
		d.Detail(f)
	}
}

// AgentStart prints a separator before the agent takes over the terminal
func (d *Display) AgentStart(name string) {
	fmt.Fprintln(d.out)
	d.Step(fmt.Sprintf("Applying changes with %s...", name))
	d.SectionBreak()
}

// Done prints the final success message
func (d *Display) Done() {
	d.SectionBreak()
	d.Success("Changes applied successfully!")
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.theme.Success(d.theme.Bold("Success!")))
	d.Detail("PostHog events have been added to your codebase.")
	d.Detail("Review the changes and commit them to your repository.")
}

// SectionBreak prints a horizontal separator
func (d *Display) SectionBreak() {
	fmt.Fprintln(d.out, d.theme.Separator(strings.Repeat(SectionBreak, d.termWidth)))
}

// padRight pads a string to the specified display width
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Truncate truncates text to max runes with ellipsis
func Truncate(s string, max int) string {
	s = CleanText(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// CleanText removes newlines and collapses spaces
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
