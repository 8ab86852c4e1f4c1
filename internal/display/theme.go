package display

import (
	"fmt"

	"github.com/fatih/color"
)

// Box drawing characters
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
	SectionBreak   = "━"
)

// Status symbols
const (
	SymbolSuccess  = "✓"
	SymbolError    = "✗"
	SymbolWarning  = "⚠"
	SymbolPending  = "○"
	SymbolQuestion = "?"
	SymbolPreview  = "◐"
)

// IndentDetail is the indentation for secondary lines under a status
const IndentDetail = "   "

// Theme holds all color functions for consistent styling
type Theme struct {
	// Tool branding (prominent)
	Border func(a ...interface{}) string
	Label  func(a ...interface{}) string
	Text   func(a ...interface{}) string

	// Status indicators
	Success  func(a ...interface{}) string
	Error    func(a ...interface{}) string
	Warning  func(a ...interface{}) string
	Info     func(a ...interface{}) string
	Question func(a ...interface{}) string

	// Structural elements
	Bold      func(a ...interface{}) string
	Dim       func(a ...interface{}) string
	Separator func(a ...interface{}) string
}

// DefaultTheme creates the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Border: color.New(color.FgBlue).SprintFunc(),
		Label:  color.New(color.FgBlue, color.Bold).SprintFunc(),
		Text:   color.New(color.FgWhite).SprintFunc(),

		Success:  color.New(color.FgGreen).SprintFunc(),
		Error:    color.New(color.FgRed, color.Bold).SprintFunc(),
		Warning:  color.New(color.FgYellow).SprintFunc(),
		Info:     color.New(color.FgCyan).SprintFunc(),
		Question: color.New(color.FgGreen, color.Bold).SprintFunc(),

		Bold:      color.New(color.Bold).SprintFunc(),
		Dim:       color.New(color.FgHiBlack).SprintFunc(),
		Separator: color.New(color.FgBlue).SprintFunc(),
	}
}

// NoColorTheme creates a theme without colors (for --no-color flag or non-TTY)
func NoColorTheme() *Theme {
	identity := func(a ...interface{}) string {
		return fmt.Sprint(a...)
	}
	return &Theme{
		Border:    identity,
		Label:     identity,
		Text:      identity,
		Success:   identity,
		Error:     identity,
		Warning:   identity,
		Info:      identity,
		Question:  identity,
		Bold:      identity,
		Dim:       identity,
		Separator: identity,
	}
}
