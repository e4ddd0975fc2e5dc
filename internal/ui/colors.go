// Package ui renders normalized package rows and user-facing messages.
//
// Data rows go to stdout so they compose with pipes; messages go to the
// diagnostic stream.
package ui

import "github.com/fatih/color"

var (
	// Styles for message helpers.
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan)

	// Styles for package row fields.
	PackageName    = color.New(color.Bold)
	PackageRepo    = color.New(color.FgMagenta)
	PackageVersion = color.New(color.FgGreen)
	InstalledMark  = color.New(color.FgGreen)
)

// Init applies the color mode resolved at startup process-wide.
func Init(enabled bool) {
	color.NoColor = !enabled
}

// SuccessMsg prints a success message to the diagnostic stream.
func SuccessMsg(format string, args ...any) {
	Success.Fprintf(color.Error, format+"\n", args...)
}

// ErrorMsg prints an error message to the diagnostic stream.
func ErrorMsg(format string, args ...any) {
	Error.Fprintf(color.Error, format+"\n", args...)
}

// WarningMsg prints a warning to the diagnostic stream.
func WarningMsg(format string, args ...any) {
	Warning.Fprintf(color.Error, format+"\n", args...)
}

// InfoMsg prints a progress note to the diagnostic stream.
func InfoMsg(format string, args ...any) {
	Info.Fprintf(color.Error, format+"\n", args...)
}
