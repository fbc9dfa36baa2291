// Completion: 100% - Diagnostics complete
package main

import "fmt"

// CompilerError is a single, line-tagged compilation failure. Its
// Error() rendering matches the CLI contract: one line of the form
// `Error on line <N> in "<file>": <message>`.
type CompilerError struct {
	File    string
	Line    int
	Message string
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("Error on line %d in %q: %s", e.Line, e.File, e.Message)
}

func newParseError(file string, line int, format string, args ...any) *CompilerError {
	return &CompilerError{File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}

func newCodeGenError(file string, line int, format string, args ...any) *CompilerError {
	return &CompilerError{File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Diagnostics collects the soft resolution warnings described in
// spec.md §7.3 (unknown label referenced by an operand). These never
// become fatal; they are printed only when verbose mode is on.
type Diagnostics struct {
	Warnings []string
}

func (d *Diagnostics) AddWarning(msg string) {
	d.Warnings = append(d.Warnings, msg)
}

func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}
