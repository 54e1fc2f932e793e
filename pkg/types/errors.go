// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"fmt"
	"strings"
)

// SchemaError is a fatal structural error in the schema document. It
// aborts the run and cites the location that triggered it.
type SchemaError struct {
	// Path is the API path of the offending endpoint
	Path string

	// Method is the HTTP verb, when the error is method-scoped
	Method string

	// Param is the parameter name, when the error is parameter-scoped
	Param string

	// Message describes what is wrong
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema error")
	if e.Path != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Path)
	}
	if e.Method != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Method)
	}
	if e.Param != "" {
		sb.WriteString(" parameter ")
		sb.WriteString(e.Param)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

// Warning is a recoverable condition recorded during a pipeline run:
// undeclared path parameters, unknown format identifiers, unparseable
// dynamic bounds, empty enums, keyword renames. Warnings never abort
// generation.
type Warning struct {
	// Stage names the pipeline stage that raised the warning
	Stage string

	// Path is the API path the warning refers to, if any
	Path string

	// Message describes the condition and the fallback taken
	Message string
}

func (w Warning) String() string {
	if w.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", w.Stage, w.Path, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Stage, w.Message)
}

// Warnings collects recoverable conditions across a run. It is carried
// through the pipeline explicitly and reported after a successful run.
type Warnings struct {
	list []Warning
}

// Add records a warning.
func (w *Warnings) Add(stage, path, format string, args ...any) {
	w.list = append(w.list, Warning{
		Stage:   stage,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// All returns the recorded warnings in insertion order.
func (w *Warnings) All() []Warning {
	return w.list
}

// Len returns the number of recorded warnings.
func (w *Warnings) Len() int {
	return len(w.list)
}
