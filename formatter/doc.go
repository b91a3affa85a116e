/*
Package formatter renders composed tagml lines to output backends.

The driver (Output) walks the display lines produced by tagml.Compose
and calls into a Format backend for every styled span. Two backends are
provided: ConsoleFixedWidth for terminals with a fixed width font,
mapping resolved styles to ANSI attributes, and HTML for simple HTML
fragment output.

Backends render the presentation options of Config: an optional caption
line with its own style, and an optional border around the output.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
