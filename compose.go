package tagml

/*
BSD 3-Clause License

Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/

import (
	"strings"
	"unicode/utf8"
)

// Placeholder is a named substitution applied at compose time. Its
// occurrences in run text are spelled marker+Symbol+marker, e.g.
// "$NAME$" with the default marker. Symbols are case-sensitive.
type Placeholder struct {
	Symbol string
	Value  string
}

// Span is a piece of text with one resolved style, the unit of a
// composed display line.
type Span struct {
	Text  string
	Style ResolvedStyle
}

// Line is one display line: an ordered group of styled spans rendered
// together before a forced break.
type Line struct {
	Spans []Span
}

// Text returns the line's text with styling stripped.
func (line Line) Text() string {
	var b strings.Builder
	for _, span := range line.Spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// DefaultMarker delimits placeholder symbols when ComposeOptions.Marker
// is left empty.
const DefaultMarker = "$"

const ellipsis = "..."

// ComposeOptions configures a Compose call.
type ComposeOptions struct {
	// Placeholders are applied to every run in registration order.
	Placeholders []Placeholder

	// Marker delimits placeholder symbols; empty selects DefaultMarker.
	// The marker is matched literally, whatever characters it contains.
	Marker string

	// MaxLength is a budget for the total rendered text length in
	// runes, cumulative across all runs. Zero or negative disables it.
	MaxLength int

	// Defaults styles the synthesized empty line when composition
	// produces no lines at all.
	Defaults Defaults
}

// Compose turns a flattened run sequence into display lines. Per run,
// in run order, it
//
//  1. applies the MaxLength budget: the run that would cross the
//     remaining budget is cut at the allowance, a literal "..." is
//     appended (not charged against the budget), and every following
//     run is dropped;
//  2. replaces every occurrence of marker+symbol+marker for each
//     placeholder, one pass per placeholder in registration order
//     (deliberately after truncation, so a value longer than its
//     symbol can exceed the budget);
//  3. appends the text as a span of the open line, and closes the line
//     when the run ends one.
//
// A run whose text comes out empty contributes no span, and a line
// break only closes the open line when that line has spans. If no lines
// result at all — empty input, or nothing but empty break-runs — the
// result is a single line holding one empty span styled with
// opts.Defaults, so callers always have a line to display.
func Compose(runs []Run, opts ComposeOptions) []Line {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	budget := opts.MaxLength
	limited := opts.MaxLength > 0
	exhausted := false
	var lines []Line
	var open []Span
	for _, run := range runs {
		if exhausted {
			break
		}
		text := run.Text
		if limited {
			if length := utf8.RuneCountInString(text); length > budget {
				text = truncateRunes(text, budget) + ellipsis
				exhausted = true
			} else {
				budget -= length
			}
		}
		for _, ph := range opts.Placeholders {
			text = strings.ReplaceAll(text, marker+ph.Symbol+marker, ph.Value)
		}
		if text != "" {
			open = append(open, Span{Text: text, Style: run.Style})
		}
		if run.EndsLine && len(open) > 0 {
			lines = append(lines, Line{Spans: open})
			open = nil
		}
	}
	if len(open) > 0 {
		lines = append(lines, Line{Spans: open})
	}
	if len(lines) == 0 {
		lines = []Line{{Spans: []Span{{Style: Style{}.Resolve(opts.Defaults)}}}}
	}
	return lines
}

// truncateRunes cuts s after n runes.
func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// Render is the editor-boundary convenience running the full pipeline:
// parse, flatten with the given defaults, compose. The defaults
// parameter overrides opts.Defaults so that one value governs both
// style resolution and the synthesized empty line.
func Render(source string, defaults Defaults, opts ComposeOptions) ([]Line, []Diagnostic) {
	root, diags := Parse(source)
	runs := Flatten(root, defaults)
	opts.Defaults = defaults
	return Compose(runs, opts), diags
}
