/*
Package tagml implements a small markup language for rich text and the
engines to render it: a parser producing a document tree, a flattener
producing styled text runs, and a line composer producing display lines.

# Markup

The markup is a deliberately small, HTML-like tag syntax. It is the
persisted representation of edited text and is stable:

	<b>…</b>                 bold
	<i>…</i>                 italic
	<u>…</u>                 underline
	<color=VALUE>…</color>   text color; VALUE is #rgb, #rrggbb or a name
	<size=N>…</size>         font size; N is a decimal number
	<br>                     hard line break (also <br/>)

Tag names and color names are case-insensitive. There is no escape
mechanism: any '<' that does not begin a recognized tag is literal text.
Tags nest with a stack discipline; a close tag out of order closes back
to the nearest matching open tag and implicitly closes everything opened
in between.

# Pipeline

Rendering is a synchronous three-stage pipeline of pure functions:

	markup string → Parse → *Node → Flatten → []Run → Compose → []Line

Parse is total: it never fails. Malformed markup degrades to literal
text and is reported as ignorable Diagnostics. Flatten resolves styles
against caller-supplied Defaults. Compose substitutes placeholders,
applies an optional length budget and groups runs into lines; it always
yields at least one line. Render bundles the three stages.

All three stages are free of shared state and may be called concurrently.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/
package tagml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tagml'
func tracer() tracing.Trace {
	return tracing.Select("tagml")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
