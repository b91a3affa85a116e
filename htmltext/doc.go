/*
Package htmltext imports HTML fragments into tagml document trees.

Browsers put HTML on the clipboard; an editor accepting pasted rich
text needs that HTML as a document tree in the editor's own markup.
FromHTML converts the inline formatting of an HTML fragment — b/strong,
i/em, u, br, and legacy font color/size attributes — into a tree, all
other elements contribute only their text. Markup serializes a tree
back to the stable tagml syntax, so imported content round-trips into
the editor's persisted representation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/
package htmltext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
