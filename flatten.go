package tagml

// Run is one flattened leaf of a document tree: a maximal span of text
// sharing one fully-resolved style, plus a flag for a hard line break
// following it. A run with empty text carries only a break.
type Run struct {
	Text     string
	Style    ResolvedStyle
	EndsLine bool
}

// Flatten walks a document tree depth-first, in insertion order, and
// returns its leaves as a flat sequence of styled runs. Each scope's
// text resolves against the scope's own Style only — the booleans are
// never inherited from an ancestor at this point, because the parser
// already accumulated them into each scope — with unset color and size
// falling back to the given defaults.
//
// An empty tree (and a nil root) flattens to an empty sequence; Compose
// turns that into a single empty display line.
func Flatten(root *Node, defaults Defaults) []Run {
	if root == nil {
		return nil
	}
	var runs []Run
	flattenNode(root, defaults, &runs)
	return runs
}

func flattenNode(n *Node, defaults Defaults, runs *[]Run) {
	resolved := n.Style.Resolve(defaults)
	for _, el := range n.Content {
		switch el := el.(type) {
		case Text:
			if el.Text == "" && !el.BreakAfter {
				continue
			}
			*runs = append(*runs, Run{Text: el.Text, Style: resolved, EndsLine: el.BreakAfter})
		case Child:
			assert(el.Node != nil, "flatten: child element without node")
			flattenNode(el.Node, defaults, runs)
		}
	}
}
