package tagml

/*
BSD 3-Clause License

Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/

// Node is one formatting scope of a parsed document: its own style plus
// an ordered sequence of content elements, each either a piece of text
// or a nested child scope. The zero value is a valid empty scope.
//
// A tree is built once (by Parse, or by an importer) and treated as an
// immutable value afterwards; re-parsing produces a fresh tree.
type Node struct {
	Style   Style
	Content []Element
}

// Element is one ordered content element of a Node: either a Text piece
// or a Child scope.
type Element interface {
	isElement()
}

// Text is a piece of text belonging directly to a scope. BreakAfter
// marks a hard line break following the text; the text may then be
// empty, carrying only the break.
type Text struct {
	Text       string
	BreakAfter bool
}

// Child is a nested formatting scope, anchored at its position in the
// parent's content sequence. Node is never nil in trees built by this
// module.
type Child struct {
	Node *Node
}

func (Text) isElement()  {}
func (Child) isElement() {}

// AppendText appends a text piece to the scope's content.
func (n *Node) AppendText(text string, breakAfter bool) {
	n.Content = append(n.Content, Text{Text: text, BreakAfter: breakAfter})
}

// AppendChild appends a nested scope to the scope's content.
func (n *Node) AppendChild(child *Node) {
	assert(child != nil, "node: cannot append nil child")
	n.Content = append(n.Content, Child{Node: child})
}

// Equal compares two trees structurally: same styles, same content
// elements in the same order, recursively.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if !n.Style.Equal(other.Style) {
		return false
	}
	if len(n.Content) != len(other.Content) {
		return false
	}
	for i, el := range n.Content {
		switch el := el.(type) {
		case Text:
			t, ok := other.Content[i].(Text)
			if !ok || el != t {
				return false
			}
		case Child:
			c, ok := other.Content[i].(Child)
			if !ok || !el.Node.Equal(c.Node) {
				return false
			}
		}
	}
	return true
}
