package htmltext

import (
	"io"
	"strconv"
	"strings"

	"github.com/tagml/tagml"
	"golang.org/x/net/html"
)

// FromHTML creates a document tree from the textual content of an HTML
// fragment. The fragment should reflect the content of a paragraph-like
// element; block structure is not interpreted, only inline formatting.
func FromHTML(input io.Reader) (*tagml.Node, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	root := &tagml.Node{}
	for _, n := range nodes {
		collectText(n, root)
	}
	return root, nil
}

// InnerText creates a document tree for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that InnerText cannot respect CSS styling
// (including properties changing the visibility of the node's
// descendents). The organization of the resulting tree reflects the
// hierarchy of the element node's descendents.
func InnerText(n *html.Node) *tagml.Node {
	root := &tagml.Node{}
	if n != nil {
		collectText(n, root)
	}
	return root
}

func collectText(n *html.Node, target *tagml.Node) {
	if n.Type == html.ElementNode {
		T().Debugf("html import: collect text of <%s>", n.Data)
		if n.Data == "br" {
			target.AppendText("", true)
			return
		}
		if child := styledChild(n, target.Style); child != nil {
			target.AppendChild(child)
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				collectText(c, child)
			}
			return
		}
	} else if n.Type == html.TextNode {
		target.AppendText(n.Data, false)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, target)
	}
}

// styledChild returns a new scope for elements carrying inline
// formatting, with the parent's style accumulated in, or nil for
// elements that only contribute their text.
func styledChild(n *html.Node, parent tagml.Style) *tagml.Node {
	sty := parent
	switch n.Data {
	case "b", "strong":
		sty.Bold = true
	case "i", "em":
		sty.Italic = true
	case "u":
		sty.Underline = true
	case "font":
		changed := false
		for _, attr := range n.Attr {
			switch attr.Key {
			case "color":
				if col, ok := tagml.ParseColor(attr.Val); ok {
					sty.Color = &col
					changed = true
				}
			case "size":
				if size, err := strconv.ParseFloat(strings.TrimSpace(attr.Val), 64); err == nil && size > 0 {
					sty.Size = &size
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	default:
		return nil
	}
	return &tagml.Node{Style: sty}
}

// --- Serialization ---------------------------------------------------------

// Markup serializes a document tree back to tagml markup. The output
// re-parses to an Equal tree for trees whose text does not itself
// contain character sequences spelling valid tags; the markup has no
// escape mechanism.
func Markup(root *tagml.Node) string {
	var b strings.Builder
	if root != nil {
		writeContent(root, &b)
	}
	return b.String()
}

func writeContent(n *tagml.Node, b *strings.Builder) {
	for _, el := range n.Content {
		switch el := el.(type) {
		case tagml.Text:
			b.WriteString(el.Text)
			if el.BreakAfter {
				b.WriteString("<br>")
			}
		case tagml.Child:
			opening, closing := tagDiff(n.Style, el.Node.Style)
			b.WriteString(opening)
			writeContent(el.Node, b)
			b.WriteString(closing)
		}
	}
}

// tagDiff renders the attributes a child scope sets on top of its
// parent as an opening and a matching closing tag sequence.
func tagDiff(parent, child tagml.Style) (string, string) {
	var opening strings.Builder
	var closing []string
	if child.Bold && !parent.Bold {
		opening.WriteString("<b>")
		closing = append([]string{"</b>"}, closing...)
	}
	if child.Italic && !parent.Italic {
		opening.WriteString("<i>")
		closing = append([]string{"</i>"}, closing...)
	}
	if child.Underline && !parent.Underline {
		opening.WriteString("<u>")
		closing = append([]string{"</u>"}, closing...)
	}
	if child.Color != nil && (parent.Color == nil || *parent.Color != *child.Color) {
		opening.WriteString("<color=" + child.Color.Hex() + ">")
		closing = append([]string{"</color>"}, closing...)
	}
	if child.Size != nil && (parent.Size == nil || *parent.Size != *child.Size) {
		opening.WriteString("<size=" + strconv.FormatFloat(*child.Size, 'g', -1, 64) + ">")
		closing = append([]string{"</size>"}, closing...)
	}
	return opening.String(), strings.Join(closing, "")
}
