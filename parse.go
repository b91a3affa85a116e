package tagml

/*
BSD 3-Clause License

Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses markup source into a document tree. It is total over the
// string domain: it never fails, no matter how malformed the input.
// Markup that cannot be interpreted stays in the text verbatim and is
// reported as an ignorable Diagnostic. Tags nest with a stack
// discipline, last-opened-first-closed; a close tag out of order closes
// back to the nearest matching open scope and implicitly closes every
// scope opened in between.
//
// Parse is pure: equal inputs produce structurally Equal trees. The
// empty string produces a root with no content.
//
// The root node carries a zero Style; all unset attributes resolve
// against Defaults at flatten time.
func Parse(source string) (*Node, []Diagnostic) {
	p := parser{src: source, root: &Node{}}
	p.stack = append(p.stack, scope{node: p.root})
	p.run()
	tracer().Debugf("parsed %d bytes of markup, %d diagnostic(s)", len(source), len(p.diags))
	return p.root, p.diags
}

// scope is one entry of the parser's open-tag stack. The bottom entry
// is the root and has no name.
type scope struct {
	name string // tag name that opened the scope
	node *Node
	pos  int // byte offset of the opening '<'
}

type parser struct {
	src   string
	pos   int
	root  *Node
	stack []scope
	buf   strings.Builder // pending text of the innermost open scope
	diags []Diagnostic
}

func (p *parser) top() *scope {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) run() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '<' && p.scanTag() {
			continue
		}
		// either plain text or a '<' that opens nothing recognizable
		p.buf.WriteByte(c)
		p.pos++
	}
	p.flush(false)
	for i := len(p.stack) - 1; i >= 1; i-- {
		p.diag(IssueUnclosedScope, p.stack[i].pos,
			fmt.Sprintf("<%s> is still open at end of input", p.stack[i].name))
	}
}

// flush moves pending text into the innermost open scope. With brk set
// a text piece is appended even when the pending text is empty, so that
// a lone <br> still carries its line break into the tree.
func (p *parser) flush(brk bool) {
	text := p.buf.String()
	p.buf.Reset()
	if text == "" && !brk {
		return
	}
	p.top().node.AppendText(text, brk)
}

// scanTag attempts to consume one tag at the current position (which
// holds a '<'). It returns false when the bracketed sequence is not a
// recognizable tag; the caller then treats the '<' as literal text.
// Diagnostics for the failure are recorded here.
func (p *parser) scanTag() bool {
	rel := strings.IndexByte(p.src[p.pos:], '>')
	if rel < 0 {
		p.diag(IssueUnterminatedTag, p.pos, "'<' is never closed by '>'")
		return false
	}
	inner := strings.TrimSpace(p.src[p.pos+1 : p.pos+rel])
	end := p.pos + rel + 1
	if inner == "" {
		p.diag(IssueUnknownTag, p.pos, "empty tag")
		return false
	}
	if inner[0] == '/' {
		return p.scanClose(strings.ToLower(strings.TrimSpace(inner[1:])), end)
	}
	if base := strings.TrimSpace(strings.TrimSuffix(strings.ToLower(inner), "/")); base == "br" {
		p.flush(true)
		p.pos = end
		return true
	}
	return p.scanOpen(inner, end)
}

func (p *parser) scanOpen(inner string, end int) bool {
	rawName, value, hasValue := strings.Cut(inner, "=")
	name := strings.ToLower(strings.TrimSpace(rawName))
	sty := p.top().node.Style // child style starts as a copy of the parent's
	switch name {
	case "b", "i", "u":
		if hasValue {
			p.diag(IssueBadAttribute, p.pos, fmt.Sprintf("tag <%s> takes no value", name))
			return false
		}
		switch name {
		case "b":
			sty.Bold = true
		case "i":
			sty.Italic = true
		case "u":
			sty.Underline = true
		}
	case "color":
		if !hasValue {
			p.diag(IssueBadAttribute, p.pos, "tag <color> needs a value")
			return false
		}
		col, ok := ParseColor(value)
		if !ok {
			p.diag(IssueBadAttribute, p.pos, fmt.Sprintf("cannot parse color %q", strings.TrimSpace(value)))
			return false
		}
		sty.Color = &col
	case "size":
		if !hasValue {
			p.diag(IssueBadAttribute, p.pos, "tag <size> needs a value")
			return false
		}
		size, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || size <= 0 {
			p.diag(IssueBadAttribute, p.pos, fmt.Sprintf("cannot parse size %q", strings.TrimSpace(value)))
			return false
		}
		sty.Size = &size
	default:
		p.diag(IssueUnknownTag, p.pos, fmt.Sprintf("unknown tag <%s>", name))
		return false
	}
	p.flush(false)
	child := &Node{Style: sty}
	p.top().node.AppendChild(child)
	p.stack = append(p.stack, scope{name: name, node: child, pos: p.pos})
	p.pos = end
	return true
}

func (p *parser) scanClose(name string, end int) bool {
	switch name {
	case "b", "i", "u", "color", "size":
	default:
		p.diag(IssueUnknownTag, p.pos, fmt.Sprintf("unknown tag </%s>", name))
		return false
	}
	match := -1
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].name == name {
			match = i
			break
		}
	}
	if match < 0 {
		p.diag(IssueDanglingClose, p.pos, fmt.Sprintf("</%s> without open <%s>", name, name))
		return false
	}
	p.flush(false)
	for i := len(p.stack) - 1; i > match; i-- {
		p.diag(IssueUnclosedScope, p.stack[i].pos,
			fmt.Sprintf("<%s> implicitly closed by </%s>", p.stack[i].name, name))
	}
	p.stack = p.stack[:match]
	p.pos = end
	return true
}

func (p *parser) diag(issue Issue, pos int, msg string) {
	p.diags = append(p.diags, Diagnostic{
		Pos:     pos,
		Near:    snippet(p.src, pos),
		Issue:   issue,
		Message: msg,
	})
}

func snippet(src string, pos int) string {
	const width = 16
	end := pos + width
	if end > len(src) {
		end = len(src)
	}
	return src[pos:end]
}
