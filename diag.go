package tagml

import "fmt"

// Issue categorizes a parse diagnostic.
type Issue int

const (
	// IssueUnknownTag flags a bracketed sequence whose tag name is not
	// part of the markup; the sequence stays in the text verbatim.
	IssueUnknownTag Issue = iota

	// IssueUnterminatedTag flags a '<' which is never closed by '>'.
	IssueUnterminatedTag

	// IssueBadAttribute flags a recognized tag with an unparsable
	// value, e.g. <color=loud>; the sequence stays in the text verbatim.
	IssueBadAttribute

	// IssueUnclosedScope flags an open tag without a closing tag. The
	// scope is closed implicitly, either by an enclosing close tag or
	// by the end of input, and its formatting remains applied.
	IssueUnclosedScope

	// IssueDanglingClose flags a close tag with no matching open scope;
	// the sequence stays in the text verbatim.
	IssueDanglingClose
)

func (issue Issue) String() string {
	switch issue {
	case IssueUnknownTag:
		return "unknown tag"
	case IssueUnterminatedTag:
		return "unterminated tag"
	case IssueBadAttribute:
		return "bad attribute"
	case IssueUnclosedScope:
		return "unclosed scope"
	case IssueDanglingClose:
		return "dangling close tag"
	}
	return fmt.Sprintf("Issue(%d)", int(issue))
}

// Diagnostic describes a non-critical problem found during parsing.
// Parsing always succeeds and produces a tree; diagnostics are
// informational only and never block rendering. Clients interested in
// flagging broken markup to the user (e.g. an editor linting the
// source) may inspect them; everyone else can ignore them.
type Diagnostic struct {
	// Pos is the byte offset in the source where the problem was
	// detected, suitable for cursor placement after rune conversion.
	Pos int

	// Near is a short snippet of the source around Pos.
	Near string

	// Issue is the problem category.
	Issue Issue

	// Message is a human-readable description.
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %d near %q: %s", d.Issue, d.Pos, d.Near, d.Message)
}
