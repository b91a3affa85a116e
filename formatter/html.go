package formatter

/*
BSD 3-Clause License

Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/uax/uax11"
	"github.com/tagml/tagml"
	"golang.org/x/net/html"
)

// HTML is a backend for simple HTML fragment output. Every display line
// becomes one <p> element of nested style tags; a border maps to a
// <fieldset> wrapper with the caption as its <legend>.
type HTML struct {
	config *Config
}

// NewHTML creates an HTML backend.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs composed display lines as an HTML fragment.
//
// If parameter config is nil, a default configuration will be used.
// Config.Context will also be created based on heuristics from the user
// environment.
func (h *HTML) Print(lines []tagml.Line, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{
			LineWidth: 40,
			Context:   uax11.ContextFromEnvironment(),
		}
	}
	return Output(lines, w, config, h)
}

// Preamble opens the wrapper element: a <fieldset> when a border is
// requested, a plain <div> otherwise.
// (Part of interface Format)
func (h *HTML) Preamble(config *Config, w io.Writer) {
	h.config = config
	if config.Border {
		io.WriteString(w, "<fieldset>\n")
	} else {
		io.WriteString(w, "<div>\n")
	}
}

// Caption outputs the caption as a <legend> inside a border, as a
// caption paragraph otherwise.
// (Part of interface Format)
func (h *HTML) Caption(text string, style tagml.ResolvedStyle, w io.Writer) {
	opening, closing := styleTags(style)
	if h.config.Border {
		io.WriteString(w, "<legend>"+opening+html.EscapeString(text)+closing+"</legend>\n")
	} else {
		io.WriteString(w, "<p class=\"caption\">"+opening+html.EscapeString(text)+closing+"</p>\n")
	}
}

// BeginLine opens a paragraph.
// (Part of interface Format)
func (h *HTML) BeginLine(w io.Writer) {
	io.WriteString(w, "<p>")
}

// StyledSpan outputs a sequence of uniformly styled text wrapped in its
// style tags.
// (Part of interface Format)
func (h *HTML) StyledSpan(s string, style tagml.ResolvedStyle, w io.Writer) {
	opening, closing := styleTags(style)
	io.WriteString(w, opening)
	io.WriteString(w, html.EscapeString(s))
	io.WriteString(w, closing)
}

// EndLine closes the paragraph.
// (Part of interface Format)
func (h *HTML) EndLine(width int, w io.Writer) {
	io.WriteString(w, "</p>\n")
}

// Postamble closes the wrapper element.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	if h.config.Border {
		io.WriteString(w, "</fieldset>\n")
	} else {
		io.WriteString(w, "</div>\n")
	}
}

var _ Format = &HTML{}

// styleTags renders a resolved style as an opening and a closing tag
// sequence. Color and size always go into an innermost <span>, since
// they always carry concrete resolved values.
func styleTags(style tagml.ResolvedStyle) (string, string) {
	var opening, closing strings.Builder
	if style.Bold {
		opening.WriteString("<b>")
	}
	if style.Italic {
		opening.WriteString("<i>")
	}
	if style.Underline {
		opening.WriteString("<u>")
	}
	fmt.Fprintf(&opening, `<span style="color:%s;font-size:%gpx">`, style.Color.Hex(), style.Size)
	closing.WriteString("</span>")
	if style.Underline {
		closing.WriteString("</u>")
	}
	if style.Italic {
		closing.WriteString("</i>")
	}
	if style.Bold {
		closing.WriteString("</b>")
	}
	return opening.String(), closing.String()
}
