package formatter

import (
	"errors"
	"io"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/tagml/tagml"
)

// Config represents a set of presentation parameters for formatting.
// These are renderer-level options only; they have no effect on parsing
// or flattening semantics.
type Config struct {
	LineWidth    int                 // target line width in fixed-width positions
	Caption      string              // optional caption text above the content
	CaptionStyle tagml.ResolvedStyle // style for the caption
	Border       bool                // draw a border around the output
	Context      *uax11.Context      // East Asian width context; nil selects uax11.LatinContext
}

// Format is an interface for formatting backends, given an io.Writer.
type Format interface {
	Preamble(*Config, io.Writer)
	Caption(string, tagml.ResolvedStyle, io.Writer)
	BeginLine(io.Writer)
	StyledSpan(string, tagml.ResolvedStyle, io.Writer)
	EndLine(int, io.Writer)
	Postamble(io.Writer)
}

// Output formats composed display lines using a given backend.
//
// Neither out, config nor format may be nil. It is safe to have
// config.Context set to nil; uax11.LatinContext is used then.
func Output(lines []tagml.Line, out io.Writer, config *Config, format Format) error {
	if out == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	format.Preamble(config, out)
	if config.Caption != "" {
		format.Caption(config.Caption, config.CaptionStyle, out)
	}
	for i, line := range lines {
		format.BeginLine(out)
		width := 0
		for _, span := range line.Spans {
			format.StyledSpan(span.Text, span.Style, out)
			width += displayWidth(span.Text, config.Context)
		}
		format.EndLine(width, out)
		T().Infof("[%3d] \"%s\"", i, line.Text())
	}
	format.Postamble(out)
	return nil
}

var graphemeSetup sync.Once

// displayWidth measures a string in fixed-width positions ("en"s),
// resolving East Asian widths per UAX#11.
func displayWidth(s string, context *uax11.Context) int {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}
