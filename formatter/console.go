package formatter

/*
BSD 3-Clause License

Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"github.com/tagml/tagml"
	"golang.org/x/term"
)

// ConsoleFixedWidth is a backend for outputting formatted text to a
// console with a fixed width font. Resolved styles map to ANSI SGR
// attributes: bold, italic and underline directly, RGB colors to the
// nearest entry of the 16-color terminal palette.
type ConsoleFixedWidth struct {
	colors map[tagml.ResolvedStyle]*color.Color
	config *Config
}

// NewConsoleFixedWidthFormat creates a new console backend.
func NewConsoleFixedWidthFormat() *ConsoleFixedWidth {
	return &ConsoleFixedWidth{
		colors: make(map[tagml.ResolvedStyle]*color.Color),
	}
}

// Print outputs composed display lines to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
// Config.Context will also be created based on heuristics from the user
// environment.
func (fw *ConsoleFixedWidth) Print(lines []tagml.Line, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(lines, os.Stdout, config, fw)
}

// colorFor maps a resolved style to a (cached) ANSI color.
func (fw *ConsoleFixedWidth) colorFor(style tagml.ResolvedStyle) *color.Color {
	if c, ok := fw.colors[style]; ok {
		return c
	}
	c := color.New(nearestAnsi(style.Color))
	if style.Bold {
		c.Add(color.Bold)
	}
	if style.Italic {
		c.Add(color.Italic)
	}
	if style.Underline {
		c.Add(color.Underline)
	}
	fw.colors[style] = c
	return c
}

// ansiPalette holds the 16 standard terminal foreground colors with
// their conventional RGB values.
var ansiPalette = []struct {
	rgb  tagml.Color
	attr color.Attribute
}{
	{tagml.Color{R: 0x00, G: 0x00, B: 0x00}, color.FgBlack},
	{tagml.Color{R: 0x80, G: 0x00, B: 0x00}, color.FgRed},
	{tagml.Color{R: 0x00, G: 0x80, B: 0x00}, color.FgGreen},
	{tagml.Color{R: 0x80, G: 0x80, B: 0x00}, color.FgYellow},
	{tagml.Color{R: 0x00, G: 0x00, B: 0x80}, color.FgBlue},
	{tagml.Color{R: 0x80, G: 0x00, B: 0x80}, color.FgMagenta},
	{tagml.Color{R: 0x00, G: 0x80, B: 0x80}, color.FgCyan},
	{tagml.Color{R: 0xc0, G: 0xc0, B: 0xc0}, color.FgWhite},
	{tagml.Color{R: 0x80, G: 0x80, B: 0x80}, color.FgHiBlack},
	{tagml.Color{R: 0xff, G: 0x00, B: 0x00}, color.FgHiRed},
	{tagml.Color{R: 0x00, G: 0xff, B: 0x00}, color.FgHiGreen},
	{tagml.Color{R: 0xff, G: 0xff, B: 0x00}, color.FgHiYellow},
	{tagml.Color{R: 0x00, G: 0x00, B: 0xff}, color.FgHiBlue},
	{tagml.Color{R: 0xff, G: 0x00, B: 0xff}, color.FgHiMagenta},
	{tagml.Color{R: 0x00, G: 0xff, B: 0xff}, color.FgHiCyan},
	{tagml.Color{R: 0xff, G: 0xff, B: 0xff}, color.FgHiWhite},
}

// nearestAnsi returns the palette attribute closest to an RGB color,
// by squared distance in RGB space.
func nearestAnsi(c tagml.Color) color.Attribute {
	best := ansiPalette[0].attr
	bestDist := 1 << 30
	for _, entry := range ansiPalette {
		dr := int(c.R) - int(entry.rgb.R)
		dg := int(c.G) - int(entry.rgb.G)
		db := int(c.B) - int(entry.rgb.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = entry.attr
		}
	}
	return best
}

// --- Format interface ------------------------------------------------------

// Preamble is called by the output driver before the lines will be
// formatted. With Border set it draws the top border.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(config *Config, w io.Writer) {
	fw.config = config
	if config.Border {
		io.WriteString(w, "┌"+strings.Repeat("─", config.LineWidth)+"┐\n")
	}
}

// Caption outputs the caption line, padded to the line width, followed
// by a separator when a border is drawn.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Caption(text string, style tagml.ResolvedStyle, w io.Writer) {
	if fw.config.Border {
		io.WriteString(w, "│")
	}
	fw.colorFor(style).Fprint(w, text)
	if fw.config.Border {
		fw.pad(displayWidth(text, fw.config.Context), w)
		io.WriteString(w, "│\n├"+strings.Repeat("─", fw.config.LineWidth)+"┤")
	}
	io.WriteString(w, "\n")
}

// BeginLine is called before the spans of a display line are output.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) BeginLine(w io.Writer) {
	if fw.config.Border {
		io.WriteString(w, "│")
	}
}

// StyledSpan is called by the formatting driver to output a sequence of
// uniformly styled text. It uses ANSI attributes to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledSpan(s string, style tagml.ResolvedStyle, w io.Writer) {
	fw.colorFor(style).Fprint(w, s)
}

// EndLine will be called at the end of every formatted line of text.
// width is the total width of the characters already written, measured
// in "en"s, i.e. fixed width positions.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) EndLine(width int, w io.Writer) {
	if fw.config.Border {
		fw.pad(width, w)
		io.WriteString(w, "│")
	}
	io.WriteString(w, "\n")
}

// Postamble will be called after the lines have been formatted. With
// Border set it draws the bottom border.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	if fw.config.Border {
		io.WriteString(w, "└"+strings.Repeat("─", fw.config.LineWidth)+"┘\n")
	}
}

func (fw *ConsoleFixedWidth) pad(written int, w io.Writer) {
	if written < fw.config.LineWidth {
		io.WriteString(w, strings.Repeat(" ", fw.config.LineWidth-written))
	}
}

var _ Format = &ConsoleFixedWidth{}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting
// Config. It checks wether stdout is a terminal, and if so it reads the
// terminal's width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
