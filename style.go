package tagml

import (
	"fmt"
	"strings"
)

// --- Color -----------------------------------------------------------------

// Color is a 24-bit RGB text color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color in the form "#rrggbb". ParseColor accepts the
// output of Hex, so colors round-trip through the markup.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// colorNames is the set of color names the markup accepts, a subset of
// the CSS named colors.
var colorNames = map[string]Color{
	"black":   {0x00, 0x00, 0x00},
	"white":   {0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00},
	"green":   {0x00, 0x80, 0x00},
	"blue":    {0x00, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00},
	"magenta": {0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"orange":  {0xff, 0xa5, 0x00},
	"purple":  {0x80, 0x00, 0x80},
}

// ParseColor parses a color specification as it appears in a
// `<color=…>` tag: "#rgb", "#rrggbb", or one of the known color names.
// Matching is case-insensitive. The second return value reports whether
// the specification was understood.
func ParseColor(spec string) (Color, bool) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if c, ok := colorNames[spec]; ok {
		return c, true
	}
	if !strings.HasPrefix(spec, "#") {
		return Color{}, false
	}
	hex := spec[1:]
	switch len(hex) {
	case 3:
		var nibbles [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(hex[i])
			if !ok {
				return Color{}, false
			}
			nibbles[i] = n<<4 | n
		}
		return Color{nibbles[0], nibbles[1], nibbles[2]}, true
	case 6:
		var bytes [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, false
			}
			bytes[i] = hi<<4 | lo
		}
		return Color{bytes[0], bytes[1], bytes[2]}, true
	}
	return Color{}, false
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

// --- Style -----------------------------------------------------------------

// Style is the set of text attributes of one formatting scope. The
// boolean attributes are authoritative for the scope's own text and are
// never inherited at flatten time; the parser accumulates them into
// child scopes when the tree is built. Color and Size are optional: nil
// means unset, to be resolved against document-wide Defaults.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     *Color
	Size      *float64
}

// Resolve fills the unset optionals of a style from document-wide
// defaults and returns the result as concrete values.
func (sty Style) Resolve(defaults Defaults) ResolvedStyle {
	resolved := ResolvedStyle{
		Bold:      sty.Bold,
		Italic:    sty.Italic,
		Underline: sty.Underline,
		Color:     defaults.Color,
		Size:      defaults.Size,
	}
	if sty.Color != nil {
		resolved.Color = *sty.Color
	}
	if sty.Size != nil {
		resolved.Size = *sty.Size
	}
	return resolved
}

// Equal compares two styles by value, dereferencing the optionals.
func (sty Style) Equal(other Style) bool {
	if sty.Bold != other.Bold || sty.Italic != other.Italic || sty.Underline != other.Underline {
		return false
	}
	if (sty.Color == nil) != (other.Color == nil) {
		return false
	}
	if sty.Color != nil && *sty.Color != *other.Color {
		return false
	}
	if (sty.Size == nil) != (other.Size == nil) {
		return false
	}
	if sty.Size != nil && *sty.Size != *other.Size {
		return false
	}
	return true
}

func (sty Style) String() string {
	var b strings.Builder
	if sty.Bold {
		b.WriteString("b")
	}
	if sty.Italic {
		b.WriteString("i")
	}
	if sty.Underline {
		b.WriteString("u")
	}
	if sty.Color != nil {
		fmt.Fprintf(&b, " color=%s", sty.Color.Hex())
	}
	if sty.Size != nil {
		fmt.Fprintf(&b, " size=%g", *sty.Size)
	}
	if b.Len() == 0 {
		return "plain"
	}
	return strings.TrimSpace(b.String())
}

// ResolvedStyle is a Style with all optionals resolved to concrete
// values. It is the style unit attached to flattened runs and composed
// spans. ResolvedStyle is comparable with ==.
type ResolvedStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
	Size      float64
}

func (rs ResolvedStyle) String() string {
	sty := Style{Bold: rs.Bold, Italic: rs.Italic, Underline: rs.Underline, Color: &rs.Color, Size: &rs.Size}
	return sty.String()
}

// --- Defaults --------------------------------------------------------------

// Defaults holds the document-wide default color and font size used to
// resolve scopes which do not set their own. Defaults are an explicit
// parameter of Flatten and Compose, never ambient package state.
type Defaults struct {
	Color Color
	Size  float64
}

// StandardDefaults returns black text at font size 14.
func StandardDefaults() Defaults {
	return Defaults{Color: Color{}, Size: 14}
}
