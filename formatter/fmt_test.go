package formatter

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/uax/uax11"
	"github.com/tagml/tagml"
)

func renderLines(t *testing.T, markup string) []tagml.Line {
	t.Helper()
	lines, diags := tagml.Render(markup, tagml.StandardDefaults(), tagml.ComposeOptions{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", markup, diags)
	}
	return lines
}

func TestConsolePlain(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	color.NoColor = true // keep escape sequences out of the comparison
	var buf bytes.Buffer
	config := &Config{LineWidth: 10, Context: uax11.LatinContext}
	err := Output(renderLines(t, "hello<br>world"), &buf, config, NewConsoleFixedWidthFormat())
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\nworld\n" {
		t.Errorf("unexpected console output %q", buf.String())
	}
}

func TestConsoleBorderAndCaption(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	color.NoColor = true
	var buf bytes.Buffer
	config := &Config{
		LineWidth: 10,
		Caption:   "note",
		Border:    true,
		Context:   uax11.LatinContext,
	}
	err := Output(renderLines(t, "hello"), &buf, config, NewConsoleFixedWidthFormat())
	if err != nil {
		t.Fatal(err)
	}
	want := "┌──────────┐\n" +
		"│note      │\n" +
		"├──────────┤\n" +
		"│hello     │\n" +
		"└──────────┘\n"
	if buf.String() != want {
		t.Errorf("unexpected border output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestConsoleNilArguments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if err := Output(nil, nil, nil, nil); err == nil {
		t.Error("expected an error for nil arguments")
	}
}

func TestHTMLOutput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var buf bytes.Buffer
	config := &Config{LineWidth: 40, Context: uax11.LatinContext}
	lines := renderLines(t, "<b>bold</b> & plain")
	if err := Output(lines, &buf, config, NewHTML()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("html = %s", out)
	want := "<div>\n" +
		"<p><b><span style=\"color:#000000;font-size:14px\">bold</span></b>" +
		"<span style=\"color:#000000;font-size:14px\"> &amp; plain</span></p>\n" +
		"</div>\n"
	if out != want {
		t.Errorf("unexpected html output:\n%s\nwant:\n%s", out, want)
	}
}

func TestHTMLBorderCaption(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var buf bytes.Buffer
	config := &Config{
		LineWidth:    40,
		Caption:      "Label",
		CaptionStyle: tagml.Style{Bold: true}.Resolve(tagml.StandardDefaults()),
		Border:       true,
		Context:      uax11.LatinContext,
	}
	if err := Output(renderLines(t, "x"), &buf, config, NewHTML()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("<fieldset>")) ||
		!bytes.Contains(buf.Bytes(), []byte("<legend><b>")) {
		t.Errorf("expected fieldset/legend wrapping, have:\n%s", out)
	}
}
