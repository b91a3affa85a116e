package htmltext

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/tagml/tagml"
)

func TestFromHTMLInlineStyles(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	root, err := FromHTML(strings.NewReader("<b>bold <i>both</i></b>"))
	if err != nil {
		t.Fatal(err)
	}
	runs := tagml.Flatten(root, tagml.StandardDefaults())
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, have %d: %v", len(runs), runs)
	}
	if runs[0].Text != "bold " || !runs[0].Style.Bold || runs[0].Style.Italic {
		t.Errorf("first run wrong: %q %v", runs[0].Text, runs[0].Style)
	}
	if runs[1].Text != "both" || !runs[1].Style.Bold || !runs[1].Style.Italic {
		t.Errorf("second run wrong: %q %v", runs[1].Text, runs[1].Style)
	}
}

func TestFromHTMLFontAndBreak(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	root, err := FromHTML(strings.NewReader(`a<br><font color="#ff0000" size="18">red</font>`))
	if err != nil {
		t.Fatal(err)
	}
	runs := tagml.Flatten(root, tagml.StandardDefaults())
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, have %d: %v", len(runs), runs)
	}
	if runs[0].Text != "a" || !runs[0].EndsLine {
		t.Errorf("expected \"a\" ending its line, have %v", runs[0])
	}
	if runs[1].Style.Color != (tagml.Color{R: 0xff}) || runs[1].Style.Size != 18 {
		t.Errorf("font attributes not picked up: %v", runs[1].Style)
	}
}

func TestFromHTMLUnknownElementsAreTransparent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	root, err := FromHTML(strings.NewReader(`<div><p>plain <code>mono</code></p></div>`))
	if err != nil {
		t.Fatal(err)
	}
	runs := tagml.Flatten(root, tagml.StandardDefaults())
	var text strings.Builder
	for _, run := range runs {
		text.WriteString(run.Text)
		if run.Style.Bold || run.Style.Italic || run.Style.Underline {
			t.Errorf("unknown elements must not style their text: %v", run)
		}
	}
	if text.String() != "plain mono" {
		t.Errorf("expected the plain text content, have %q", text.String())
	}
}

func TestMarkupRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sources := []string{
		"plain",
		"<b>bold <i>both</i></b>",
		"<color=#ff0000>red <size=24>big</size></color>",
		"a<br>b",
		"<u>under</u> after",
	}
	for _, source := range sources {
		tree, diags := tagml.Parse(source)
		if len(diags) != 0 {
			t.Fatalf("unexpected diagnostics for %q: %v", source, diags)
		}
		markup := Markup(tree)
		if markup != source {
			t.Errorf("Markup(%q) = %q", source, markup)
		}
		reparsed, _ := tagml.Parse(markup)
		if !tree.Equal(reparsed) {
			t.Errorf("markup for %q does not re-parse to an equal tree", source)
		}
	}
}

func TestMarkupFromImportedHTML(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	root, err := FromHTML(strings.NewReader("<strong>shout</strong> quiet"))
	if err != nil {
		t.Fatal(err)
	}
	markup := Markup(root)
	if markup != "<b>shout</b> quiet" {
		t.Errorf("expected normalized markup, have %q", markup)
	}
}
