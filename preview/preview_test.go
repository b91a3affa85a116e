package preview

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tagml/tagml"
)

func TestSessionInitialLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagml")
	defer teardown()
	//
	s := NewSession(tagml.StandardDefaults(), tagml.ComposeOptions{})
	defer s.Close()
	lines := s.Lines()
	if len(lines) != 1 || lines[0].Text() != "" {
		t.Errorf("expected the single empty default line, have %v", lines)
	}
}

func TestSessionSetSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagml")
	defer teardown()
	//
	s := NewSession(tagml.StandardDefaults(), tagml.ComposeOptions{
		Placeholders: []tagml.Placeholder{{Symbol: "NAME", Value: "World"}},
	})
	defer s.Close()
	s.SetSource("<b>Hello $NAME$!</b>")
	lines := s.Lines()
	if len(lines) != 1 || lines[0].Text() != "Hello World!" {
		t.Fatalf("expected rendered greeting, have %v", lines)
	}
	if !lines[0].Spans[0].Style.Bold {
		t.Errorf("expected bold span, have %v", lines[0].Spans[0].Style)
	}
}

func TestSessionBroadcast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagml")
	defer teardown()
	//
	s := NewSession(tagml.StandardDefaults(), tagml.ComposeOptions{})
	defer s.Close()
	ch, ok := s.Subscribe(nil)
	if !ok {
		t.Fatal("subscription on a live session failed")
	}
	defer s.Unsubscribe(ch)
	s.SetSource("one<br>two")
	select {
	case msg := <-ch:
		lines, ok := msg.([]tagml.Line)
		if !ok {
			t.Fatalf("expected []tagml.Line, have %T", msg)
		}
		if len(lines) != 2 || lines[0].Text() != "one" || lines[1].Text() != "two" {
			t.Errorf("unexpected broadcast payload %v", lines)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast received after SetSource")
	}
}

func TestSessionUnchangedSourceIsNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagml")
	defer teardown()
	//
	s := NewSession(tagml.StandardDefaults(), tagml.ComposeOptions{})
	defer s.Close()
	s.SetSource("stable")
	ch, _ := s.Subscribe(nil)
	defer s.Unsubscribe(ch)
	s.SetSource("stable") // same source, nothing may be published
	select {
	case msg := <-ch:
		t.Errorf("unexpected broadcast for unchanged source: %v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSessionDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagml")
	defer teardown()
	//
	s := NewSession(tagml.StandardDefaults(), tagml.ComposeOptions{})
	defer s.Close()
	s.SetSource("mid-edit <b")
	diags := s.Diagnostics()
	if len(diags) != 1 || diags[0].Issue != tagml.IssueUnterminatedTag {
		t.Errorf("expected the parser's diagnostics to surface, have %v", diags)
	}
	if lines := s.Lines(); lines[0].Text() != "mid-edit <b" {
		t.Errorf("broken markup must still render, have %q", lines[0].Text())
	}
}

func TestSessionSetOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagml")
	defer teardown()
	//
	s := NewSession(tagml.StandardDefaults(), tagml.ComposeOptions{})
	defer s.Close()
	s.SetSource("0123456789")
	s.SetOptions(tagml.StandardDefaults(), tagml.ComposeOptions{MaxLength: 5})
	if lines := s.Lines(); lines[0].Text() != "01234..." {
		t.Errorf("expected re-render with new options, have %q", lines[0].Text())
	}
}
