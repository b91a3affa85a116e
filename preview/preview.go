/*
Package preview drives a live rendering of markup source.

An editor widget owns the raw markup string and wants every change
reflected in a rendered preview. A Session holds the current source and
rendering configuration, re-runs the parse → flatten → compose pipeline
on every change, and broadcasts the fresh display lines to all
subscribers. The pipeline itself stays pure; the Session is the only
stateful type of this module.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, the tagml authors

Please refer to the License file in the repository root.
*/
package preview

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tagml/tagml"
)

// tracer writes to trace with key 'tagml'
func tracer() tracing.Trace {
	return tracing.Select("tagml")
}

// Session is a live preview of one markup document. It caches the last
// parse by source-string equality, so repeated notifications for an
// unchanged source are cheap no-ops. A Session is safe for concurrent
// use.
type Session struct {
	mu       sync.Mutex
	source   string
	tree     *tagml.Node
	diags    []tagml.Diagnostic
	lines    []tagml.Line
	defaults tagml.Defaults
	opts     tagml.ComposeOptions
	cast     *caster.Caster // broadcasts []tagml.Line on every re-render
}

// NewSession creates a session with empty source, immediately rendered:
// Lines returns the single empty default line until the first
// SetSource.
func NewSession(defaults tagml.Defaults, opts tagml.ComposeOptions) *Session {
	s := &Session{
		defaults: defaults,
		opts:     opts,
		cast:     caster.New(nil),
	}
	s.tree, s.diags = tagml.Parse("")
	s.render()
	return s
}

// render recomputes the display lines from the current tree. Caller
// holds s.mu (or has exclusive access during construction).
func (s *Session) render() {
	runs := tagml.Flatten(s.tree, s.defaults)
	opts := s.opts
	opts.Defaults = s.defaults
	s.lines = tagml.Compose(runs, opts)
}

// SetSource replaces the markup source and re-renders. An unchanged
// source is a no-op: nothing is re-parsed and nothing is published.
func (s *Session) SetSource(source string) {
	s.mu.Lock()
	if source == s.source && s.tree != nil {
		s.mu.Unlock()
		return
	}
	s.source = source
	s.tree, s.diags = tagml.Parse(source)
	s.render()
	lines := s.lines
	s.mu.Unlock()
	tracer().Debugf("preview: source changed, %d line(s)", len(lines))
	s.cast.Pub(lines)
}

// SetOptions replaces defaults and compose options and re-renders the
// current source.
func (s *Session) SetOptions(defaults tagml.Defaults, opts tagml.ComposeOptions) {
	s.mu.Lock()
	s.defaults = defaults
	s.opts = opts
	s.render()
	lines := s.lines
	s.mu.Unlock()
	s.cast.Pub(lines)
}

// Source returns the current markup source.
func (s *Session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Lines returns the most recently rendered display lines.
func (s *Session) Lines() []tagml.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}

// Diagnostics returns the parse diagnostics of the current source.
func (s *Session) Diagnostics() []tagml.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diags
}

// Subscribe returns a channel receiving []tagml.Line on every
// re-render, until ctx is done or the session is closed. The second
// return value is false when the session is already closed.
func (s *Session) Subscribe(ctx context.Context) (chan interface{}, bool) {
	return s.cast.Sub(ctx, 1)
}

// Unsubscribe removes a subscription channel obtained from Subscribe.
func (s *Session) Unsubscribe(ch chan interface{}) {
	s.cast.Unsub(ch)
}

// Close shuts the broadcaster down and closes all subscription
// channels.
func (s *Session) Close() {
	s.cast.Close()
}
