package pipeline

import (
	"strings"
	"unicode"

	"github.com/npillmayer/markview/engine/viewtree"
)

// TapSink receives the tap events of a host. Sinks are called synchronously.
type TapSink func(TapEvent)

// TapEvent describes a tap on a tap target.
type TapEvent struct {
	Type    string            `json:"type"` // "link" or "image"
	Href    string            `json:"href,omitempty"`
	Src     string            `json:"src,omitempty"`
	Alt     string            `json:"alt,omitempty"`
	Dataset map[string]string `json:"dataset"` // data-* attributes, keys in camel case
}

// Actionable is true for links to somewhere other than the current
// document's top, and for images with a source.
func (e TapEvent) Actionable() bool {
	switch e.Type {
	case "link":
		return e.Href != "" && e.Href != "#"
	case "image":
		return e.Src != ""
	}
	return false
}

// NewTapEvent creates the tap event for a tap target. If n is not a tap
// target, false is returned.
func NewTapEvent(n *viewtree.Node) (TapEvent, bool) {
	if !viewtree.IsTapTarget(n) {
		return TapEvent{}, false
	}
	event := TapEvent{Dataset: make(map[string]string)}
	for key, v := range n.Attrs {
		if strings.HasPrefix(key, "data-") && !v.Flag {
			event.Dataset[datasetKey(key)] = v.Str
		}
	}
	event.Type = event.Dataset["type"]
	if event.Type == "" {
		if _, ok := n.Attrs["data-src"]; ok {
			event.Type = "image"
		} else {
			event.Type = "link"
		}
	}
	event.Href = event.Dataset["href"]
	event.Src = event.Dataset["src"]
	event.Alt, _ = n.Attr("alt")
	return event, true
}

// datasetKey converts an attribute key "data-foo-bar" to "fooBar".
func datasetKey(key string) string {
	parts := strings.Split(strings.TrimPrefix(key, "data-"), "-")
	var b strings.Builder
	for i, part := range parts {
		if i == 0 || part == "" {
			b.WriteString(part)
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Tap reports a tap on n to the configured tap sink. It returns false if
// n is not a tap target, if there is no sink, if opts are invalid, or if the
// sink panics.
func (p *Pipeline) Tap(n *viewtree.Node, opts ...Option) (ok bool) {
	config, err := p.snapshot(opts)
	if err != nil {
		tracer().Errorf("pipeline: tap not delivered: %v", err)
		return false
	}
	if config.TapSink == nil {
		return false
	}
	event, isTarget := NewTapEvent(n)
	if !isTarget {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("pipeline: tap sink failed: %v", r)
			ok = false
		}
	}()
	tracer().Debugf("pipeline: tap on %s %q", event.Type, event.Href+event.Src)
	config.TapSink(event)
	return true
}
