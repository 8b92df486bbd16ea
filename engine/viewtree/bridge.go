package viewtree

import (
	"io"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/markview/core"
	"golang.org/x/net/html"
)

// htmlBridge mirrors a view forest as a tree of golang.org/x/net/html
// nodes, below a document node. It remembers the view node for every
// element it creates.
type htmlBridge struct {
	doc   *html.Node
	views map[*html.Node]*Node
}

// newBridge builds the mirror tree. Attributes for which keep returns false
// are left out.
func newBridge(nodes []*Node, keep func(key string) bool) *htmlBridge {
	b := &htmlBridge{
		doc:   &html.Node{Type: html.DocumentNode},
		views: make(map[*html.Node]*Node),
	}
	type pending struct {
		child  Child
		parent *html.Node
	}
	queue := make([]pending, 0, len(nodes))
	for _, n := range nodes {
		queue = append(queue, pending{n, b.doc})
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		switch c := p.child.(type) {
		case Text:
			p.parent.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
		case *Node:
			if c == nil {
				continue
			}
			h := &html.Node{Type: html.ElementNode, Data: c.Name, Attr: htmlAttrs(c.Attrs, keep)}
			p.parent.AppendChild(h)
			b.views[h] = c
			for _, ch := range c.Children {
				queue = append(queue, pending{ch, h})
			}
		}
	}
	return b
}

func htmlAttrs(attrs Attrs, keep func(string) bool) []html.Attribute {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if keep == nil || keep(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	a := make([]html.Attribute, len(keys))
	for i, k := range keys {
		a[i] = html.Attribute{Key: k, Val: attrs[k].Str}
	}
	return a
}

// match returns the view nodes whose mirrors match sel, in document order.
func (b *htmlBridge) match(sel cascadia.Selector) []*Node {
	matches := sel.MatchAll(b.doc)
	result := make([]*Node, 0, len(matches))
	for _, h := range matches {
		if n, ok := b.views[h]; ok {
			result = append(result, n)
		}
	}
	return result
}

// Select returns all nodes of a forest matching a CSS selector, in
// document order. Matched nodes are shared with the forest, not copied.
func Select(nodes []*Node, selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	result := newBridge(nodes, nil).match(sel)
	tracer().Debugf("viewtree: selector %q matched %d node(s)", selector, len(result))
	return result, nil
}

var tapTargetSelector = cascadia.MustCompile("[data-href],[data-src]")

// TapTargets returns all interactive nodes of a forest, in document order.
func TapTargets(nodes []*Node) []*Node {
	return newBridge(nodes, nil).match(tapTargetSelector)
}

// IsTapTarget is true if n carries a data-href or data-src attribute.
func IsTapTarget(n *Node) bool {
	if n == nil {
		return false
	}
	_, href := n.Attrs["data-href"]
	_, src := n.Attrs["data-src"]
	return href || src
}

// RenderHTML writes a forest as HTML to w. Event bindings (attributes
// data-event and bind…) are not exported. Flags are written with an
// empty value, e.g. disabled="", which HTML treats like a bare attribute.
func RenderHTML(w io.Writer, nodes []*Node) error {
	b := newBridge(nodes, func(key string) bool {
		return !strings.HasPrefix(key, "data-event") && !strings.HasPrefix(key, "bind")
	})
	for c := b.doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot export view tree as HTML")
		}
	}
	return nil
}
