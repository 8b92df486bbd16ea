package synth

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/markview/core/dimen"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/input/html"
	"golang.org/x/net/html/atom"
)

// renderableTags are passed through to the view tree. Other elements
// become generic "view" containers.
var renderableTags = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.P: true, atom.Div: true, atom.Span: true, atom.A: true, atom.Img: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Br: true, atom.Hr: true,
	atom.Strong: true, atom.B: true, atom.Em: true, atom.I: true, atom.U: true,
	atom.Code: true, atom.Pre: true, atom.Blockquote: true,
	atom.Table: true, atom.Thead: true, atom.Tbody: true, atom.Tr: true, atom.Th: true, atom.Td: true,
}

// HTML creates a view tree for a forest of HTML nodes. The result is never
// nil. The element tree is traversed without recursion.
func HTML(nodes []html.Node, opts Options) []*viewtree.Node {
	type job struct {
		src *html.Element
		dst *viewtree.Node
	}
	var pending []job
	convert := func(n html.Node) *viewtree.Node {
		switch n := n.(type) {
		case html.Text:
			return viewtree.New("text", "class", "html-text").WithText(n.Content)
		case *html.Element:
			v := opts.element(n)
			pending = append(pending, job{n, v})
			return v
		}
		panic(fmt.Sprintf("synth: unknown html node type %T", n))
	}
	result := make([]*viewtree.Node, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, convert(n))
	}
	count := len(result)
	for len(pending) > 0 {
		j := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, ch := range j.src.Children {
			j.dst.Append(convert(ch))
			count++
		}
	}
	tracer().Debugf("synth: %d html node(s) synthesized", count)
	return result
}

// element creates the view node for e, without children.
func (o Options) element(e *html.Element) *viewtree.Node {
	name := "view"
	if renderableTags[atom.Lookup([]byte(e.Name))] {
		name = e.Name
	}
	v := &viewtree.Node{
		Name:     name,
		Attrs:    make(viewtree.Attrs, len(e.Attrs)+3),
		Children: make([]viewtree.Child, 0, len(e.Children)),
	}
	for k, a := range e.Attrs {
		if a.IsFlag {
			v.Attrs[k] = viewtree.Flag
		} else {
			v.Attrs[k] = viewtree.String(a.Value)
		}
	}
	if c, ok := e.Attrs["class"]; !ok || (!c.IsFlag && c.Value == "") {
		v.SetAttr("class", "html-"+e.Name)
	}
	if style, ok := e.Attr("style"); ok && style != "" {
		v.SetAttr("style", normalizeStyle(style))
	}
	switch e.Name {
	case "a":
		if href, ok := e.Attr("href"); ok {
			delete(v.Attrs, "href")
			v.SetAttr("data-href", o.resolve(href))
			v.SetAttr("data-type", "link")
			v.AddClass("link")
		}
	case "img":
		if _, ok := v.Attrs["mode"]; !ok {
			v.SetAttr("mode", "widthFix")
		}
		if src, ok := e.Attr("src"); ok {
			delete(v.Attrs, "src")
			v.SetAttr("data-src", o.resolve(src))
			v.SetAttr("data-type", "image")
			v.AddClass("image")
		}
	}
	return v
}

// normalizeStyle rewrites an inline style as a sequence of declarations
// "property: value;". Absolute lengths are converted to pixels. Styles which
// cannot be parsed are kept as they are.
func normalizeStyle(style string) string {
	s := strings.TrimSpace(style)
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil || len(decls) == 0 {
		tracer().Debugf("synth: keeping unparsable style %q", style)
		return style
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Property != "" {
			d.Value = canonicalLengths(d.Value)
			parts = append(parts, d.String())
		}
	}
	return strings.Join(parts, " ")
}

// canonicalLengths rewrites every absolute length in a declaration value
// in pixels, e.g. "12pt 1in" as "16px 96px". Unitless numbers, font relative
// lengths and percentages are left alone.
func canonicalLengths(value string) string {
	fields := strings.Fields(value)
	changed := false
	for i, f := range fields {
		unit := strings.TrimLeft(f, "+-0123456789.")
		if unit == f || !dimen.IsAbsolute(unit) {
			continue
		}
		d, _, err := dimen.ParseDimen(f)
		if err != nil {
			tracer().Debugf("synth: keeping length %q: %v", f, err)
			continue
		}
		fields[i], changed = d.String(), true
	}
	if !changed {
		return value
	}
	return strings.Join(fields, " ")
}
