package synth

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/markview/core/dimen"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/input/markdown"
)

// listIndent is the padding per level of list item depth.
const listIndent = 20 * dimen.PX

// maxListDepth keeps indentation of deeply nested items within range.
const maxListDepth = 1000

// Markdown creates a view node for every block. The result is never nil.
func Markdown(blocks []markdown.Block, opts Options) []*viewtree.Node {
	nodes := make([]*viewtree.Node, 0, len(blocks))
	for _, b := range blocks {
		nodes = append(nodes, opts.block(b))
	}
	tracer().Debugf("synth: %d markdown block(s) synthesized", len(nodes))
	return nodes
}

func (o Options) block(b markdown.Block) *viewtree.Node {
	switch b := b.(type) {
	case markdown.Heading:
		return o.spans(viewtree.New("view", "class", "md-h"+strconv.Itoa(b.Level)), b.Spans)
	case markdown.Paragraph:
		return o.spans(viewtree.New("view", "class", "md-p"), b.Spans)
	case markdown.Code:
		lang := b.Language
		if lang == "" {
			lang = "code"
		}
		return viewtree.New("view", "class", "md-code-block").Append(
			viewtree.New("view", "class", "md-code-language").WithText(lang),
			viewtree.New("view", "class", "md-code-content").WithText(b.Content),
		)
	case markdown.Blockquote:
		return o.spans(viewtree.New("view", "class", "md-blockquote"), b.Spans)
	case markdown.List:
		return o.list(b)
	case markdown.TableRow:
		tr := viewtree.New("view", "class", "md-tr")
		for _, cell := range b.Cells {
			tr.Append(o.spans(viewtree.New("view", "class", "md-td"), cell))
		}
		return tr
	case markdown.Rule:
		return viewtree.New("view", "class", "md-hr")
	case markdown.Blank:
		return viewtree.New("view", "class", "md-blank")
	}
	panic(fmt.Sprintf("synth: unknown markdown block type %T", b))
}

// list creates an md-ul or md-ol node. Item markers are literal text: "• "
// for unordered lists, the 1-based position and a dot for ordered ones.
func (o Options) list(l markdown.List) *viewtree.Node {
	class := "md-ul"
	if l.Ordered {
		class = "md-ol"
	}
	list := viewtree.New("view", "class", class)
	for i, item := range l.Items {
		marker := "• "
		if l.Ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		indent := dimen.Dimen(min(item.Depth, maxListDepth)) * listIndent
		style := normalizeStyle("padding-left: " + indent.String())
		li := viewtree.New("view", "class", "md-li", "style", style)
		li.Append(viewtree.New("text", "class", "md-li-marker").WithText(marker))
		list.Append(o.spans(li, item.Spans))
	}
	return list
}

// spans appends a view node for every span to parent and returns parent.
func (o Options) spans(parent *viewtree.Node, spans []markdown.Span) *viewtree.Node {
	for _, s := range spans {
		parent.Append(o.span(s))
	}
	return parent
}

func (o Options) span(s markdown.Span) *viewtree.Node {
	switch s := s.(type) {
	case markdown.Text:
		return viewtree.New("text", "class", "md-text").WithText(s.Content)
	case markdown.Strong:
		return viewtree.New("text", "class", "md-strong").WithText(s.Content)
	case markdown.Em:
		return viewtree.New("text", "class", "md-em").WithText(s.Content)
	case markdown.InlineCode:
		return viewtree.New("text", "class", "md-inline-code").WithText(s.Content)
	case markdown.Link:
		return viewtree.New("view",
			"class", "md-link link",
			"data-type", "link",
			"data-href", o.resolve(s.Href),
		).WithText(s.Label)
	case markdown.Image:
		return viewtree.New("image",
			"class", "md-image image",
			"data-type", "image",
			"data-src", o.resolve(s.Src),
			"alt", s.Alt,
			"mode", "widthFix",
		)
	}
	panic(fmt.Sprintf("synth: unknown markdown span type %T", s))
}
