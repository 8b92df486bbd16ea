package synth

import (
	"testing"

	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/input/html"
	"github.com/npillmayer/markview/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func child(t *testing.T, n *viewtree.Node, i int) *viewtree.Node {
	t.Helper()
	require.Greater(t, len(n.Children), i)
	c, ok := n.Children[i].(*viewtree.Node)
	require.True(t, ok, "child %d of %s is not a node", i, n.Name)
	return c
}

func TestMarkdownHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	nodes := Markdown(markdown.Parse("# Title"), Options{})
	require.Len(t, nodes, 1)
	h := nodes[0]
	assert.Equal(t, "view", h.Name)
	assert.Equal(t, viewtree.Attrs{"class": viewtree.String("md-h1")}, h.Attrs)
	require.Len(t, h.Children, 1)
	text := child(t, h, 0)
	assert.Equal(t, "md-text", text.Class())
	assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "Title"}}, text.Children)
}

func TestMarkdownList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	nodes := Markdown(markdown.Parse("- a\n- b"), Options{})
	require.Len(t, nodes, 1)
	ul := nodes[0]
	assert.Equal(t, "md-ul", ul.Class())
	require.Len(t, ul.Children, 2)
	for i, label := range []string{"a", "b"} {
		li := child(t, ul, i)
		assert.Equal(t, "md-li", li.Class())
		assert.Equal(t, viewtree.String("padding-left: 0px;"), li.Attrs["style"])
		marker := child(t, li, 0)
		assert.Equal(t, "md-li-marker", marker.Class())
		assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "• "}}, marker.Children)
		assert.Equal(t, label, viewtree.InnerText([]*viewtree.Node{child(t, li, 1)}))
	}
	//
	ol := Markdown(markdown.Parse("1. x\n    2. y"), Options{})[0]
	assert.Equal(t, "md-ol", ol.Class())
	second := child(t, ol, 1)
	assert.Equal(t, viewtree.String("padding-left: 40px;"), second.Attrs["style"])
	assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "2. "}}, child(t, second, 0).Children)
}

func TestMarkdownBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	doc := "```\nx := 1\n```\n> q\na | b\n***\n"
	nodes := Markdown(markdown.Parse(doc), Options{})
	classes := make([]string, len(nodes))
	for i, n := range nodes {
		classes[i] = n.Class()
	}
	assert.Equal(t, []string{"md-code-block", "md-blockquote", "md-tr", "md-hr", "md-blank"}, classes)
	code := nodes[0]
	assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "text"}}, child(t, code, 0).Children)
	assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "x := 1"}}, child(t, code, 1).Children)
	assert.Equal(t, "md-td", child(t, nodes[2], 1).Class())
	assert.NotNil(t, nodes[3].Children)
	assert.Len(t, nodes[3].Children, 0)
	//
	code = Markdown([]markdown.Block{markdown.Code{}}, Options{})[0]
	assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "code"}}, child(t, code, 0).Children)
}

func TestMarkdownTapTargets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	opts := Options{BasePath: "https://cdn.e.com/docs/"}
	nodes := Markdown(markdown.Parse("[a](page.html) [b](http://x.org) ![i](img/p.png) [c](#top)"), opts)
	targets := viewtree.TapTargets(nodes)
	require.Len(t, targets, 4)
	assert.Equal(t, viewtree.String("https://cdn.e.com/docs/page.html"), targets[0].Attrs["data-href"])
	assert.Equal(t, viewtree.String("http://x.org"), targets[1].Attrs["data-href"])
	img := targets[2]
	assert.Equal(t, "image", img.Name)
	assert.True(t, img.HasClass("image"))
	assert.Equal(t, viewtree.String("https://cdn.e.com/docs/img/p.png"), img.Attrs["data-src"])
	assert.Equal(t, viewtree.String("i"), img.Attrs["alt"])
	assert.Equal(t, viewtree.String("widthFix"), img.Attrs["mode"])
	assert.Len(t, img.Children, 0)
	assert.Equal(t, viewtree.String("#top"), targets[3].Attrs["data-href"])
	for _, target := range targets {
		_, href := target.Attrs["href"]
		_, src := target.Attrs["src"]
		assert.False(t, href || src, "tap target must not carry raw references")
	}
}

func TestHTMLMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	nodes := HTML(html.Parse(`<div class="x"><p>Hi</p></div>`), Options{})
	require.Len(t, nodes, 1)
	div := nodes[0]
	assert.Equal(t, "div", div.Name)
	assert.Equal(t, "x", div.Class())
	require.Len(t, div.Children, 1)
	p := child(t, div, 0)
	assert.Equal(t, "p", p.Name)
	assert.Equal(t, "html-p", p.Class())
	text := child(t, p, 0)
	assert.Equal(t, "text", text.Name)
	assert.Equal(t, "html-text", text.Class())
	assert.Equal(t, []viewtree.Child{viewtree.Text{Text: "Hi"}}, text.Children)
	//
	nodes = HTML(html.Parse(`<section><custom-el>x</custom-el></section>`), Options{})
	assert.Equal(t, "view", nodes[0].Name)
	assert.Equal(t, "html-section", nodes[0].Class())
}

func TestHTMLLinksAndImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	nodes := HTML(html.Parse(`<a href="http://e.com">link</a><img src="a.png"><img mode="aspectFit"><input disabled>`),
		Options{BasePath: "/static"})
	require.Len(t, nodes, 4)
	a := nodes[0]
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, viewtree.String("http://e.com"), a.Attrs["data-href"])
	_, hasHref := a.Attrs["href"]
	assert.False(t, hasHref)
	assert.Equal(t, "html-a link", a.Class())
	assert.Equal(t, viewtree.String("link"), a.Attrs["data-type"])
	img := nodes[1]
	assert.Equal(t, viewtree.String("/static/a.png"), img.Attrs["data-src"])
	assert.Equal(t, viewtree.String("widthFix"), img.Attrs["mode"])
	assert.Equal(t, viewtree.String("aspectFit"), nodes[2].Attrs["mode"])
	assert.Equal(t, "view", nodes[3].Name)
	assert.Equal(t, viewtree.Flag, nodes[3].Attrs["disabled"])
}

func TestHTMLStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.synth")
	defer teardown()
	//
	nodes := HTML(html.Parse(`<p style="color:red;font-weight : bold">x</p>`), Options{})
	assert.Equal(t, viewtree.String("color: red; font-weight: bold;"), nodes[0].Attrs["style"])
	//
	nodes = HTML(html.Parse(`<p style="width: 12pt;margin:1.5em 0.50px;line-height:1.5;left:-1in;height:80%">x</p>`), Options{})
	assert.Equal(t, viewtree.String("width: 16px; margin: 1.5em 0.5px; line-height: 1.5; left: -96px; height: 80%;"),
		nodes[0].Attrs["style"])
	assert.Equal(t, "width: 99999999in;", normalizeStyle("width:99999999in"))
}

func TestUnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() {
		Markdown([]markdown.Block{nil}, Options{})
	})
}
