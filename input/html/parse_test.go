package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	nodes := Parse(`<div class="x"><p>Hi</p></div>`)
	require.Len(t, nodes, 1)
	div := nodes[0].(*Element)
	assert.Equal(t, "div", div.Name)
	assert.Equal(t, StringAttr("x"), div.Attrs["class"])
	require.Len(t, div.Children, 1)
	p := div.Children[0].(*Element)
	assert.Equal(t, "p", p.Name)
	assert.Equal(t, []Node{Text{Content: "Hi"}}, p.Children)
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	nodes := Parse(`<INPUT Type='checkbox' checked data-x=1 title="a &amp; b" alt="">`)
	require.Len(t, nodes, 1)
	input := nodes[0].(*Element)
	assert.Equal(t, "input", input.Name)
	assert.Equal(t, map[string]AttrValue{
		"type":    StringAttr("checkbox"),
		"checked": FlagAttr,
		"data-x":  StringAttr("1"),
		"title":   StringAttr("a & b"),
		"alt":     StringAttr(""),
	}, input.Attrs)
	_, hasName := input.Attrs["input"]
	assert.False(t, hasName, "tag name must not be taken as an attribute")
}

func TestParseSelfClosing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	nodes := Parse(`<p>a<br>b<img src=x.png/><span/>c</p>`)
	require.Len(t, nodes, 1)
	p := nodes[0].(*Element)
	require.Len(t, p.Children, 6)
	assert.Equal(t, "br", p.Children[1].(*Element).Name)
	img := p.Children[3].(*Element)
	assert.Equal(t, StringAttr("x.png"), img.Attrs["src"])
	assert.Len(t, p.Children[4].(*Element).Children, 0)
	assert.Equal(t, Text{Content: "c"}, p.Children[5])
}

func TestParseSkipsCommentsAndDoctype(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	nodes := Parse("<!DOCTYPE html>\n<!-- a <b>comment</b> -->\n<p> text &lt;here&gt; </p>")
	require.Len(t, nodes, 1)
	p := nodes[0].(*Element)
	assert.Equal(t, []Node{Text{Content: "text <here>"}}, p.Children)
	//
	nodes = Parse("<p>x</p><!-- never closed <i>y</i>")
	require.Len(t, nodes, 1)
}

func TestParseUnterminatedTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	nodes := Parse("<p>ok</p><div class='x'")
	require.Len(t, nodes, 1)
	assert.Equal(t, "p", nodes[0].(*Element).Name)
	assert.NotNil(t, Parse(""))
	assert.Len(t, Parse("   \n\t"), 0)
}

func TestParseMismatchedCloseLenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	// </div> closes the <span>, leaving <div> open for the following <p>
	nodes := Parse(`<div><span>t</div><p>x</p>`)
	require.Len(t, nodes, 1)
	div := nodes[0].(*Element)
	require.Len(t, div.Children, 2)
	span := div.Children[0].(*Element)
	assert.Equal(t, "span", span.Name)
	assert.Equal(t, []Node{Text{Content: "t"}}, span.Children)
	assert.Equal(t, "p", div.Children[1].(*Element).Name)
}

func TestParseMismatchedCloseStrict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	// </div> is ignored, <span> stays open and receives the <p>
	nodes := Parse(`<div><span>t</div><p>x</p>`, WithCloseTagPolicy(PopMatching))
	require.Len(t, nodes, 1)
	div := nodes[0].(*Element)
	require.Len(t, div.Children, 1)
	span := div.Children[0].(*Element)
	require.Len(t, span.Children, 2)
	assert.Equal(t, "p", span.Children[1].(*Element).Name)
}

func TestParseStrayCloseTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	nodes := Parse(`</p></div>text<b>bold</b></b>`)
	require.Len(t, nodes, 2)
	assert.Equal(t, Text{Content: "text"}, nodes[0])
	assert.Equal(t, "b", nodes[1].(*Element).Name)
}

func TestParseDeepNesting(t *testing.T) {
	doc := strings.Repeat("<div>", 100000) + "deep"
	nodes := Parse(doc)
	require.Len(t, nodes, 1)
	depth := 0
	var n Node = nodes[0]
	for {
		e, ok := n.(*Element)
		if !ok {
			break
		}
		depth++
		n = e.Children[0]
	}
	assert.Equal(t, 100000, depth)
}

func TestParseXMLProlog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.html")
	defer teardown()
	//
	prolog := ParseXMLProlog(`<?xml version="1.0" encoding="UTF-8"?>
<rss:Feed Version="2.0" xmlns:rss='http://e.com/rss'><item/></rss:Feed>`)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, prolog.Declaration)
	require.NotNil(t, prolog.Root)
	assert.Equal(t, "rss:Feed", prolog.Root.Name)
	assert.Equal(t, map[string]AttrValue{
		"Version":   StringAttr("2.0"),
		"xmlns:rss": StringAttr("http://e.com/rss"),
	}, prolog.Root.Attrs)
	//
	prolog = ParseXMLProlog("no markup at all")
	assert.Equal(t, "", prolog.Declaration)
	assert.Nil(t, prolog.Root)
}
