package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/pipeline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.cli")
	defer teardown()
	//
	assert.Equal(t, Command{code: SELECT, arg: "p > .link"}, parseCommand("select  p > .link"))
	assert.Equal(t, Command{code: XPATH, arg: "//a"}, parseCommand("XPath //a"))
	assert.Equal(t, Command{code: QUIT}, parseCommand("quit"))
	assert.Equal(t, HELP, parseCommand("frobnicate").code)
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.cli")
	defer teardown()
	//
	intp := &Intp{pipeline: pipeline.New()}
	intp.load("# T\n[go](http://e.com)", pipeline.Markdown)
	require.NoError(t, intp.result.Err)
	require.Len(t, intp.targets, 1)
	quit, err := intp.execute(parseCommand("theme dark"))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.True(t, intp.nodes[0].HasClass("theme-dark"))
	_, err = intp.execute(parseCommand("theme sepia"))
	assert.Error(t, err)
	assert.Error(t, intp.tap("7"))
	assert.NoError(t, intp.tap("0"))
	_, err = intp.execute(parseCommand("xpath //*["))
	assert.Error(t, err)
	quit, _ = intp.execute(parseCommand("exit"))
	assert.True(t, quit)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	res := pipeline.New().ToHTML(`<p class="x">hi</p>`)
	require.NoError(t, printJSON(&buf, res))
	assert.Equal(t, "x", gjson.Get(buf.String(), "data.0.attrs.class").String())
	//
	buf.Reset()
	deep := pipeline.New().ToHTML(strings.Repeat("<b>", 20000))
	require.NoError(t, printResult(&buf, deep))
	assert.True(t, gjson.Valid(buf.String()))
	assert.Equal(t, "html", gjson.Get(buf.String(), "type").String())
}

func TestLabel(t *testing.T) {
	n := viewtree.New("a", "class", "html-a link", "data-href", "http://e.com")
	l := label(n)
	assert.Contains(t, l, `data-href="http://e.com"`)
	assert.Contains(t, l, "link")
}
