/*
Command markview converts a Markdown or HTML document into a view tree
and displays it.

	markview [flags] [file]

Without a file argument, the document is read from stdin. Flag -i starts an
interactive session after loading the document, where the view tree may be
queried with CSS selectors and XPath expressions, and taps on links and
images may be simulated.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/markview/core"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/pipeline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// tracer traces with key 'markview.cli'
func tracer() tracing.Trace {
	return tracing.Select("markview.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	adapter := flag.String("log", "go", "Trace adapter [go|logrus]")
	isHTML := flag.Bool("html", false, "Input is HTML instead of Markdown")
	asJSON := flag.Bool("json", false, "Print the result as JSON")
	interactive := flag.Bool("i", false, "Start an interactive session")
	theme := flag.String("theme", pipeline.Light, "Theme [light|dark]")
	base := flag.String("base", "", "Base path for relative links and images")
	strict := flag.Bool("strict", false, "HTML close tags must match their element")
	join := flag.Bool("join", false, "Join adjacent Markdown paragraph lines")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         *adapter,
		"trace.markview.cli":      *tlevel,
		"trace.markview.pipeline": *tlevel,
		"trace.markview.markdown": *tlevel,
		"trace.markview.html":     *tlevel,
		"trace.markview.synth":    *tlevel,
		"trace.markview.viewtree": *tlevel,
		"trace.markview.xpath":    *tlevel,
		"trace.markview.option":   *tlevel,
		//
		pipeline.KeyTheme:          *theme,
		pipeline.KeyBasePath:       *base,
		pipeline.KeyStrict:         *strict,
		pipeline.KeyJoinParagraphs: *join,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	p, err := pipeline.NewFromConfiguration(conf)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	doc, err := readInput(flag.Arg(0))
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	intp := &Intp{pipeline: p}
	if *isHTML {
		intp.load(doc, pipeline.HTML)
	} else {
		intp.load(doc, pipeline.Markdown)
	}
	if intp.result.Err != nil && !*interactive {
		core.UserError(intp.result.Err)
		os.Exit(4)
	}
	if !*interactive {
		if *asJSON {
			err = printResult(os.Stdout, intp.result)
		} else {
			err = printTree(intp.nodes)
		}
		if err != nil {
			core.UserError(err)
			os.Exit(5)
		}
		return
	}
	if err := intp.startREPL(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(6)
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func readInput(filename string) (string, error) {
	var in io.Reader = os.Stdin
	if filename != "" && filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return "", core.WrapError(err, core.EINVALID, "cannot open input file %s", filename)
		}
		defer f.Close()
		in = f
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot read input")
	}
	return string(b), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes a pipeline result as a single line of JSON. View trees
// may be nested too deeply for indenting with encoding/json.
func printResult(w io.Writer, res *pipeline.Result) error {
	if err := res.WriteJSON(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// printTree displays a view tree with a pterm tree printer.
func printTree(nodes []*viewtree.Node) error {
	if len(nodes) == 0 {
		pterm.Info.Println("view tree is empty")
		return nil
	}
	list := pterm.LeveledList{}
	viewtree.Walk(nodes, func(n *viewtree.Node, depth int) bool {
		list = append(list, pterm.LeveledListItem{Level: depth, Text: label(n)})
		for _, c := range n.Children {
			if t, ok := c.(viewtree.Text); ok {
				list = append(list, pterm.LeveledListItem{
					Level: depth + 1,
					Text:  pterm.FgGreen.Sprintf("%q", t.Text),
				})
			}
		}
		return true
	})
	return pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(list)).Render()
}

func label(n *viewtree.Node) string {
	var b strings.Builder
	b.WriteString(pterm.FgCyan.Sprint(n.Name))
	if class := n.Class(); class != "" {
		b.WriteString(pterm.FgYellow.Sprintf(" .%s", strings.ReplaceAll(class, " ", ".")))
	}
	for _, key := range []string{"data-href", "data-src", "style"} {
		if v, ok := n.Attr(key); ok {
			fmt.Fprintf(&b, " %s=%q", key, v)
		}
	}
	return b.String()
}
