package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/markview/core"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/engine/viewtree/xpathadapter"
	"github.com/npillmayer/markview/pipeline"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	pipeline *pipeline.Pipeline
	repl     *readline.Instance
	result   *pipeline.Result
	nodes    []*viewtree.Node // decorated view tree of result
	targets  []*viewtree.Node // tap targets of nodes
}

// load converts doc and keeps the decorated view tree.
func (intp *Intp) load(doc string, t pipeline.DocType) {
	if t == pipeline.HTML {
		intp.result = intp.pipeline.ToHTML(doc)
	} else {
		intp.result = intp.pipeline.ToMarkdown(doc)
	}
	intp.refresh()
}

func (intp *Intp) refresh() {
	intp.nodes = intp.pipeline.ToViewTree(intp.result)
	intp.targets = viewtree.TapTargets(intp.nodes)
	tracer().Infof("loaded %s document: %d node(s), %d tap target(s)",
		intp.result.Type, viewtree.Count(intp.nodes), len(intp.targets))
}

func (intp *Intp) startREPL() (err error) {
	intp.repl, err = readline.New("mv > ")
	return err
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of interactive commands
const (
	HELP int = iota
	QUIT
	SHOW
	JSON
	EXPORT
	SELECT
	XPATH
	TEXT
	TAP
	THEME
	LOAD
)

// Command is an interactive command with its argument.
type Command struct {
	code int
	arg  string
}

func parseCommand(line string) Command {
	word, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	cmd := Command{arg: arg}
	switch strings.ToLower(word) {
	case "quit", "exit":
		cmd.code = QUIT
	case "show", "tree":
		cmd.code = SHOW
	case "json":
		cmd.code = JSON
	case "export", "html":
		cmd.code = EXPORT
	case "select", "css":
		cmd.code = SELECT
	case "xpath", "find":
		cmd.code = XPATH
	case "text":
		cmd.code = TEXT
	case "tap":
		cmd.code = TAP
	case "theme":
		cmd.code = THEME
	case "load":
		cmd.code = LOAD
	default:
		cmd.code = HELP
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case SHOW:
		return false, printTree(intp.nodes)
	case JSON:
		return false, printResult(os.Stdout, intp.result)
	case EXPORT:
		err := viewtree.RenderHTML(os.Stdout, intp.nodes)
		fmt.Println()
		return false, err
	case SELECT:
		nodes, err := viewtree.Select(intp.nodes, cmd.arg)
		if err != nil {
			return false, err
		}
		return false, printTree(nodes)
	case XPATH:
		nodes, err := xpathadapter.Find(intp.nodes, cmd.arg)
		if err != nil {
			return false, err
		}
		return false, printTree(nodes)
	case TEXT:
		pterm.Println(viewtree.InnerText(intp.nodes))
	case TAP:
		return false, intp.tap(cmd.arg)
	case THEME:
		if err := intp.pipeline.UpdateTheme(cmd.arg); err != nil {
			return false, err
		}
		intp.refresh()
	case LOAD:
		return false, intp.loadFile(cmd.arg)
	default:
		help()
	}
	return false, nil
}

// tap simulates a tap on the n-th tap target, printing the event.
func (intp *Intp) tap(arg string) error {
	if arg == "" {
		for i, t := range intp.targets {
			pterm.Printf("%3d  %s\n", i, label(t))
		}
		return nil
	}
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 || i >= len(intp.targets) {
		return core.Error(core.EINVALID, "no tap target %q, use 0…%d", arg, len(intp.targets)-1)
	}
	sink := pipeline.WithTapSink(func(e pipeline.TapEvent) {
		if err := printJSON(os.Stdout, e); err != nil {
			tracer().Errorf(err.Error())
		}
		if !e.Actionable() {
			pterm.Warning.Println("tap target does not lead anywhere")
		}
	})
	if !intp.pipeline.Tap(intp.targets[i], sink) {
		return core.Error(core.EINTERNAL, "tap on target %d not delivered", i)
	}
	return nil
}

func (intp *Intp) loadFile(filename string) error {
	if filename == "" {
		return core.Error(core.EINVALID, "load needs a file name")
	}
	doc, err := readInput(filename)
	if err != nil {
		return err
	}
	t := pipeline.Markdown
	if strings.HasSuffix(filename, ".html") || strings.HasSuffix(filename, ".htm") {
		t = pipeline.HTML
	}
	intp.load(doc, t)
	return intp.result.Err
}

func help() {
	pterm.Info.Println(`Commands:
  show             display the view tree
  json             print the conversion result as JSON
  export           print the view tree as HTML
  select <css>     display nodes matching a CSS selector
  xpath <expr>     display nodes matching an XPath expression
  text             print the text content
  tap [n]          list tap targets or tap target n
  theme <name>     switch to theme light or dark
  load <file>      load a Markdown or HTML file
  quit             leave the session`)
}
