package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/markview/core"
	"github.com/npillmayer/markview/engine/synth"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/input/html"
	"github.com/npillmayer/markview/input/markdown"
	"github.com/npillmayer/schuko"
	"golang.org/x/text/unicode/norm"
)

// DocType is the kind of document a result has been created from.
type DocType string

// Document types
const (
	Markdown DocType = "markdown"
	HTML     DocType = "html"
	JSON     DocType = "json"
	XML      DocType = "xml"
)

// Pipeline converts text documents into view trees. A pipeline is safe
// for concurrent use.
type Pipeline struct {
	mu     sync.RWMutex
	config Config
}

// New creates a pipeline. Options not given take the values of DefaultConfig.
// An invalid theme is replaced by Light.
func New(opts ...Option) *Pipeline {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.validate(); err != nil {
		tracer().Errorf("pipeline: %v, using theme %q", err, Light)
		config.Theme = Light
	}
	return &Pipeline{config: config}
}

// NewFromConfiguration creates a pipeline with defaults read from conf
// (see ConfigFrom), overridden by opts.
func NewFromConfiguration(conf schuko.Configuration, opts ...Option) (*Pipeline, error) {
	config, err := ConfigFrom(conf)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(&config)
	}
	if err = config.validate(); err != nil {
		return nil, err
	}
	return &Pipeline{config: config}, nil
}

// Config returns a copy of the current configuration of p.
func (p *Pipeline) Config() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config
}

// UpdateTheme switches the theme of p. Calls in flight are not affected.
func (p *Pipeline) UpdateTheme(theme string) error {
	c := Config{Theme: theme}
	if err := c.validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	tracer().Infof("pipeline: theme %q -> %q", p.config.Theme, theme)
	p.config.Theme = theme
	return nil
}

// snapshot merges per-call options over the configuration of p.
func (p *Pipeline) snapshot(opts []Option) (Config, error) {
	config := p.Config()
	for _, opt := range opts {
		opt(&config)
	}
	return config, config.validate()
}

// --- Results ----------------------------------------------------------------

// Result is the outcome of converting a document into view nodes.
// Data is never nil; it is empty if Err is set.
type Result struct {
	Type    DocType
	Data    []*viewtree.Node
	Options Config
	Err     error
}

// MarshalJSON encodes a result as
//
//     {"type": …, "data": […], "options": {…}, "error": null | "message"}
//
// encoding/json limits the nesting depth of values it marshals. Results of
// very deeply nested documents are therefore written with WriteJSON.
func (r *Result) MarshalJSON() ([]byte, error) {
	return r.appendJSON(make([]byte, 0, 1024))
}

// WriteJSON writes the JSON form of r to w. Unlike json.Marshal, WriteJSON
// handles view trees of any depth.
func (r *Result) WriteJSON(w io.Writer) error {
	buf, err := r.appendJSON(make([]byte, 0, 1024))
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

func (r *Result) appendJSON(buf []byte) ([]byte, error) {
	head, err := json.Marshal(struct {
		Type DocType `json:"type"`
	}{r.Type})
	if err != nil {
		return nil, err
	}
	buf = append(buf, head[:len(head)-1]...) // without closing brace
	buf = append(buf, `,"data":`...)
	if buf, err = viewtree.AppendJSON(buf, r.Data); err != nil {
		return nil, err
	}
	tail, err := json.Marshal(struct {
		Options Config  `json:"options"`
		Error   *string `json:"error"`
	}{r.Options, errorMessage(r.Err)})
	if err != nil {
		return nil, err
	}
	buf = append(buf, ',')
	return append(buf, tail[1:]...), nil // without opening brace
}

func errorMessage(err error) *string {
	if err == nil {
		return nil
	}
	msg := core.UserMessage(err)
	return &msg
}

func nonNil(nodes []*viewtree.Node) []*viewtree.Node {
	if nodes == nil {
		return []*viewtree.Node{}
	}
	return nodes
}

// ToMarkdown converts a Markdown document into view nodes.
func (p *Pipeline) ToMarkdown(text string, opts ...Option) *Result {
	return p.run(Markdown, text, opts, func(doc string, c Config) []*viewtree.Node {
		blocks := markdown.Parse(doc, markdown.JoinParagraphs(c.JoinParagraphs))
		return synth.Markdown(blocks, synth.Options{BasePath: c.BasePath})
	})
}

// ToHTML converts an HTML fragment into view nodes.
func (p *Pipeline) ToHTML(text string, opts ...Option) *Result {
	return p.run(HTML, text, opts, func(doc string, c Config) []*viewtree.Node {
		policy := html.PopAny
		if c.StrictCloseTags {
			policy = html.PopMatching
		}
		nodes := html.Parse(doc, html.WithCloseTagPolicy(policy))
		return synth.HTML(nodes, synth.Options{BasePath: c.BasePath})
	})
}

type stage func(doc string, config Config) []*viewtree.Node

// run executes a conversion stage. Blank input and panics raised by the
// stage are turned into errors of the result.
func (p *Pipeline) run(t DocType, text string, opts []Option, convert stage) (res *Result) {
	config, err := p.snapshot(opts)
	res = &Result{Type: t, Data: []*viewtree.Node{}, Options: config}
	if err != nil {
		res.Err = err
		return res
	}
	if strings.TrimSpace(text) == "" {
		res.Err = core.Error(core.EEMPTY, "no %s input to convert", t)
		return res
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("pipeline: %s conversion failed: %v", t, r)
			res.Data = []*viewtree.Node{}
			res.Err = core.WrapError(fmt.Errorf("%v", r), core.EINTERNAL, "cannot convert %s input", t)
		}
	}()
	res.Data = nonNil(convert(norm.NFC.String(text), config))
	tracer().Debugf("pipeline: %s input converted to %d top-level node(s)", t, len(res.Data))
	return res
}

// ToViewTree prepares the data of a result for display: the nodes are
// copied and decorated for a preview (see viewtree.Decorate), and top-level
// nodes are tagged with the theme class "theme-<theme>". Results carrying
// an error yield an empty list.
func (p *Pipeline) ToViewTree(res *Result, opts ...Option) []*viewtree.Node {
	if res == nil || res.Err != nil {
		return []*viewtree.Node{}
	}
	config, err := p.snapshot(opts)
	if err != nil {
		tracer().Errorf("pipeline: %v", err)
		return []*viewtree.Node{}
	}
	nodes := viewtree.CloneAll(res.Data)
	viewtree.Decorate(nodes, string(res.Type))
	for _, n := range nodes {
		n.AddClass("theme-" + config.Theme)
	}
	return nodes
}
