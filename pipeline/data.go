package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/npillmayer/markview/core"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/markview/input/html"
	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

// DataResult is the outcome of reading a data document (JSON or XML).
type DataResult struct {
	Type    DocType
	Value   interface{}
	Options Config
	Err     error
}

// XMLSummary is the value of a DataResult for XML documents.
type XMLSummary struct {
	Declaration *string  `json:"declaration"`
	Root        *XMLRoot `json:"root"`
}

// XMLRoot is the root element of an XML document.
type XMLRoot struct {
	Tag        string         `json:"tag"`
	Attributes viewtree.Attrs `json:"attributes"`
}

// ToJSON decodes a JSON document into Go values (maps, slices, strings,
// float64, bool and nil).
func (p *Pipeline) ToJSON(text string, opts ...Option) *DataResult {
	res, doc := p.data(JSON, text, opts)
	if res.Err != nil {
		return res
	}
	if !gjson.Valid(doc) {
		res.Err = core.Error(core.EINVALID, "input is not valid JSON")
		return res
	}
	res.Value = gjson.Parse(doc).Value()
	return res
}

// ToXML summarizes an XML document by its declaration and root element.
// Input without any element yields a summary with a nil Root.
func (p *Pipeline) ToXML(text string, opts ...Option) *DataResult {
	res, doc := p.data(XML, text, opts)
	if res.Err != nil {
		return res
	}
	prolog := html.ParseXMLProlog(doc)
	summary := XMLSummary{}
	if prolog.Declaration != "" {
		summary.Declaration = &prolog.Declaration
	}
	if prolog.Root != nil {
		root := &XMLRoot{Tag: prolog.Root.Name, Attributes: make(viewtree.Attrs)}
		for k, v := range prolog.Root.Attrs {
			root.Attributes[k] = viewtree.Value{Str: v.Value, Flag: v.IsFlag}
		}
		summary.Root = root
	}
	if summary.Root == nil {
		tracer().Infof("pipeline: XML input has no root element")
	}
	res.Value = summary
	return res
}

func (p *Pipeline) data(t DocType, text string, opts []Option) (*DataResult, string) {
	config, err := p.snapshot(opts)
	res := &DataResult{Type: t, Options: config, Err: err}
	if err != nil {
		return res, ""
	}
	if strings.TrimSpace(text) == "" {
		res.Err = core.Error(core.EEMPTY, "no %s input to read", t)
		return res, ""
	}
	return res, norm.NFC.String(text)
}

// MarshalJSON encodes a data result like a Result, with "value" in place
// of "data".
func (r *DataResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    DocType     `json:"type"`
		Value   interface{} `json:"value"`
		Options Config      `json:"options"`
		Error   *string     `json:"error"`
	}{r.Type, r.Value, r.Options, errorMessage(r.Err)})
}
