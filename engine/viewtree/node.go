package viewtree

import (
	"encoding/json"
	"strings"
)

// Child is a child of a view node: either a *Node or a Text leaf.
type Child interface {
	isChild()
}

// Node is a view node.
//
// Children is never nil for nodes created by New or by the synthesizers.
// Attribute keys are lower case.
type Node struct {
	Name     string
	Attrs    Attrs
	Children []Child
}

// Text is a text leaf of a view tree.
type Text struct {
	Text string
}

func (*Node) isChild() {}
func (Text) isChild()  {}

// Value is an attribute value, either a string or a flag.
type Value struct {
	Str  string
	Flag bool
}

// String creates a string attribute value.
func String(s string) Value {
	return Value{Str: s}
}

// Flag is the value of an attribute without a value.
var Flag = Value{Flag: true}

// MarshalJSON encodes a flag as true and any other value as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Flag {
		return []byte("true"), nil
	}
	return json.Marshal(v.Str)
}

// Attrs is an attribute map of a view node.
type Attrs map[string]Value

// New creates a view node with an empty list of children.
// attrs are given as pairs of key and string value.
func New(name string, attrs ...string) *Node {
	n := &Node{
		Name:     name,
		Attrs:    make(Attrs, len(attrs)/2+1),
		Children: []Child{},
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attrs[strings.ToLower(attrs[i])] = String(attrs[i+1])
	}
	return n
}

// WithText appends a text leaf to n and returns n.
func (n *Node) WithText(text string) *Node {
	n.Children = append(n.Children, Text{Text: text})
	return n
}

// Append appends children to n and returns n.
func (n *Node) Append(children ...Child) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the string value of attribute key, and whether n carries key.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v.Str, ok
}

// SetAttr sets attribute key to a string value.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(Attrs)
	}
	n.Attrs[strings.ToLower(key)] = String(value)
}

// Class returns the class attribute of n, or "".
func (n *Node) Class() string {
	c, _ := n.Attr("class")
	return c
}

// HasClass is true if token is one of the white space separated tokens of
// n's class attribute.
func (n *Node) HasClass(token string) bool {
	for _, c := range strings.Fields(n.Class()) {
		if c == token {
			return true
		}
	}
	return false
}

// AddClass adds token to n's class attribute, if it is not present yet.
func (n *Node) AddClass(token string) {
	if n.HasClass(token) {
		return
	}
	if c := n.Class(); c != "" {
		n.SetAttr("class", c+" "+token)
		return
	}
	n.SetAttr("class", token)
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Name:     n.Name,
		Attrs:    make(Attrs, len(n.Attrs)),
		Children: make([]Child, len(n.Children)),
	}
	for k, v := range n.Attrs {
		c.Attrs[k] = v
	}
	for i, ch := range n.Children {
		if node, ok := ch.(*Node); ok {
			c.Children[i] = node.Clone()
		} else {
			c.Children[i] = ch
		}
	}
	return c
}

// CloneAll returns a deep copy of a forest of view nodes. The result is
// never nil.
func CloneAll(nodes []*Node) []*Node {
	c := make([]*Node, len(nodes))
	for i, n := range nodes {
		c[i] = n.Clone()
	}
	return c
}
