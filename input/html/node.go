package html

// Node is a node of an element tree, either an *Element or a Text.
type Node interface {
	isNode()
}

// Element is an HTML element. Name and attribute keys are lower case.
type Element struct {
	Name     string
	Attrs    map[string]AttrValue
	Children []Node
}

// Text is a run of character data between tags, with surrounding white
// space removed. Text is never empty.
type Text struct {
	Content string
}

func (*Element) isNode() {}
func (Text) isNode()     {}

// AttrValue is the value of an attribute. An attribute given without a
// value (e.g., <input disabled>) is a flag.
type AttrValue struct {
	Value  string
	IsFlag bool
}

// StringAttr creates an attribute value from a string.
func StringAttr(s string) AttrValue {
	return AttrValue{Value: s}
}

// FlagAttr is the value of an attribute given without a value.
var FlagAttr = AttrValue{IsFlag: true}

// Attr returns the string value of attribute key, and whether e carries key.
// Flags return an empty string.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	return v.Value, ok
}

func newElement(name string, attrs map[string]AttrValue) *Element {
	if attrs == nil {
		attrs = make(map[string]AttrValue)
	}
	return &Element{
		Name:     name,
		Attrs:    attrs,
		Children: make([]Node, 0, 2),
	}
}
