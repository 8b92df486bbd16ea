package viewtree

import (
	"encoding/json"
	"io"
)

// MarshalJSON encodes n as {"name", "attrs", "children"}. Missing attribute
// maps and children lists are encoded as {} and [].
func (n *Node) MarshalJSON() ([]byte, error) {
	return appendNode(make([]byte, 0, 256), n)
}

// MarshalJSON encodes a text leaf as {"text": …}.
func (t Text) MarshalJSON() ([]byte, error) {
	return appendText(make([]byte, 0, len(t.Text)+12), t), nil
}

// AppendJSON appends the JSON form of a forest, a list of nodes, to buf.
// Trees are encoded without recursion, so nesting depth is not limited.
//
// Note that encoding/json checks the output of MarshalJSON methods against
// its own nesting limit of 10000 levels. Use AppendJSON or WriteJSON for
// trees deeper than that.
func AppendJSON(buf []byte, nodes []*Node) ([]byte, error) {
	children := make([]Child, len(nodes))
	for i, n := range nodes {
		children[i] = n
	}
	return appendChildren(buf, children, false)
}

// WriteJSON writes the JSON form of a forest to w.
func WriteJSON(w io.Writer, nodes []*Node) error {
	buf, err := AppendJSON(make([]byte, 0, 1024), nodes)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

func appendNode(buf []byte, n *Node) ([]byte, error) {
	if n == nil {
		return append(buf, "null"...), nil
	}
	return appendChildren(buf, []Child{n}, true)
}

// appendChildren encodes a list of children as a JSON array, walking down
// the tree with an explicit stack. If unwrap is set, the brackets of the
// outermost array are left out.
func appendChildren(buf []byte, children []Child, unwrap bool) ([]byte, error) {
	type frame struct {
		children []Child
		next     int
	}
	if !unwrap {
		buf = append(buf, '[')
	}
	stack := make([]frame, 1, 32)
	stack[0] = frame{children: children}
	var err error
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				buf = append(buf, "]}"...)
			} else if !unwrap {
				buf = append(buf, ']')
			}
			continue
		}
		if top.next > 0 {
			buf = append(buf, ',')
		}
		c := top.children[top.next]
		top.next++
		switch c := c.(type) {
		case Text:
			buf = appendText(buf, c)
		case *Node:
			if c == nil {
				buf = append(buf, "null"...)
				continue
			}
			buf = append(buf, `{"name":`...)
			buf = appendString(buf, c.Name)
			buf = append(buf, `,"attrs":`...)
			if buf, err = appendAttrs(buf, c.Attrs); err != nil {
				return nil, err
			}
			buf = append(buf, `,"children":[`...)
			stack = append(stack, frame{children: c.Children})
		default:
			buf = append(buf, "null"...)
		}
	}
	return buf, nil
}

func appendText(buf []byte, t Text) []byte {
	buf = append(buf, `{"text":`...)
	buf = appendString(buf, t.Text)
	return append(buf, '}')
}

func appendString(buf []byte, s string) []byte {
	b, _ := json.Marshal(s) // strings always encode
	return append(buf, b...)
}

func appendAttrs(buf []byte, attrs Attrs) ([]byte, error) {
	if len(attrs) == 0 {
		return append(buf, "{}"...), nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}
	return append(buf, b...), nil
}
