/*
Package xpathadapter implements an xpath.NodeNavigator for view trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

View nodes do not know their parents. The navigator therefore keeps the
path from the root to the current node. A forest of view nodes is wrapped
in a synthetic document root, which is the XPath root node; the view nodes
of the forest are its children. Text leaves are text nodes, attributes are
visited in lexical order of their keys.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

BSD License

Copyright (c) 2017–18, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package xpathadapter

import (
	"errors"
	"sort"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/markview/core"
	"github.com/npillmayer/markview/engine/viewtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.xpath'.
func tracer() tracing.Trace {
	return tracing.Select("markview.xpath")
}

// step is an edge of the path from the root to the current node: the
// current node is parent.Children[chinx].
type step struct {
	parent *viewtree.Node
	chinx  int
}

// NodeNavigator is an xpath.NodeNavigator on a forest of view nodes.
type NodeNavigator struct {
	root *viewtree.Node // synthetic document root
	path []step         // empty if the navigator is at the root
	attr int            // attributes index
	keys []string       // sorted attribute keys of the current node
}

// NewNavigator creates a new xpath.NodeNavigator for a forest of view nodes.
func NewNavigator(nodes []*viewtree.Node) *NodeNavigator {
	root := &viewtree.Node{Children: make([]viewtree.Child, len(nodes))}
	for i, n := range nodes {
		root.Children[i] = n
	}
	return &NodeNavigator{
		root: root,
		attr: -1,
	}
}

// CurrentNode returns the view node or text leaf nav is positioned at.
// For the document root, nil is returned.
func CurrentNode(nav xpath.NodeNavigator) (viewtree.Child, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	if len(mynav.path) == 0 {
		return nil, nil
	}
	return mynav.current(), nil
}

func (nav *NodeNavigator) current() viewtree.Child {
	if len(nav.path) == 0 {
		return nav.root
	}
	s := nav.path[len(nav.path)-1]
	return s.parent.Children[s.chinx]
}

func (nav *NodeNavigator) currentNode() (*viewtree.Node, bool) {
	n, ok := nav.current().(*viewtree.Node)
	return n, ok
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if len(nav.path) == 0 {
		return xpath.RootNode
	}
	if _, ok := nav.current().(viewtree.Text); ok {
		return xpath.TextNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	n, ok := nav.currentNode()
	if !ok || len(nav.path) == 0 {
		return ""
	}
	if nav.attr != -1 {
		return nav.keys[nav.attr]
	}
	return n.Name
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch c := nav.current().(type) {
	case viewtree.Text:
		return c.Text
	case *viewtree.Node:
		if nav.attr != -1 {
			return c.Attrs[nav.keys[nav.attr]].Str
		}
		return viewtree.InnerText([]*viewtree.Node{c})
	}
	return ""
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	n.path = append([]step(nil), nav.path...)
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path = nav.path[:0]
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if len(nav.path) == 0 {
		return false
	}
	nav.path = nav.path[:len(nav.path)-1]
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	n, ok := nav.currentNode()
	if !ok || len(nav.path) == 0 {
		return false
	}
	if nav.attr == -1 {
		nav.keys = sortedKeys(n.Attrs)
	}
	if nav.attr >= len(nav.keys)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	n, ok := nav.currentNode()
	if !ok || len(n.Children) == 0 {
		return false
	}
	nav.path = append(nav.path, step{parent: n, chinx: 0})
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	s := &nav.path[len(nav.path)-1]
	if s.chinx == 0 {
		return false
	}
	s.chinx = 0
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	s := &nav.path[len(nav.path)-1]
	if s.chinx+1 >= len(s.parent.Children) { // was last child of parent
		return false
	}
	s.chinx++
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || len(nav.path) == 0 {
		return false
	}
	s := &nav.path[len(nav.path)-1]
	if s.chinx == 0 {
		return false
	}
	s.chinx--
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.path = append(nav.path[:0], n.path...)
	nav.attr = n.attr
	nav.keys = n.keys
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

func sortedKeys(attrs viewtree.Attrs) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Find evaluates an XPath expression on a forest of view nodes and returns
// the matching view nodes in document order. Matches which are not view
// nodes (text leaves, attributes) are replaced by the view node containing
// them; every node is returned at most once.
func Find(nodes []*viewtree.Node, expr string) ([]*viewtree.Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	nav := NewNavigator(nodes)
	it := x.Select(nav)
	seen := make(map[*viewtree.Node]bool)
	result := make([]*viewtree.Node, 0, 8)
	for it.MoveNext() {
		cur, ok := it.Current().(*NodeNavigator)
		if !ok || len(cur.path) == 0 {
			continue
		}
		var n *viewtree.Node
		if node, isNode := cur.current().(*viewtree.Node); isNode {
			n = node
		} else {
			n = cur.path[len(cur.path)-1].parent
		}
		if n == nav.root || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	tracer().Debugf("xpath: %q matched %d node(s)", expr, len(result))
	return result, nil
}
