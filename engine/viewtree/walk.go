package viewtree

import "strings"

// Walk visits the nodes of a forest in document order (pre-order), calling
// visit for each node with its depth, starting at 0. If visit returns false,
// the children of that node are skipped.
//
// Walk does not recurse, deep trees are fine.
func Walk(nodes []*Node, visit func(n *Node, depth int) bool) {
	type item struct {
		node  *Node
		depth int
	}
	stack := make([]item, 0, 32)
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, item{nodes[i], 0})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node == nil || !visit(top.node, top.depth) {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			if ch, ok := top.node.Children[i].(*Node); ok {
				stack = append(stack, item{ch, top.depth + 1})
			}
		}
	}
}

// InnerText returns the text leaves of a forest in document order,
// separated by single spaces. White space surrounding a leaf is dropped.
func InnerText(nodes []*Node) string {
	var parts []string
	stack := make([]Child, 0, 32)
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch c := top.(type) {
		case Text:
			if s := strings.TrimSpace(c.Text); s != "" {
				parts = append(parts, s)
			}
		case *Node:
			if c == nil {
				continue
			}
			for i := len(c.Children) - 1; i >= 0; i-- {
				stack = append(stack, c.Children[i])
			}
		}
	}
	return strings.Join(parts, " ")
}

// Count returns the number of nodes in a forest. Text leaves are not counted.
func Count(nodes []*Node) int {
	count := 0
	Walk(nodes, func(*Node, int) bool {
		count++
		return true
	})
	return count
}
