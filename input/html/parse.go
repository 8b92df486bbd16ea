package html

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// CloseTagPolicy decides what a close tag does to the stack of open elements.
type CloseTagPolicy int8

const (
	// PopAny closes the innermost open element, whatever the close tag's name.
	// Mismatched markup like <div><span>t</div> thus closes the <span>.
	PopAny CloseTagPolicy = iota
	// PopMatching closes the innermost open element only if the close tag
	// names it. Other close tags are ignored.
	PopMatching
)

func (p CloseTagPolicy) String() string {
	if p == PopMatching {
		return "pop-matching"
	}
	return "pop-any"
}

// Option configures the tree builder.
type Option func(*treeBuilder)

// WithCloseTagPolicy sets the policy for close tags. The default is PopAny.
func WithCloseTagPolicy(policy CloseTagPolicy) Option {
	return func(b *treeBuilder) {
		b.policy = policy
	}
}

type treeBuilder struct {
	roots  []Node
	open   *arraystack.Stack // of *Element
	policy CloseTagPolicy
}

// Parse builds a forest of element trees from doc.
//
// Parse never fails and always returns a non-nil slice. Elements still open
// at the end of input are closed implicitly. A close tag with no element
// open is ignored.
func Parse(doc string, opts ...Option) []Node {
	b := &treeBuilder{
		roots: make([]Node, 0, 4),
		open:  arraystack.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	lx := &lexer{input: doc}
	for tok, ok := lx.next(); ok; tok, ok = lx.next() {
		switch tok.typ {
		case textToken:
			b.appendChild(Text{Content: tok.text})
		case startTagToken:
			e := newElement(tok.name, tok.attrs)
			b.appendChild(e)
			b.open.Push(e)
		case selfClosingTagToken:
			b.appendChild(newElement(tok.name, tok.attrs))
		case endTagToken:
			b.close(tok.name)
		}
	}
	if !b.open.Empty() {
		tracer().Debugf("html: %d element(s) left open at end of input", b.open.Size())
	}
	tracer().Debugf("html: parsed %d top-level node(s) with policy %s", len(b.roots), b.policy)
	return b.roots
}

// top returns the innermost open element, or nil.
func (b *treeBuilder) top() *Element {
	if v, ok := b.open.Peek(); ok {
		return v.(*Element)
	}
	return nil
}

func (b *treeBuilder) appendChild(n Node) {
	if parent := b.top(); parent != nil {
		parent.Children = append(parent.Children, n)
		return
	}
	b.roots = append(b.roots, n)
}

func (b *treeBuilder) close(name string) {
	top := b.top()
	if top == nil {
		tracer().Debugf("html: </%s> without open element, ignored", name)
		return
	}
	if top.Name != name {
		if b.policy == PopMatching {
			tracer().Debugf("html: </%s> does not match <%s>, ignored", name, top.Name)
			return
		}
		tracer().Debugf("html: </%s> closes <%s>", name, top.Name)
	}
	b.open.Pop()
}
