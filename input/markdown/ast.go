package markdown

// Block is a structural unit of a Markdown document.
// The set of block types is closed: Heading, Paragraph, Code, Blockquote,
// List, TableRow, Rule and Blank.
type Block interface {
	isBlock()
}

// Heading is an ATX heading of level 1 to 6.
type Heading struct {
	Level int
	Spans []Span
}

// Paragraph is a line (or, if paragraphs are joined, a run of lines) of text.
type Paragraph struct {
	Spans []Span
}

// Code is a fenced code block. Content is the raw text between the fences,
// with surrounding white space removed.
type Code struct {
	Language string
	Content  string
}

// Blockquote is a single quoted line.
type Blockquote struct {
	Spans []Span
}

// List is a sequence of list items. Whether a list is ordered is decided
// by its first item.
type List struct {
	Ordered bool
	Items   []Item
}

// Item is a list item. Depth is the indentation level, counting two
// characters of indentation per level.
type Item struct {
	Depth int
	Spans []Span
}

// TableRow is a row of a table. Header rows are not distinguished from
// data rows.
type TableRow struct {
	Cells [][]Span
}

// Rule is a horizontal rule.
type Rule struct{}

// Blank is an empty line.
type Blank struct{}

func (Heading) isBlock()    {}
func (Paragraph) isBlock()  {}
func (Code) isBlock()       {}
func (Blockquote) isBlock() {}
func (List) isBlock()       {}
func (TableRow) isBlock()   {}
func (Rule) isBlock()       {}
func (Blank) isBlock()      {}

// Span is an inline fragment of text.
// The set of span types is closed: Text, Strong, Em, InlineCode, Link and Image.
// Styled spans carry raw text only, they are never split into nested spans.
type Span interface {
	isSpan()
}

// Text is unstyled text.
type Text struct {
	Content string
}

// Strong is text enclosed in **.
type Strong struct {
	Content string
}

// Em is text enclosed in *.
type Em struct {
	Content string
}

// InlineCode is text enclosed in backticks.
type InlineCode struct {
	Content string
}

// Link is a link [Label](Href).
type Link struct {
	Label string
	Href  string
}

// Image is an image reference ![Alt](Src).
type Image struct {
	Alt string
	Src string
}

func (Text) isSpan()       {}
func (Strong) isSpan()     {}
func (Em) isSpan()         {}
func (InlineCode) isSpan() {}
func (Link) isSpan()       {}
func (Image) isSpan()      {}
