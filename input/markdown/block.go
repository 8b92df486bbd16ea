package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	listItemPattern  = regexp.MustCompile(`^(\s*)([-*+]|\d+\.)\s+(.+)$`)
	orderedPattern   = regexp.MustCompile(`^\d+\.$`)
	separatorPattern = regexp.MustCompile(`^:?-+:?$`)
	rulePattern      = regexp.MustCompile(`^[-*_]{3,}$`)
)

const fence = "```"

// Option configures the block parser.
type Option func(*blockParser)

// JoinParagraphs controls whether runs of adjacent paragraph lines are
// merged into a single paragraph. Lines are joined with a single space.
// The default is false: every non-blank line which is not part of another
// construct becomes a paragraph of its own.
func JoinParagraphs(join bool) Option {
	return func(p *blockParser) {
		p.joinParagraphs = join
	}
}

// parserState is the state of the line scanner between two lines.
type parserState int8

const (
	scanning    parserState = iota // no construct pending
	inList                         // list items are collected in p.list
	inParagraph                    // paragraph lines are collected in p.para (joining only)
)

func (s parserState) String() string {
	switch s {
	case inList:
		return "in-list"
	case inParagraph:
		return "in-paragraph"
	}
	return "scanning"
}

type blockParser struct {
	lines          []string
	pos            int
	state          parserState
	list           List
	para           []string
	blocks         []Block
	joinParagraphs bool
}

// Parse splits a Markdown document into blocks.
//
// Lines are classified in this order: blank, heading, code fence, list item,
// blockquote, table row, horizontal rule, paragraph. List items are collected
// into a list until the first line which is not a list item; the kind of the
// list (ordered or not) is fixed by its first item.
//
// Parse never fails and always returns a non-nil slice.
func Parse(doc string, opts ...Option) []Block {
	p := &blockParser{
		lines:  strings.Split(doc, "\n"),
		blocks: make([]Block, 0, 16),
	}
	for _, opt := range opts {
		opt(p)
	}
	for p.pos < len(p.lines) {
		p.scanLine(strings.TrimRightFunc(p.lines[p.pos], unicode.IsSpace))
		p.pos++
	}
	p.flush()
	tracer().Debugf("markdown: %d lines parsed into %d blocks", len(p.lines), len(p.blocks))
	return p.blocks
}

func (p *blockParser) scanLine(line string) {
	if line == "" {
		p.flush()
		p.emit(Blank{})
		return
	}
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		p.flush()
		p.emit(Heading{Level: len(m[1]), Spans: ParseInline(m[2])})
		return
	}
	if strings.HasPrefix(line, fence) {
		p.flush()
		p.emit(p.scanFence(line))
		return
	}
	if m := listItemPattern.FindStringSubmatch(line); m != nil {
		p.addListItem(m[1], m[2], m[3])
		return
	}
	if strings.HasPrefix(line, "> ") {
		p.flush()
		p.emit(Blockquote{Spans: ParseInline(line[2:])})
		return
	}
	if strings.Contains(line, "|") && !strings.HasPrefix(line, "|") {
		if cells := splitCells(line); len(cells) > 0 {
			p.flush()
			if isSeparatorRow(cells) {
				tracer().Debugf("markdown: dropping table header separator in line %d", p.pos+1)
				return
			}
			row := TableRow{Cells: make([][]Span, len(cells))}
			for i, cell := range cells {
				row.Cells[i] = ParseInline(cell)
			}
			p.emit(row)
			return
		}
	}
	if rulePattern.MatchString(line) {
		p.flush()
		p.emit(Rule{})
		return
	}
	p.addParagraphLine(line)
}

// scanFence consumes a fenced code block. The opening fence is the current
// line; the block extends up to the next line starting with a fence, or to
// the end of the document.
func (p *blockParser) scanFence(opening string) Code {
	lang := strings.TrimSpace(opening[len(fence):])
	if lang == "" {
		lang = "text"
	}
	var code strings.Builder
	p.pos++
	for p.pos < len(p.lines) && !strings.HasPrefix(p.lines[p.pos], fence) {
		code.WriteString(p.lines[p.pos])
		code.WriteByte('\n')
		p.pos++
	}
	if p.pos == len(p.lines) {
		tracer().Infof("markdown: code fence not closed, consuming rest of document")
	}
	return Code{Language: lang, Content: strings.TrimSpace(code.String())}
}

func (p *blockParser) addListItem(indent, marker, content string) {
	if p.state != inList {
		p.flush()
		p.state = inList
		p.list = List{Ordered: orderedPattern.MatchString(marker)}
	}
	p.list.Items = append(p.list.Items, Item{
		Depth: len(indent) / 2,
		Spans: ParseInline(content),
	})
}

func (p *blockParser) addParagraphLine(line string) {
	if !p.joinParagraphs {
		p.flush()
		p.emit(Paragraph{Spans: ParseInline(line)})
		return
	}
	if p.state != inParagraph {
		p.flush()
		p.state = inParagraph
	}
	p.para = append(p.para, line)
}

// flush closes a pending list or paragraph and returns to state scanning.
func (p *blockParser) flush() {
	if p.state != scanning {
		tracer().Debugf("markdown: line %d leaves state %s", p.pos+1, p.state)
	}
	switch p.state {
	case inList:
		p.emit(p.list)
		p.list = List{}
	case inParagraph:
		p.emit(Paragraph{Spans: ParseInline(strings.Join(p.para, " "))})
		p.para = nil
	}
	p.state = scanning
}

func (p *blockParser) emit(b Block) {
	p.blocks = append(p.blocks, b)
}

func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, c := range parts {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorPattern.MatchString(c) {
			return false
		}
	}
	return true
}
