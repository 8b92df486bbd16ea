package markdown

import "strings"

// ParseInline splits a line of text (or a table cell) into inline spans.
//
// The text is scanned left to right. At each trigger character the
// corresponding construct is tried: "**" opens strong text, "*" opens
// emphasis (only at the start of text or after a space), "`" opens inline
// code, "[" a link and "![" an image. The closing delimiter is searched
// forward from the opener. If it is missing, the opening character is
// emitted as a one-character text span and scanning continues right after
// it. Plain characters between triggers are collected into a single text
// span.
//
// ParseInline never fails and always returns a non-nil slice.
func ParseInline(text string) []Span {
	spans := make([]Span, 0, 4)
	i := 0
	for i < len(text) {
		if isTrigger(text[i]) {
			if span, next, ok := scanConstruct(text, i); ok {
				spans = append(spans, span)
				i = next
				continue
			}
			spans = append(spans, Text{Content: text[i : i+1]})
			i++
			continue
		}
		j := i
		for j < len(text) && !isTrigger(text[j]) {
			j++
		}
		spans = append(spans, Text{Content: text[i:j]})
		i = j
	}
	return spans
}

func isTrigger(c byte) bool {
	return c == '*' || c == '`' || c == '[' || c == '!'
}

// scanConstruct tries to recognize an inline construct starting at text[i].
// It returns the span and the position after its closing delimiter.
func scanConstruct(text string, i int) (Span, int, bool) {
	switch {
	case strings.HasPrefix(text[i:], "**"):
		if end := strings.Index(text[i+2:], "**"); end >= 0 {
			end += i + 2
			return Strong{Content: text[i+2 : end]}, end + 2, true
		}
	case text[i] == '*':
		if i > 0 && text[i-1] != ' ' {
			return nil, i, false
		}
		if end := strings.IndexByte(text[i+1:], '*'); end >= 0 {
			end += i + 1
			return Em{Content: text[i+1 : end]}, end + 1, true
		}
	case text[i] == '`':
		if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
			end += i + 1
			return InlineCode{Content: text[i+1 : end]}, end + 1, true
		}
	case text[i] == '[':
		if label, target, next, ok := scanReference(text, i+1); ok {
			return Link{Label: label, Href: target}, next, true
		}
	case strings.HasPrefix(text[i:], "!["):
		if alt, target, next, ok := scanReference(text, i+2); ok {
			return Image{Alt: alt, Src: target}, next, true
		}
	}
	return nil, i, false
}

// scanReference scans "label](target)" starting at text[start], i.e. right
// after the opening bracket. The parenthesis has to follow the closing
// bracket immediately.
func scanReference(text string, start int) (label, target string, next int, ok bool) {
	closing := strings.IndexByte(text[start:], ']')
	if closing < 0 {
		return
	}
	closing += start
	if closing+1 >= len(text) || text[closing+1] != '(' {
		return
	}
	end := strings.IndexByte(text[closing+2:], ')')
	if end < 0 {
		return
	}
	end += closing + 2
	return text[start:closing], text[closing+2 : end], end + 1, true
}
