package html

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	tagNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*`)
	attrPattern    = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9:_-]*)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^>\s]+)))?`)
)

// voidElements never have content and need no close tag.
var voidElements = map[atom.Atom]bool{
	atom.Img:   true,
	atom.Br:    true,
	atom.Hr:    true,
	atom.Input: true,
	atom.Meta:  true,
	atom.Link:  true,
}

type tokenType int8

const (
	startTagToken tokenType = iota
	selfClosingTagToken
	endTagToken
	textToken
)

type token struct {
	typ   tokenType
	name  string               // tag name, lower case
	attrs map[string]AttrValue // for start tags
	text  string               // for text tokens
}

// lexer splits its input into tags and text runs.
type lexer struct {
	input string
	pos   int
}

// next returns the next token. The second return value is false at the
// end of input, which includes a '<' without a closing '>'.
func (lx *lexer) next() (token, bool) {
	for lx.pos < len(lx.input) {
		c := lx.input[lx.pos]
		if c <= ' ' {
			lx.pos++
			continue
		}
		if c == '<' {
			tok, ok, done := lx.scanTag()
			if done {
				return token{}, false
			}
			if ok {
				return tok, true
			}
			continue
		}
		start := lx.pos
		for lx.pos < len(lx.input) && lx.input[lx.pos] != '<' {
			lx.pos++
		}
		if text := strings.TrimSpace(lx.input[start:lx.pos]); text != "" {
			return token{typ: textToken, text: html.UnescapeString(text)}, true
		}
	}
	return token{}, false
}

// scanTag reads a construct enclosed in '<' and '>'. ok is false for
// constructs which do not produce a token (comments, doctype, processing
// instructions). done is true if the input is exhausted.
func (lx *lexer) scanTag() (tok token, ok bool, done bool) {
	end := strings.IndexByte(lx.input[lx.pos:], '>')
	if end < 0 {
		tracer().Infof("html: unterminated tag at position %d, stopping", lx.pos)
		lx.pos = len(lx.input)
		return tok, false, true
	}
	end += lx.pos
	content := lx.input[lx.pos+1 : end]
	if strings.HasPrefix(content, "!--") {
		closing := strings.Index(lx.input[lx.pos+4:], "-->")
		if closing < 0 {
			tracer().Infof("html: unterminated comment at position %d, stopping", lx.pos)
			lx.pos = len(lx.input)
			return tok, false, true
		}
		lx.pos += 4 + closing + 3
		return tok, false, false
	}
	lx.pos = end + 1
	if strings.HasPrefix(content, "/") {
		return token{typ: endTagToken, name: tagName(strings.TrimSpace(content[1:]))}, true, false
	}
	name := tagName(content)
	if name == "" {
		tracer().Debugf("html: skipping <%s>", content)
		return tok, false, false
	}
	tok = token{typ: startTagToken, name: name}
	rest := content[len(name):]
	if strings.HasSuffix(rest, "/") {
		tok.typ = selfClosingTagToken
		rest = rest[:len(rest)-1]
	} else if voidElements[atom.Lookup([]byte(name))] {
		tok.typ = selfClosingTagToken
	}
	tok.attrs = parseAttributes(rest, true)
	return tok, true, false
}

func tagName(s string) string {
	return strings.ToLower(tagNamePattern.FindString(s))
}

// parseAttributes reads attributes from the part of a tag following the
// tag name. Quoted and unquoted values are accepted. A name without a value
// is stored as a flag. If an attribute is repeated, the last one wins.
func parseAttributes(s string, foldCase bool) map[string]AttrValue {
	attrs := make(map[string]AttrValue)
	for _, m := range attrPattern.FindAllStringSubmatchIndex(s, -1) {
		name := s[m[2]:m[3]]
		if foldCase {
			name = strings.ToLower(name)
		}
		switch {
		case m[4] >= 0:
			attrs[name] = StringAttr(html.UnescapeString(s[m[4]:m[5]]))
		case m[6] >= 0:
			attrs[name] = StringAttr(html.UnescapeString(s[m[6]:m[7]]))
		case m[8] >= 0:
			attrs[name] = StringAttr(html.UnescapeString(s[m[8]:m[9]]))
		default:
			attrs[name] = FlagAttr
		}
	}
	return attrs
}
