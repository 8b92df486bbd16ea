package html

import "regexp"

var (
	xmlDeclPattern = regexp.MustCompile(`<\?xml[^?>]*\?>`)
	xmlRootPattern = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9:_-]*)([^>]*)>`)
)

// XMLProlog is a summary of an XML document: its declaration and the name
// and attributes of its root element.
type XMLProlog struct {
	Declaration string   // the XML declaration, or ""
	Root        *Element // the root element without children, or nil
}

// ParseXMLProlog extracts the XML declaration and the root element of doc.
// Element and attribute names keep their case.
func ParseXMLProlog(doc string) XMLProlog {
	prolog := XMLProlog{Declaration: xmlDeclPattern.FindString(doc)}
	if m := xmlRootPattern.FindStringSubmatch(doc); m != nil {
		rest := m[2]
		if n := len(rest); n > 0 && rest[n-1] == '/' {
			rest = rest[:n-1]
		}
		prolog.Root = newElement(m[1], parseAttributes(rest, false))
	}
	tracer().Debugf("xml: declaration=%q, root=%v", prolog.Declaration, prolog.Root != nil)
	return prolog
}
