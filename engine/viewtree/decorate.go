package viewtree

// Preview classes added by Decorate.
const (
	MarkdownPreview = "markdown-preview"
	HTMLPreview     = "html-preview"
)

// Decorate prepares a forest for display in a preview, modifying it in
// place. Every node receives the preview class for docType ("html" or
// "markdown"). Links and images receive their semantic class, a data-type
// and a data-event attribute; images default to mode widthFix. Code blocks
// and tables receive the classes "code-block" and "table".
//
// Nodes are classified by name (a, img, pre, table) or by a token of their
// original class attribute, e.g. "md-link" marks a link, but "unlinked" does
// not.
func Decorate(nodes []*Node, docType string) {
	preview := MarkdownPreview
	if docType == "html" {
		preview = HTMLPreview
	}
	Walk(nodes, func(n *Node, _ int) bool {
		isLink := n.Name == "a" || n.hasAnyClass("link", "md-link", "html-a")
		isImage := n.Name == "img" || n.hasAnyClass("image", "md-image", "html-img")
		isCode := n.Name == "pre" || n.hasAnyClass("code-block", "md-code-block", "html-pre")
		isTable := n.Name == "table" || n.hasAnyClass("table", "md-table", "html-table")
		n.AddClass(preview)
		if isLink {
			n.AddClass("link")
			n.SetAttr("data-type", "link")
			n.SetAttr("data-event", "link")
			if href, ok := n.Attr("href"); ok {
				n.SetAttr("data-href", href)
				delete(n.Attrs, "href")
			}
		}
		if isImage {
			n.AddClass("image")
			n.SetAttr("data-type", "image")
			n.SetAttr("data-event", "image")
			if _, ok := n.Attrs["mode"]; !ok {
				n.SetAttr("mode", "widthFix")
			}
			if src, ok := n.Attr("src"); ok {
				n.SetAttr("data-src", src)
				delete(n.Attrs, "src")
			}
		}
		if isCode {
			n.AddClass("code-block")
		}
		if isTable {
			n.AddClass("table")
		}
		return true
	})
	tracer().Debugf("viewtree: decorated %d node(s) for %s preview", Count(nodes), docType)
}

func (n *Node) hasAnyClass(classes ...string) bool {
	for _, c := range classes {
		if n.HasClass(c) {
			return true
		}
	}
	return false
}
