/*
Package html builds element trees from HTML or XML-like text.

The tree builder is forgiving. It targets everyday documents, not
conformance with the HTML5 parsing algorithm: there is no implied-tag
insertion, no foster parenting and no special handling of script or style
content. Tokens are read by a small lexer and assembled into a tree using an
explicit stack of open elements, so deeply nested input does not grow the
call stack.

Close tags are handled according to a CloseTagPolicy. The default policy
PopAny closes the innermost open element regardless of the close tag's
name. PopMatching ignores close tags which do not name the innermost open
element.

    nodes := html.Parse(`<div class="x"><p>Hi</p></div>`)

Comments, doctype declarations and processing instructions are skipped.
Character references in text and attribute values are decoded.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.html'.
func tracer() tracing.Trace {
	return tracing.Select("markview.html")
}
