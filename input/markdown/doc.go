/*
Package markdown parses a practical subset of Markdown into a block AST.

Parsing is line-oriented. Every physical line is classified on its own,
with only two constructs spanning lines: fenced code blocks and lists.
Inline text of a block is split into spans by ParseInline.

Recognized blocks are headings (# … ######), fenced code (```lang),
list items (-, *, + or 1.), blockquotes (> ), table rows (cells separated
by |, header separator rows are dropped), horizontal rules, blank lines and
paragraphs. Recognized spans are **strong**, *emphasis*, `code`,
[links](href) and ![images](src). Spans do not nest.

Parsing never fails. A construct with a missing closing delimiter is
degraded to literal text, and the rest of the line is parsed as usual.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("markview.markdown")
}
