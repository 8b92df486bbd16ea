/*
Package viewtree defines view nodes, the renderer-agnostic output of
markview.

A view tree is a forest of nodes, each carrying a name, an attribute map
and a list of children. Children are either nodes or text leaves. Host user
interfaces draw view trees without knowing anything about Markdown or HTML
syntax. The JSON encoding of a node is

    {"name": "view", "attrs": {"class": "md-p"}, "children": [ … ]}

with text leaves encoded as {"text": "…"} and attribute values encoded as
strings or as true, for flags.

Interactive nodes (tap targets) carry a semantic class token ("link" or
"image"), an attribute "data-type" and a "data-href" or "data-src"
attribute. They never carry raw "href" or "src" attributes.

Besides the data model, package viewtree offers tree utilities: cloning,
traversal, text extraction, CSS selector queries (through a bridge to
golang.org/x/net/html nodes), HTML export and decoration for preview.
Package xpathadapter adds XPath queries.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package viewtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.viewtree'.
func tracer() tracing.Trace {
	return tracing.Select("markview.viewtree")
}
