/*
Package synth maps Markdown block ASTs and HTML element trees to view trees.

Synthesis is a pure structural mapping: every block, span or element
produces one view node (or a small subtree), and every view node receives a
presentation class. Markdown classes are prefixed with "md-", HTML classes
default to "html-" plus the tag name.

Links and images become tap targets: they carry the class token "link" or
"image", an attribute "data-type" and the reference in "data-href" or
"data-src". Relative references are prefixed with Options.BasePath.

The AST types are closed sets of variants. An unknown variant is a
programming error and makes synthesis panic.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synth

import (
	"net/url"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.synth'.
func tracer() tracing.Trace {
	return tracing.Select("markview.synth")
}

// Options control synthesis.
type Options struct {
	BasePath string // prefix for relative link and image references
}

// resolve prefixes a relative reference with base. Absolute URLs (including
// data: and mailto: URLs), root-relative paths and fragments are returned
// unchanged. References are not validated.
func (o Options) resolve(ref string) string {
	if o.BasePath == "" || ref == "" {
		return ref
	}
	if strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "#") {
		return ref
	}
	if u, err := url.Parse(ref); err != nil || u.IsAbs() {
		return ref
	}
	return strings.TrimRight(o.BasePath, "/") + "/" + ref
}
