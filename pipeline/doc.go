/*
Package pipeline is the entry point of markview: it turns Markdown or HTML
text into view trees.

A Pipeline holds an instance configuration (theme, base path for relative
references, a sink for tap events and a few parser switches). Every call
works on an immutable snapshot of this configuration, merged with per-call
options:

    p := pipeline.New(pipeline.WithTheme("dark"))
    res := p.ToMarkdown("# Title\n\n- a\n- b", pipeline.WithBasePath("https://e.com/"))
    if res.Err != nil {
        …
    }
    nodes := p.ToViewTree(res)

Calls never panic across the package boundary. Blank input and failures
inside a parser stage are reported in Result.Err, with an empty list of
view nodes; errors carry codes of package core (EEMPTY, EINTERNAL,
EINVALID).

Pipelines may be used from concurrent goroutines. The theme of a pipeline
changes only through UpdateTheme, and calls in flight keep the snapshot
they started with.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("markview.pipeline")
}
