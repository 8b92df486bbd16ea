/*
Package option implements optional values and match-style evaluation of them.

Configuration values which may or may not be set by a client are modelled
as option types and resolved with a match expression:

    theme, err := option.SomeString(s).Match(option.Of{
        option.None: "light",
        "light":     "light",
        "dark":      "dark",
        option.Some: option.Fail(ErrUnknownTheme),
    })

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markview.option'.
func tracer() tracing.Trace {
	return tracing.Select("markview.option")
}
