// Package dimen implements CSS lengths for the style attributes of view nodes.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a length in scaled pixels.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1          // scaled pixel = PX / 65536
	PX   Dimen = 65536      // CSS pixel, 1/96 inch
	PT   Dimen = PX * 4 / 3 // point, 1/72 inch
	IN   Dimen = 96 * PX    // inch
	EM   Dimen = 16 * PX    // font size of the host default font
	REM  Dimen = EM         // root font size
)

// Pixels returns d in CSS pixels.
func (d Dimen) Pixels() float64 {
	return float64(d) / float64(PX)
}

// String returns a CSS length in pixels, rounded to 1/100 px, e.g. "40px"
// or "0.5px".
func (d Dimen) String() string {
	px := math.Round(d.Pixels()*100) / 100
	if px == 0 {
		return "0px"
	}
	return strconv.FormatFloat(px, 'f', -1, 64) + "px"
}

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|px|pt|in|r?em)?$`)

// Errors returned by ParseDimen.
var (
	ErrFormat = errors.New("format error parsing dimension")
	ErrRange  = errors.New("dimension out of range")
)

// ParseDimen parses a CSS length. A number without unit is taken as pixels.
// If a percentage value is given (`80%`), the second return value will be
// true and the dimension is the percentage in scaled pixels.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if d == nil {
		return 0, false, ErrFormat
	}
	scale, ispcnt := PX, false
	switch d[2] {
	case "pt":
		scale = PT
	case "in":
		scale = IN
	case "em":
		scale = EM
	case "rem":
		scale = REM
	case "%":
		ispcnt = true
	}
	f, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, ErrFormat
	}
	f = math.Round(f * float64(scale))
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false, ErrRange
	}
	return Dimen(f), ispcnt, nil
}

// IsAbsolute reports whether a CSS length unit denotes a fixed length, i.e.
// one of "px", "pt" or "in". Font relative units and percentages are not
// absolute.
func IsAbsolute(unit string) bool {
	switch unit {
	case "px", "pt", "in":
		return true
	}
	return false
}
