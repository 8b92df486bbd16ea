package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PX {
		t.Errorf("(1) expected d to be 12px (%d), is %d", 12*PX, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("1.5em")
	assert.NoError(t, err)
	assert.Equal(t, 24*PX, d)
	d, _, err = ParseDimen("12pt")
	assert.NoError(t, err)
	assert.Equal(t, "16px", d.String())
	_, _, err = ParseDimen("12 furlongs")
	assert.ErrorIs(t, err, ErrFormat)
	_, _, err = ParseDimen("1e9px")
	assert.ErrorIs(t, err, ErrFormat)
	_, _, err = ParseDimen("100000in")
	assert.ErrorIs(t, err, ErrRange)
}

func TestDimenString(t *testing.T) {
	assert.Equal(t, "0px", Zero.String())
	assert.Equal(t, "40px", (2 * 20 * PX).String())
	assert.Equal(t, "0.5px", (PX / 2).String())
	assert.Equal(t, "96px", IN.String())
	assert.Equal(t, "-1.33px", (-PT).String())
	assert.Equal(t, "0px", SP.String())
	assert.True(t, IsAbsolute("pt"))
	assert.False(t, IsAbsolute("em"))
	assert.False(t, IsAbsolute("%"))
}
