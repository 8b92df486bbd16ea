package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/markview/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.option")
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := option.SomeString("dark")
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: "light",
		option.Some: x.Unwrap() + "!",
	})
	//
	x = option.String()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = option.SomeString("dark")
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %v, y2 = %v, y3 = %v", y1, y2, y3)
	if y1.(string) != "dark!" {
		t.Errorf("expected SomeString(dark) to match to dark!, is %v", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected unset string to match to No Value, is %v", y2)
	}
	if y3 != `Value = "dark"` {
		t.Errorf("expected SomeString(dark) to match to Value = \"dark\", is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.option")
	defer teardown()
	//
	x := option.SomeString("dark")
	y1, err := x.Match(option.Of{
		option.None: 7,
		"dark":      99,
		option.Some: 1,
	})
	if err != nil || y1.(int) != 99 {
		t.Errorf("expected SomeString(dark) to match to 99, is %v (err=%v)", y1, err)
	}
	y2, _ := option.SomeString("sepia").Match(option.Of{
		option.None: 7,
		"dark":      99,
		option.Some: 1,
	})
	if y2.(int) != 1 {
		t.Errorf("expected SomeString(sepia) to match to Some, is %v", y2)
	}
	y3, _ := option.SomeString("").Match(option.Of{
		option.None: 7,
		option.Some: 1,
	})
	if y3.(int) != 1 {
		t.Errorf("expected empty string to be a value, matched %v", y3)
	}
}

func TestOptionBool(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.option")
	defer teardown()
	//
	b := option.Bool()
	if !b.IsNone() || b.OrElse(true) != true {
		t.Errorf("expected unset bool to fall back to default")
	}
	b = option.SomeBool(false)
	if b.IsNone() || b.OrElse(true) != false {
		t.Errorf("expected SomeBool(false) to be set and false")
	}
	y, _ := b.Match(option.Of{
		false:       "off",
		true:        "on",
		option.None: "unset",
	})
	if y != "off" {
		t.Errorf("expected SomeBool(false) to match to off, is %v", y)
	}
	if b.String() != "false" || option.Bool().String() != "Bool.None" {
		t.Errorf("unexpected string forms %q / %q", b.String(), option.Bool().String())
	}
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markview.option")
	defer teardown()
	//
	x := option.SomeString("sepia")
	_, err := x.Match(option.Of{
		option.None:  "light",
		"sepia":      option.Fail(errors.New("Fail")),
		option.Some:  x.Unwrap(),
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	//
	t.Logf("err = %v", err)
	if err == nil {
		t.Fatalf("expected SomeString(sepia) to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected SomeString(sepia) error to be caught, isn't")
	}
}

func TestOptionNoPattern(t *testing.T) {
	_, err := option.Match(option.SomeString("x"), map[string]int{"x": 1})
	if err != option.ErrNoSuchMatchPattern {
		t.Errorf("expected ErrNoSuchMatchPattern, got %v", err)
	}
	_, err = option.String().Match(option.Of{"x": 1})
	if err != option.ErrCannotMatchUnsetValue {
		t.Errorf("expected ErrCannotMatchUnsetValue, got %v", err)
	}
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
