package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EEMPTY, "input is %s", "blank")
	assert.Equal(t, EEMPTY, Code(err))
	assert.Equal(t, "input is blank", UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("index out of range")
	err := WrapError(cause, EINTERNAL, "markdown stage failed")
	assert.True(t, errors.Is(err, cause), "wrapped cause should be in error chain")
	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, EINTERNAL, Code(wrapped))
	assert.Equal(t, "markdown stage failed", UserMessage(wrapped))
	assert.Contains(t, err.Error(), "index out of range")
}

func TestForeignErrors(t *testing.T) {
	err := errors.New("something else")
	assert.Equal(t, EINTERNAL, Code(err))
	assert.Equal(t, "internal error", UserMessage(err))
	err = WrapError(nil, EINVALID, "no theme")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "no theme", UserMessage(err))
	assert.Contains(t, err.Error(), errorText(EINVALID))
}
