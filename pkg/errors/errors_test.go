package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrNoHandle, "navigation handle is nil")

	assert.Equal(t, ErrNoHandle, err.Code)
	assert.Equal(t, "[NO_HANDLE] navigation handle is nil", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrRouteNotFound, "route %q not found at depth %d", "inbox", 2)

	assert.Equal(t, ErrRouteNotFound, err.Code)
	assert.Contains(t, err.Error(), `route "inbox" not found at depth 2`)
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("boom")
		err := Wrap(inner, ErrInternal, "dispatch failed")

		assert.Equal(t, ErrInternal, err.Code)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, inner, stderrors.Unwrap(err))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrInternal, "ignored"))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrTargetNotFound, "target key vanished")

	assert.True(t, IsErrorCode(err, ErrTargetNotFound))
	assert.False(t, IsErrorCode(err, ErrNoHandle))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrTargetNotFound))
	assert.False(t, IsErrorCode(nil, ErrTargetNotFound))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := New(ErrInvalidState, "index out of range")
	outer := fmt.Errorf("while dispatching: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrInvalidState))
	assert.Equal(t, ErrInvalidState, GetErrorCode(outer))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrNoHandle, GetErrorCode(New(ErrNoHandle, "nil")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrTargetNotFound, "no such node").
		WithDetail("target", "stack-3").
		WithDetail("depth", 2)

	details := GetErrorDetails(err)
	assert.Equal(t, "stack-3", details["target"])
	assert.Equal(t, 2, details["depth"])
	assert.Nil(t, GetErrorDetails(fmt.Errorf("plain")))
}

func TestErrorsIs(t *testing.T) {
	err := New(ErrInvalidAction, "payload has no name")

	assert.True(t, stderrors.Is(err, New(ErrInvalidAction, "different message")))
	assert.False(t, stderrors.Is(err, New(ErrInvalidState, "")))
}
