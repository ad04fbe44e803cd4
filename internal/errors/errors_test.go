package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errUnavailable := New("unavailable")
	wrapped := Wrap(errUnavailable, "send push")

	assert.True(t, IsAny(wrapped, context.DeadlineExceeded, errUnavailable))
	assert.False(t, IsAny(wrapped, context.Canceled))
	assert.False(t, IsAny(wrapped))
	assert.NoError(t, Wrap(nil, "ignored"))
}
