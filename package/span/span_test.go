package span

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("cause")

func TestErrorChainKeepsCause(t *testing.T) {
	layer := NewLayer("test", "procedure")
	s, _ := layer.With(context.Background())
	defer s.End()

	err := s.Error("unable to load", errCause)
	err = NewError(nil, "outer", err)

	assert.ErrorIs(t, err, errCause)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Len(t, e.Items, 2)
	assert.Equal(t, "unable to load", *e.Message())
	assert.Equal(t, "outer: cause", err.Error())
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewError(nil, "plain", nil)
	assert.Equal(t, "plain", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestWithNestsSpans(t *testing.T) {
	layer := NewLayer("test", "procedure")
	outer, ctx := layer.With(context.Background())
	inner, ctx := layer.With(ctx)

	assert.Same(t, inner, FromContext(ctx))
	require.Len(t, outer.Children, 1)
	assert.Same(t, inner, outer.Children[0])
	require.Len(t, inner.Path, 1)
	assert.Equal(t, *outer.Name, *inner.Path[0])

	inner.Variable("key", "value")
	assert.Equal(t, "value", inner.Variables["key"])

	inner.End()
	outer.End()
	assert.NotNil(t, inner.Ended)
}
