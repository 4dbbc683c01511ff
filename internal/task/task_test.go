package task

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestRun(t *testing.T) {
	var tbl Table
	require.NoError(t, tbl.Register(1, 1, func(input string) (any, error) {
		return len(strings.Fields(input)), nil
	}))
	v, err := tbl.Run(1, 1, "a b c")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = tbl.Run(1, 2, "")
	assert.True(t, xerrors.Is(err, ErrNotImplemented))
	assert.EqualError(t, err, "day 1 part 2: not implemented")
}

func TestRunHandlerError(t *testing.T) {
	var tbl Table
	bad := errors.New("bad input")
	require.NoError(t, tbl.Register(2, 1, func(string) (any, error) {
		return nil, bad
	}))
	_, err := tbl.Run(2, 1, "")
	assert.True(t, errors.Is(err, bad))
	assert.EqualError(t, err, "solving day 2 part 1: bad input")
}

func TestRegisterTwice(t *testing.T) {
	var tbl Table
	h := func(string) (any, error) { return nil, nil }
	require.NoError(t, tbl.Register(3, 1, h))
	assert.EqualError(t, tbl.Register(3, 1, h), "day 3 part 1 registered more than once")
	_, ok := tbl.Lookup(3, 1)
	assert.True(t, ok)
	_, ok = tbl.Lookup(3, 2)
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	var tbl Table
	h := func(string) (any, error) { return nil, nil }
	for _, k := range []Key{{10, 2}, {2, 1}, {10, 1}, {2, 2}} {
		require.NoError(t, tbl.Register(k.Day, k.Part, h))
	}
	assert.Equal(t, []Key{{2, 1}, {2, 2}, {10, 1}, {10, 2}}, tbl.Keys())
	assert.Empty(t, new(Table).Keys())
}
