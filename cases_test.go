package argbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      error
	expected interface{}
}

func noErrorCase(expected interface{}, args ...string) parseCase {
	return parseCase{args: append([]string{"prog"}, args...), expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: append([]string{"prog"}, args...), err: err}
}

// A declaration set. values returns the resolved values for comparison.
type declare func(b *Binder) (values func() interface{})

func (me parseCase) Run(t *testing.T, decl declare) {
	b := New()
	values := decl(b)
	err := b.Parse(me.args)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	if me.err != nil {
		return
	}
	assert.EqualValues(t, me.expected, values(), "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, decl declare) {
	for _, _case := range cases {
		_case.Run(t, decl)
	}
}
