package argbind

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Implemented by every *Arg[T] so the Binder can hold them in one list.
type resolver interface {
	resolve(args *tokens) error
	meta() *argMeta
}

type argMeta struct {
	name        string
	help        string
	flag        string
	_type       reflect.Type
	// Formatted default for usage, optionals only.
	defaultText string
}

type argOpt func(m *argMeta)

// Sets the name shown in usage and in errors about the argument.
func Name(name string) argOpt {
	return func(m *argMeta) {
		m.name = name
	}
}

// Sets a line of help shown after the argument in usage.
func Help(help string) argOpt {
	return func(m *argMeta) {
		m.help = help
	}
}

// Arg is a handle to a declared argument. Its value is available after the
// Binder that declared it has parsed successfully.
type Arg[T any] struct {
	argMeta
	marshal  func(string) (T, error)
	optional bool
	def      T

	resolved bool
	value    T
}

// Value returns the resolved value, or the zero value if the argument wasn't
// resolved.
func (me *Arg[T]) Value() T {
	return me.value
}

// Resolved reports whether the argument has a value.
func (me *Arg[T]) Resolved() bool {
	return me.resolved
}

func (me *Arg[T]) meta() *argMeta {
	return &me.argMeta
}

func (me *Arg[T]) resolve(args *tokens) error {
	if me.resolved {
		return nil
	}
	if me.optional {
		return me.resolveOptional(args)
	}
	return me.resolvePositional(args)
}

func (me *Arg[T]) resolveOptional(args *tokens) error {
	i := args.index(flagPrefix + me.flag)
	if i == -1 {
		me.set(me.def)
		return nil
	}
	if i+1 >= args.len() {
		return me.optionalError(ErrMissingValue)
	}
	v, err := me.marshal(args.at(i + 1))
	if err != nil {
		return me.optionalError(err)
	}
	args.remove(i + 1)
	args.remove(i)
	me.set(v)
	return nil
}

func (me *Arg[T]) optionalError(cause error) error {
	return &ParseError{
		Kind:   OptionalConversion,
		Reason: errors.Wrap(cause, "failed to parse optional argument").Error(),
		Arg:    me.name,
		cause:  cause,
	}
}

func (me *Arg[T]) resolvePositional(args *tokens) error {
	if args.len() == 0 {
		return &ParseError{
			Kind:   MissingPositional,
			Reason: fmt.Sprintf("missing argument: %q", me.name),
			Arg:    me.name,
		}
	}
	v, err := me.marshal(args.at(0))
	if err != nil {
		return &ParseError{
			Kind:   PositionalConversion,
			Reason: errors.Wrap(err, "failed to parse positional argument").Error(),
			Arg:    me.name,
			cause:  err,
		}
	}
	args.remove(0)
	me.set(v)
	return nil
}

func (me *Arg[T]) set(v T) {
	me.value = v
	me.resolved = true
}

func newArg[T any](marshal func(string) (T, error), opts []argOpt) *Arg[T] {
	if marshal == nil {
		var zero T
		t := reflect.TypeOf(&zero).Elem()
		panic(logicError{fmt.Sprintf("can't convert arguments to type %s", fullTypeName(t))})
	}
	a := &Arg[T]{marshal: marshal}
	a._type = reflect.TypeOf(&a.value).Elem()
	for _, opt := range opts {
		opt(&a.argMeta)
	}
	return a
}

// Pos declares a required positional argument converted to T from its token.
// It panics if T has no known conversion.
func Pos[T any](b *Binder, opts ...argOpt) *Arg[T] {
	return PosFunc(b, marshalerFor[T](), opts...)
}

// PosFunc declares a required positional argument converted by marshal.
func PosFunc[T any](b *Binder, marshal func(string) (T, error), opts ...argOpt) *Arg[T] {
	a := newArg(marshal, opts)
	if a.name == "" {
		a.name = fmt.Sprintf("arg%d", len(b.posArgs)+1)
	}
	b.posArgs = append(b.posArgs, a)
	return a
}

// Opt declares an argument given by "-flag value", resolving to def when the
// flag is absent. It panics if T has no known conversion.
func Opt[T any](b *Binder, flag string, def T, opts ...argOpt) *Arg[T] {
	return OptFunc(b, flag, def, marshalerFor[T](), opts...)
}

// OptFunc declares an optional argument converted by marshal.
func OptFunc[T any](b *Binder, flag string, def T, marshal func(string) (T, error), opts ...argOpt) *Arg[T] {
	a := newArg(marshal, opts)
	a.optional = true
	a.flag = flag
	a.def = def
	a.defaultText = fmt.Sprint(def)
	if a.name == "" {
		a.name = flag
	}
	b.optArgs = append(b.optArgs, a)
	return a
}
