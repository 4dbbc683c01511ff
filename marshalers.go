package argbind

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// Marshaler is implemented by pointers to types that convert themselves from a
// single token.
type Marshaler interface {
	Marshal(in string) error
}

// Returns a function that converts a token into v, or nil if v's type can't be
// converted.
func valueMarshaler(v reflect.Value) func(s string) error {
	if v.CanAddr() {
		switch m := v.Addr().Interface().(type) {
		case Marshaler:
			return m.Marshal
		case encoding.TextUnmarshaler:
			return func(s string) error { return m.UnmarshalText([]byte(s)) }
		}
	}
	if f, ok := typeMarshalFuncs[v.Type()]; ok {
		return func(s string) error { return f(v, s) }
	}
	return kindMarshaler(v)
}

func kindMarshaler(v reflect.Value) func(s string) error {
	bits := 0
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		bits = v.Type().Bits()
	}
	switch v.Kind() {
	case reflect.String:
		return func(s string) error {
			v.SetString(s)
			return nil
		}
	case reflect.Bool:
		return func(s string) error {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return err
			}
			v.SetBool(b)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(s string) error {
			i, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return err
			}
			v.SetInt(i)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(s string) error {
			u, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return err
			}
			v.SetUint(u)
			return nil
		}
	case reflect.Float32, reflect.Float64:
		return func(s string) error {
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return err
			}
			v.SetFloat(f)
			return nil
		}
	}
	return nil
}

// Derives the conversion for T, or returns nil if there is none.
func marshalerFor[T any]() func(string) (T, error) {
	var probe T
	if valueMarshaler(reflect.ValueOf(&probe).Elem()) == nil {
		return nil
	}
	return func(s string) (ret T, err error) {
		err = valueMarshaler(reflect.ValueOf(&ret).Elem())(s)
		return
	}
}

func fullTypeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return fmt.Sprintf(`"%s".%s`, t.PkgPath(), t.Name())
}
