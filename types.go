package argbind

import (
	"net"
	"net/url"
	"reflect"
	"time"
)

var typeMarshalFuncs = map[reflect.Type]func(settee reflect.Value, arg string) error{}

// Registers f, which must have the form func(string) T or
// func(string) (T, error), as the conversion for T.
func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	setType := t.Out(0)
	typeMarshalFuncs[setType] = func(settee reflect.Value, arg string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(arg)})
		if len(out) > 1 {
			i := out[1].Interface()
			if i != nil {
				return i.(error)
			}
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addMarshalFunc(func(urlStr string) (*url.URL, error) {
		return url.Parse(urlStr)
	})
	addMarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addMarshalFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
}
