// Package task maps (day, part) pairs to the handlers that solve them.
package task

import (
	"fmt"
	"sort"

	"golang.org/x/xerrors"
)

var ErrNotImplemented = xerrors.New("not implemented")

type Key struct {
	Day  uint32
	Part uint32
}

func (k Key) String() string {
	return fmt.Sprintf("day %d part %d", k.Day, k.Part)
}

// Handler solves a puzzle from its whole input.
type Handler func(input string) (any, error)

type Table struct {
	handlers map[Key]Handler
}

func (t *Table) Register(day, part uint32, h Handler) error {
	k := Key{day, part}
	if _, ok := t.handlers[k]; ok {
		return xerrors.Errorf("%v registered more than once", k)
	}
	if t.handlers == nil {
		t.handlers = make(map[Key]Handler)
	}
	t.handlers[k] = h
	return nil
}

func (t *Table) Lookup(day, part uint32) (Handler, bool) {
	h, ok := t.handlers[Key{day, part}]
	return h, ok
}

// Keys returns the registered keys by day then part.
func (t *Table) Keys() (ret []Key) {
	for k := range t.handlers {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Day != ret[j].Day {
			return ret[i].Day < ret[j].Day
		}
		return ret[i].Part < ret[j].Part
	})
	return
}

// Run solves day and part with input. It returns an error wrapping
// ErrNotImplemented if nothing is registered for them.
func (t *Table) Run(day, part uint32, input string) (any, error) {
	k := Key{day, part}
	h, ok := t.handlers[k]
	if !ok {
		return nil, xerrors.Errorf("%v: %w", k, ErrNotImplemented)
	}
	v, err := h(input)
	if err != nil {
		return nil, xerrors.Errorf("solving %v: %w", k, err)
	}
	return v, nil
}
