package argbind

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradfitz/iter"
)

const flagPrefix = "-"

// Binder holds declared arguments and resolves them from a token slice. A
// Binder parses once.
type Binder struct {
	program     string
	description string

	posArgs []resolver
	optArgs []resolver

	parsed bool
}

// New returns an empty Binder.
func New(opts ...parseOpt) *Binder {
	b := &Binder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// The remaining tokens of a parse.
type tokens struct {
	s []string
}

func (me *tokens) len() int {
	return len(me.s)
}

func (me *tokens) at(i int) string {
	return me.s[i]
}

func (me *tokens) index(tok string) int {
	for i := range iter.N(len(me.s)) {
		if me.s[i] == tok {
			return i
		}
	}
	return -1
}

func (me *tokens) remove(i int) {
	me.s = append(me.s[:i], me.s[i+1:]...)
}

// Parse resolves every declared argument from args, the first of which is the
// program name and is ignored. Optionals are resolved before positionals, and
// the first failure is returned as a *ParseError. Parse may only be called once.
func (b *Binder) Parse(args []string) error {
	if b.parsed {
		return logicError{"binder already parsed"}
	}
	b.parsed = true
	toks := &tokens{}
	if len(args) > 1 {
		toks.s = append([]string(nil), args[1:]...)
	}
	for _, a := range b.optArgs {
		if err := a.resolve(toks); err != nil {
			return err
		}
	}
	for _, a := range b.posArgs {
		if err := a.resolve(toks); err != nil {
			return err
		}
	}
	if toks.len() != 0 {
		return &ParseError{
			Kind:     Leftover,
			Reason:   fmt.Sprintf("unparsed arguments: %q", toks.s),
			Leftover: toks.s,
		}
	}
	return nil
}

func (b *Binder) programName() string {
	if b.program == "" {
		return "program"
	}
	return b.program
}

// Names the program after argv0 unless Program was given.
func (b *Binder) defaultProgram(argv0 string) {
	if b.program == "" && argv0 != "" {
		b.program = filepath.Base(argv0)
	}
}

// ParseReport parses args like Parse. On failure it writes the reason, and for
// usage errors the usage, to w. It returns the exit status for the failure: 0
// on success, 2 for a *ParseError and 1 otherwise.
func (b *Binder) ParseReport(args []string, w io.Writer) int {
	err := b.Parse(args)
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "%s: %s\n", b.programName(), err)
	if _, ok := err.(*ParseError); ok {
		b.WriteUsage(w)
		return 2
	}
	return 1
}

// ParseArgv parses os.Args. On failure it reports to stderr as ParseReport does
// and exits with the returned status.
func (b *Binder) ParseArgv() {
	if len(os.Args) != 0 {
		b.defaultProgram(os.Args[0])
	}
	if code := b.ParseReport(os.Args, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
