package argbind

import (
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/xerrors"
)

// FileContents binds a file path argument to the contents of that file. The
// file is read while the argument is resolved, and any read error fails the
// argument the same as a syntax error would.
type FileContents struct {
	Path     string
	Contents string
}

var _ Marshaler = (*FileContents)(nil)

func (me *FileContents) Marshal(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return xerrors.Errorf("reading input: %w", err)
	}
	me.Path = path
	me.Contents = string(b)
	return nil
}

func (me FileContents) String() string {
	return me.Path
}

// Bytes is a byte quantity given in human readable form, such as 100GB or
// 4KiB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ Marshaler = (*Bytes)(nil)

func (me *Bytes) Marshal(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*me = Bytes(n)
	return nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
