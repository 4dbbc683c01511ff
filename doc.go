// Package argbind binds typed positional and optional arguments to a slice of
// command-line tokens.
//
// For example:
//  b := argbind.New(argbind.Program("aoc"))
//  day := argbind.Pos[uint32](b, argbind.Name("day"))
//  part := argbind.Pos[uint32](b, argbind.Name("part"))
//  input := argbind.Pos[argbind.FileContents](b, argbind.Name("file"))
//  debug := argbind.Opt(b, "d", false, argbind.Help("enable debug logging"))
//  if err := b.Parse(os.Args); err != nil {
//      ...
//  }
//  solve(day.Value(), part.Value(), input.Value().Contents, debug.Value())
//
// Optionals are resolved first, in declaration order. Each one looks for a token
// exactly equal to "-" followed by its flag name anywhere in the remaining
// tokens, and takes the token after it as its value. Flags that are absent
// resolve to their default. The tokens left over are then matched to
// positionals in declaration order. Any token still unconsumed after that is an
// error.
//
// The value of an argument is converted from its token by, in order of
// preference, a Marshaler or encoding.TextUnmarshaler implemented by a pointer
// to the type, a builtin conversion for some standard library types, or strconv
// for the basic kinds. PosFunc and OptFunc take an explicit conversion instead.
package argbind
