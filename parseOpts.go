package argbind

type parseOpt func(b *Binder)

// Sets the program name shown in usage.
func Program(program string) parseOpt {
	return func(b *Binder) {
		b.program = program
	}
}

// Writes program description between usage and argument help.
func Description(desc string) parseOpt {
	return func(b *Binder) {
		b.description = desc
	}
}
