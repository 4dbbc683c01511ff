package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/anacrolix/argbind"
	"github.com/anacrolix/argbind/internal/task"
)

var log = logrus.New()

// Solvers are registered here by day and part.
var tasks task.Table

func run(args []string, stdout, stderr io.Writer, tbl *task.Table) int {
	b := argbind.New(argbind.Program("aoc"), argbind.Description("Runs the solver for a puzzle day and part on an input file."))
	day := argbind.Pos[uint32](b, argbind.Name("day"), argbind.Help("puzzle day"))
	part := argbind.Pos[uint32](b, argbind.Name("part"), argbind.Help("puzzle part"))
	input := argbind.Pos[argbind.FileContents](b, argbind.Name("file"), argbind.Help("puzzle input path"))
	debug := argbind.Opt(b, "d", false, argbind.Help("enable debug logging"))
	if code := b.ParseReport(args, stderr); code != 0 {
		return code
	}

	log.SetOutput(stderr)
	log.SetLevel(logrus.InfoLevel)
	if debug.Value() {
		log.SetLevel(logrus.DebugLevel)
	}
	log.Debugf("Debugging enabled: %v", debug.Value())

	log.WithFields(logrus.Fields{
		"day":   day.Value(),
		"part":  part.Value(),
		"input": input.Value().Path,
	}).Debug("running")
	v, err := tbl.Run(day.Value(), part.Value(), input.Value().Contents)
	if xerrors.Is(err, task.ErrNotImplemented) {
		log.Errorf("day %d part %d not implemented", day.Value(), part.Value())
		return 1
	}
	if err != nil {
		log.Error(err)
		return 1
	}
	fmt.Fprintln(stdout, v)
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, &tasks))
}
