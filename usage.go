package argbind

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"github.com/huandu/xstrings"
)

func displayName(name string) string {
	return strings.ToUpper(xstrings.ToSnakeCase(name))
}

func (m *argMeta) metavar() string {
	if m._type == nil || m._type.Name() == "" {
		return "VALUE"
	}
	return displayName(m._type.Name())
}

func withHelp(args []resolver) (ret []*argMeta) {
	for _, a := range args {
		if m := a.meta(); m.help != "" {
			ret = append(ret, m)
		}
	}
	return
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// WriteUsage writes a summary of the declared arguments to w.
func (b *Binder) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n  %s", b.programName())
	if len(b.optArgs) != 0 {
		fmt.Fprint(w, " [OPTIONS...]")
	}
	for _, a := range b.posArgs {
		fmt.Fprintf(w, " <%s>", displayName(a.meta().name))
	}
	fmt.Fprintln(w)
	if b.description != "" {
		fmt.Fprintf(w, "\n%s", missinggo.Unchomp(b.description))
	}
	if pos := withHelp(b.posArgs); len(pos) != 0 {
		fmt.Fprintln(w, "Arguments:")
		tw := newUsageTabwriter(w)
		for _, m := range pos {
			fmt.Fprintf(tw, "  %s\t%s\n", displayName(m.name), m.help)
		}
		tw.Flush()
	}
	if len(b.optArgs) != 0 {
		fmt.Fprintln(w, "Options:")
		tw := newUsageTabwriter(w)
		for _, a := range b.optArgs {
			m := a.meta()
			fmt.Fprintf(tw, "  %s%s %s\t%s", flagPrefix, m.flag, m.metavar(), m.help)
			if m.help != "" {
				fmt.Fprint(tw, " ")
			}
			fmt.Fprintf(tw, "(default: %s)\n", m.defaultText)
		}
		tw.Flush()
	}
}
