package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"budget/internal/log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type showCmd struct {
	app   *App
	raw   bool
	width int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the entries and the total" }
func (*showCmd) Usage() string {
	return `budget show [-raw] [-width <n>]

  Renders the tracker table in the terminal.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the Markdown source instead of rendering it.")
	f.IntVar(&c.width, "width", 100, "Word wrap width of the rendered output.")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.app.open(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	var b strings.Builder
	if err := s.table.WriteMarkdown(&b); err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	c.app.rendered(ctx, "markdown", len(s.table.Rows()))
	if c.raw {
		fmt.Fprint(c.app.stdout(), b.String())
		return subcommands.ExitSuccess
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(c.width))
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	out, err := r.Render(b.String())
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	fmt.Fprint(c.app.stdout(), out)
	return subcommands.ExitSuccess
}

type htmlCmd struct {
	app    *App
	output string
}

func (*htmlCmd) Name() string     { return "html" }
func (*htmlCmd) Synopsis() string { return "write the widget markup" }
func (*htmlCmd) Usage() string {
	return `budget html [-o <file>]

  Writes the tracker table as HTML to stdout or to a file.
`
}

func (c *htmlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *htmlCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.app.open(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if c.output == "" {
		if err := s.table.WriteHTML(c.app.stdout()); err != nil {
			return c.app.fail(ctx, c.Name(), err)
		}
		c.app.rendered(ctx, "html", len(s.table.Rows()))
		return subcommands.ExitSuccess
	}

	f, err := os.Create(c.output)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if err := s.table.WriteHTML(f); err != nil {
		f.Close()
		return c.app.fail(ctx, c.Name(), err)
	}
	if err := f.Close(); err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	c.app.rendered(ctx, "html", len(s.table.Rows()))
	return subcommands.ExitSuccess
}

type totalCmd struct {
	app *App
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the formatted total" }
func (*totalCmd) Usage() string {
	return `budget total

  Prints the signed total of all entries, expenses subtracted.
`
}

func (*totalCmd) SetFlags(*flag.FlagSet) {}

func (c *totalCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.app.open(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	fmt.Fprintln(c.app.stdout(), s.table.TotalDisplay())
	return subcommands.ExitSuccess
}

func (a *App) rendered(ctx context.Context, format string, rows int) {
	a.logger(ctx).WithComponent(log.ComponentView).DebugContext(ctx, "Table rendered",
		log.FieldFormat, format, log.FieldRows, rows, log.FieldOperation, log.OpRender)
}
