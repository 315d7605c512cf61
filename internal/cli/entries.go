package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"budget/internal/view"

	"github.com/google/subcommands"
)

type addCmd struct {
	app         *App
	date        string
	description string
	typ         string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new entry" }
func (*addCmd) Usage() string {
	return `budget add [-date <YYYY-MM-DD>] [-description <text>] [-type income|expense] [-amount <n>]

  Clicks "New Entry" and fills the new row. Omitted fields keep their
  defaults: today, empty description, income, 0.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Entry date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.description, "description", "", "Free text description.")
	f.StringVar(&c.typ, "type", "", "Entry type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Amount, always positive; the type sets the sign.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(c.app.stderr(), "Error: add takes no positional arguments.")
		return subcommands.ExitUsageError
	}
	s, err := c.app.open(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	s.table.ClickNewEntry()
	rows := s.table.Rows()
	ref := rows[len(rows)-1]
	current, err := s.table.Values(ref)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	// The date is always committed so the new row gets persisted.
	date := current.Date
	if c.date != "" {
		date = c.date
	}
	edits := []struct {
		field view.Field
		value string
		set   bool
	}{
		{view.FieldDate, date, true},
		{view.FieldDescription, c.description, c.description != ""},
		{view.FieldType, c.typ, c.typ != ""},
		{view.FieldAmount, c.amount, c.amount != ""},
	}
	for _, e := range edits {
		if !e.set {
			continue
		}
		if err := s.table.SetField(ref, e.field, e.value); err != nil {
			return c.app.fail(ctx, c.Name(), err)
		}
		if err := s.widget.Err(); err != nil {
			return c.app.fail(ctx, c.Name(), err)
		}
	}

	fmt.Fprintf(c.app.stdout(), "Added entry %d. Total: %s\n", len(rows), s.table.TotalDisplay())
	return subcommands.ExitSuccess
}

type setCmd struct {
	app *App
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change one field of an entry" }
func (*setCmd) Usage() string {
	return `budget set <row> <field> <value>

  Changes a field (date, description, type, amount) of the entry at the
  given 1-based row and saves the whole table.
`
}

func (*setCmd) SetFlags(*flag.FlagSet) {}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(c.app.stderr(), "Error: set requires <row> <field> <value>.")
		return subcommands.ExitUsageError
	}
	pos, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(c.app.stderr(), "Error: invalid row %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	field, err := view.ParseField(f.Arg(1))
	if err != nil {
		fmt.Fprintf(c.app.stderr(), "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := c.app.open(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	ref, err := s.table.Row(pos)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if err := s.table.SetField(ref, field, f.Arg(2)); err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if err := s.widget.Err(); err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	fmt.Fprintf(c.app.stdout(), "Updated entry %d. Total: %s\n", pos, s.table.TotalDisplay())
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	app *App
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an entry" }
func (*deleteCmd) Usage() string {
	return `budget delete <row>

  Clicks the delete control of the entry at the given 1-based row.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.app.stderr(), "Error: delete requires <row>.")
		return subcommands.ExitUsageError
	}
	pos, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(c.app.stderr(), "Error: invalid row %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	s, err := c.app.open(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	ref, err := s.table.Row(pos)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if err := s.table.ClickDelete(ref); err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if err := s.widget.Err(); err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	fmt.Fprintf(c.app.stdout(), "Deleted entry %d. Total: %s\n", pos, s.table.TotalDisplay())
	return subcommands.ExitSuccess
}
