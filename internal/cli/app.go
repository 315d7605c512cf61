// Package cli drives the tracker widget from the command line. Every
// invocation is one page session: the widget is mounted, loads the store,
// receives a single interaction and is discarded.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"budget/internal/log"
	"budget/internal/store"
	"budget/internal/tracker"
	"budget/internal/view"

	"github.com/google/subcommands"
)

// App holds what every subcommand needs to open a session. A nil Logger
// means the logger carried by the command context.
type App struct {
	Store    store.Store
	Selector string
	Logger   *log.Logger
	Out      io.Writer
	ErrOut   io.Writer
	Now      func() time.Time
}

type session struct {
	widget *tracker.Widget
	table  *view.Table
}

// logger prefers the explicit Logger and falls back to the one carried by ctx.
func (a *App) logger(ctx context.Context) *log.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return log.FromContext(ctx)
}

func (a *App) stdout() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) stderr() io.Writer {
	if a.ErrOut == nil {
		return os.Stderr
	}
	return a.ErrOut
}

// open mounts a widget into a fresh document holding the configured
// container and loads the persisted entries.
func (a *App) open(ctx context.Context) (*session, error) {
	doc := view.NewDocument(a.Selector)
	opts := []tracker.Option{tracker.WithLogger(a.logger(ctx))}
	if a.Now != nil {
		opts = append(opts, tracker.WithClock(a.Now))
	}
	w := tracker.New(doc, a.Store, opts...)
	if err := w.Initialize(ctx, a.Selector); err != nil {
		return nil, err
	}
	tbl, ok := doc.Table(a.Selector)
	if !ok {
		return nil, fmt.Errorf("no table mounted in %q", a.Selector)
	}
	return &session{widget: w, table: tbl}, nil
}

// fail reports err on stderr and maps it to an exit status.
func (a *App) fail(ctx context.Context, command string, err error) subcommands.ExitStatus {
	a.logger(ctx).WithComponent(log.ComponentCLI).ErrorContext(ctx, "Command failed",
		log.FieldCommand, command, log.FieldError, err.Error())
	fmt.Fprintf(a.stderr(), "Error: %v\n", err)
	return subcommands.ExitFailure
}

// Register adds the tracker subcommands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addCmd{app: app}, "entries")
	c.Register(&setCmd{app: app}, "entries")
	c.Register(&deleteCmd{app: app}, "entries")

	c.Register(&showCmd{app: app}, "display")
	c.Register(&htmlCmd{app: app}, "display")
	c.Register(&totalCmd{app: app}, "display")
}
