// Package tracker implements the budget tracker widget: it mounts a table
// into a host container, loads the persisted entries, and keeps the view,
// the store and the displayed total in sync after every mutation.
//
// The widget is event driven and not safe for concurrent use. Every field
// change and every delete rewrites the whole collection to the store;
// adding a blank row does not, so an untouched default row is never
// persisted on its own.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget/internal/core"
	"budget/internal/log"
	"budget/internal/store"
	"budget/internal/view"

	"github.com/shopspring/decimal"
)

var (
	// ErrMountNotFound is returned by Initialize when the host has no
	// container for the selector.
	ErrMountNotFound  = errors.New("mount container not found")
	ErrNotMounted     = errors.New("widget not mounted")
	ErrAlreadyMounted = errors.New("widget already mounted")
)

type Widget struct {
	host   view.Host
	store  store.Store
	key    string
	logger *log.Logger
	now    func() time.Time

	view   view.View
	create view.Subscription
	rows   map[view.RowRef][]view.Subscription
	total  decimal.Decimal
	err    error
}

type Option func(*Widget)

// WithLogger sets the logger used by the widget.
func WithLogger(l *log.Logger) Option {
	return func(w *Widget) { w.logger = l.WithComponent(log.ComponentTracker) }
}

// WithClock overrides the source of the current date for default rows.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// WithKey overrides the storage key. Meant for tests sharing a store.
func WithKey(key string) Option {
	return func(w *Widget) { w.key = key }
}

func New(host view.Host, st store.Store, opts ...Option) *Widget {
	w := &Widget{
		host:   host,
		store:  st,
		key:    store.EntriesKey,
		logger: log.Discard().WithComponent(log.ComponentTracker),
		now:    time.Now,
		rows:   make(map[view.RowRef][]view.Subscription),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Initialize mounts the widget into the container addressed by selector,
// wires the creation control and loads the persisted entries. A missing
// container or a failing store read is fatal and leaves nothing mounted.
func (w *Widget) Initialize(ctx context.Context, selector string) error {
	if w.view != nil {
		return ErrAlreadyMounted
	}
	v, err := w.host.Mount(selector)
	if err != nil {
		w.logger.ErrorContext(ctx, "Mount failed",
			log.FieldSelector, selector, log.FieldOperation, log.OpMount, log.FieldError, err.Error())
		return fmt.Errorf("%w %q: %w", ErrMountNotFound, selector, err)
	}
	w.view = v
	w.create = v.OnNewEntry(func() {
		w.AddEntry(ctx, nil)
	})
	w.logger.DebugContext(ctx, "Widget mounted",
		log.FieldSelector, selector, log.FieldOperation, log.OpMount)

	if err := w.Load(ctx); err != nil {
		w.unmount()
		return err
	}
	return nil
}

// unmount drops the view so a later Initialize starts from scratch.
func (w *Widget) unmount() {
	w.Close()
	w.view = nil
	w.total = decimal.Zero
}

// Load replaces the rows with the persisted collection and recomputes the
// total. Absent or malformed data loads as an empty collection; only a
// failing store read is reported.
func (w *Widget) Load(ctx context.Context) error {
	if w.view == nil {
		return ErrNotMounted
	}
	entries, err := w.readStore(ctx)
	if err != nil {
		return err
	}

	w.teardownRows()
	for i := range entries {
		entries[i] = entries[i].WithDefaults(w.now())
	}
	for _, ref := range w.view.RenderRows(entries) {
		w.wireRow(ctx, ref)
	}
	w.UpdateSummary()

	w.logger.DebugContext(ctx, "Entries loaded",
		log.NewFields().WithCollection(w.key, len(entries)).WithOperation(log.OpLoad).ToSlice()...)
	return nil
}

func (w *Widget) readStore(ctx context.Context) ([]core.Entry, error) {
	b, err := w.store.Get(ctx, w.key)
	if errors.Is(err, store.ErrNotFound) {
		return []core.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.key, err)
	}
	entries, err := core.UnmarshalEntries(b)
	if err != nil {
		w.logger.WarnContext(ctx, "Discarding malformed persisted entries",
			log.FieldKey, w.key, log.FieldBytes, len(b), log.FieldError, err.Error())
		return []core.Entry{}, nil
	}
	return entries, nil
}

// AddEntry appends a row populated from e, or a default row when e is nil,
// and wires its listeners. It does not persist. The zero ref is returned
// before Initialize.
func (w *Widget) AddEntry(ctx context.Context, e *core.Entry) view.RowRef {
	if w.view == nil {
		return 0
	}
	entry := core.DefaultEntry(w.now())
	if e != nil {
		entry = e.WithDefaults(w.now())
	}
	ref := w.view.AppendRow(entry)
	w.wireRow(ctx, ref)

	w.logger.DebugContext(ctx, "Entry row added",
		log.FieldRow, uint64(ref), log.FieldOperation, log.OpAdd)
	return ref
}

func (w *Widget) wireRow(ctx context.Context, ref view.RowRef) {
	var subs []view.Subscription
	if s, err := w.view.OnDelete(ref, func(r view.RowRef) {
		w.record(w.DeleteEntry(ctx, r))
	}); err == nil {
		subs = append(subs, s)
	}
	if s, err := w.view.OnChange(ref, func(f view.Field) {
		w.logger.DebugContext(ctx, "Entry field changed",
			log.FieldRow, uint64(ref), log.FieldField, f.String(), log.FieldOperation, log.OpEdit)
		w.record(w.Save(ctx))
	}); err == nil {
		subs = append(subs, s)
	}
	w.rows[ref] = subs
}

func (w *Widget) unwireRow(ref view.RowRef) {
	for _, s := range w.rows[ref] {
		s.Unsubscribe()
	}
	delete(w.rows, ref)
}

func (w *Widget) teardownRows() {
	for ref := range w.rows {
		w.unwireRow(ref)
	}
}

// DeleteEntry removes the row and persists the remaining collection.
func (w *Widget) DeleteEntry(ctx context.Context, ref view.RowRef) error {
	if w.view == nil {
		return ErrNotMounted
	}
	w.unwireRow(ref)
	if err := w.view.RemoveRow(ref); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	w.logger.DebugContext(ctx, "Entry row deleted",
		log.FieldRow, uint64(ref), log.FieldOperation, log.OpDelete)
	return w.Save(ctx)
}

// Save reads every row into a fresh collection, overwrites the store with
// it and refreshes the total. The total is refreshed even when the write
// fails so the display always matches the rows.
func (w *Widget) Save(ctx context.Context) error {
	if w.view == nil {
		return ErrNotMounted
	}
	entries := w.view.ReadRows()
	defer w.UpdateSummary()

	b, err := core.MarshalEntries(entries)
	if err != nil {
		return err
	}
	if err := w.store.Set(ctx, w.key, b); err != nil {
		w.logger.ErrorContext(ctx, "Failed to persist entries",
			log.NewFields().WithCollection(w.key, len(entries)).WithOperation(log.OpSave).WithError(err).ToSlice()...)
		return fmt.Errorf("write %s: %w", w.key, err)
	}

	w.logger.DebugContext(ctx, "Entries saved",
		log.NewFields().WithCollection(w.key, len(entries)).WithOperation(log.OpSave).ToSlice()...)
	return nil
}

// UpdateSummary recomputes the signed total from the rows and writes it,
// formatted as USD, into the summary display.
func (w *Widget) UpdateSummary() {
	if w.view == nil {
		return
	}
	w.total = core.Total(w.view.ReadRows())
	text := core.FormatUSD(w.total)
	w.view.SetTotalDisplay(text)
	w.logger.Debug("Summary updated", log.FieldTotal, text, log.FieldOperation, log.OpSummary)
}

// Total returns the total computed by the last summary update.
func (w *Widget) Total() decimal.Decimal {
	return w.total
}

// View returns the mounted view, or nil before Initialize.
func (w *Widget) View() view.View {
	return w.view
}

// Err returns the last persistence error raised from an event handler.
// It is cleared by the next successful handler.
func (w *Widget) Err() error {
	return w.err
}

func (w *Widget) record(err error) {
	w.err = err
}

// Close detaches every listener the widget registered.
func (w *Widget) Close() {
	w.teardownRows()
	if w.create != nil {
		w.create.Unsubscribe()
		w.create = nil
	}
}
