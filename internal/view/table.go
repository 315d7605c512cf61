package view

import (
	"fmt"
	"slices"

	"budget/internal/core"

	"github.com/shopspring/decimal"
)

// RowValues holds the raw input values of a row.
type RowValues struct {
	Date        string
	Description string
	Type        string
	Amount      string
}

func (v RowValues) get(f Field) string {
	switch f {
	case FieldDate:
		return v.Date
	case FieldDescription:
		return v.Description
	case FieldType:
		return v.Type
	default:
		return v.Amount
	}
}

func (v *RowValues) set(f Field, value string) {
	switch f {
	case FieldDate:
		v.Date = value
	case FieldDescription:
		v.Description = value
	case FieldType:
		// A select only holds one of its options.
		if t, err := core.ParseEntryType(value); err == nil {
			v.Type = string(t)
		} else {
			v.Type = ""
		}
	case FieldAmount:
		v.Amount = value
	}
}

// Entry coerces the raw values: unknown types read as income and
// non-numeric amounts as zero.
func (v RowValues) Entry() core.Entry {
	return core.Entry{
		Date:        v.Date,
		Description: v.Description,
		Type:        core.CoerceEntryType(v.Type),
		Amount:      core.ParseAmount(v.Amount),
	}
}

type listener[F any] struct {
	id int
	fn F
}

type row struct {
	ref    RowRef
	values RowValues
	change []listener[func(Field)]
	del    []listener[func(RowRef)]
}

// Table is a headless View. It is not safe for concurrent use; callers
// serialize events the way a UI event loop would.
type Table struct {
	rows     []*row
	total    string
	newEntry []listener[func()]
	nextRef  RowRef
	nextID   int
}

var _ View = (*Table)(nil)

// NewTable returns an empty table showing a zero total.
func NewTable() *Table {
	return &Table{total: core.FormatUSD(decimal.Zero)}
}

func (t *Table) find(ref RowRef) (int, *row) {
	for i, r := range t.rows {
		if r.ref == ref {
			return i, r
		}
	}
	return -1, nil
}

func (t *Table) RenderRows(entries []core.Entry) []RowRef {
	t.rows = nil
	refs := make([]RowRef, 0, len(entries))
	for _, e := range entries {
		refs = append(refs, t.AppendRow(e))
	}
	return refs
}

func (t *Table) AppendRow(e core.Entry) RowRef {
	t.nextRef++
	r := &row{ref: t.nextRef}
	r.values.set(FieldDate, e.Date)
	r.values.set(FieldDescription, e.Description)
	r.values.set(FieldType, string(e.Type))
	r.values.set(FieldAmount, core.FormatAmount(e.Amount))
	t.rows = append(t.rows, r)
	return r.ref
}

// RemoveRow drops the row together with any listener still attached to it.
func (t *Table) RemoveRow(ref RowRef) error {
	i, _ := t.find(ref)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownRow, ref)
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

func (t *Table) ReadRows() []core.Entry {
	entries := make([]core.Entry, 0, len(t.rows))
	for _, r := range t.rows {
		entries = append(entries, r.values.Entry())
	}
	return entries
}

func (t *Table) SetTotalDisplay(text string) {
	t.total = text
}

// TotalDisplay returns the text of the summary footer.
func (t *Table) TotalDisplay() string {
	return t.total
}

func (t *Table) OnNewEntry(fn func()) Subscription {
	t.nextID++
	id := t.nextID
	t.newEntry = append(t.newEntry, listener[func()]{id: id, fn: fn})
	return subscription(func() {
		t.newEntry = removeListener(t.newEntry, id)
	})
}

func (t *Table) OnChange(ref RowRef, fn func(Field)) (Subscription, error) {
	_, r := t.find(ref)
	if r == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRow, ref)
	}
	t.nextID++
	id := t.nextID
	r.change = append(r.change, listener[func(Field)]{id: id, fn: fn})
	return subscription(func() {
		r.change = removeListener(r.change, id)
	}), nil
}

func (t *Table) OnDelete(ref RowRef, fn func(RowRef)) (Subscription, error) {
	_, r := t.find(ref)
	if r == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRow, ref)
	}
	t.nextID++
	id := t.nextID
	r.del = append(r.del, listener[func(RowRef)]{id: id, fn: fn})
	return subscription(func() {
		r.del = removeListener(r.del, id)
	}), nil
}

func removeListener[F any](ls []listener[F], id int) []listener[F] {
	return slices.DeleteFunc(ls, func(l listener[F]) bool { return l.id == id })
}

// Rows returns the refs of all rows in display order.
func (t *Table) Rows() []RowRef {
	refs := make([]RowRef, len(t.rows))
	for i, r := range t.rows {
		refs[i] = r.ref
	}
	return refs
}

// Row returns the ref of the row at a 1-based position.
func (t *Table) Row(pos int) (RowRef, error) {
	if pos < 1 || pos > len(t.rows) {
		return 0, fmt.Errorf("%w: position %d of %d", ErrUnknownRow, pos, len(t.rows))
	}
	return t.rows[pos-1].ref, nil
}

// Values returns the raw inputs of a row.
func (t *Table) Values(ref RowRef) (RowValues, error) {
	_, r := t.find(ref)
	if r == nil {
		return RowValues{}, fmt.Errorf("%w: %d", ErrUnknownRow, ref)
	}
	return r.values, nil
}

// ListenerCount reports every listener currently attached to the table.
func (t *Table) ListenerCount() int {
	n := len(t.newEntry)
	for _, r := range t.rows {
		n += len(r.change) + len(r.del)
	}
	return n
}

// ClickNewEntry dispatches a click on the creation control.
func (t *Table) ClickNewEntry() {
	for _, l := range slices.Clone(t.newEntry) {
		l.fn()
	}
}

// SetField commits a new value into one input of a row and dispatches the
// row's change event. Type values outside the select options clear it.
func (t *Table) SetField(ref RowRef, f Field, value string) error {
	f, err := ParseField(string(f))
	if err != nil {
		return err
	}
	_, r := t.find(ref)
	if r == nil {
		return fmt.Errorf("%w: %d", ErrUnknownRow, ref)
	}
	r.values.set(f, value)
	for _, l := range slices.Clone(r.change) {
		l.fn(f)
	}
	return nil
}

// ClickDelete dispatches a click on the delete control of a row.
func (t *Table) ClickDelete(ref RowRef) error {
	_, r := t.find(ref)
	if r == nil {
		return fmt.Errorf("%w: %d", ErrUnknownRow, ref)
	}
	for _, l := range slices.Clone(r.del) {
		l.fn(ref)
	}
	return nil
}
