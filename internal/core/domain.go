package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// DateLayout is the ISO calendar form used for Entry.Date.
const DateLayout = "2006-01-02"

type (
	EntryType string

	// Entry is one financial record. It has no identity beyond its
	// position in the collection.
	Entry struct {
		Date        string
		Description string
		Type        EntryType
		Amount      decimal.Decimal // sign comes from Type
	}
)

var ErrInvalidType = errors.New("invalid entry type")

// ParseEntryType returns the type named by s, or Income with
// ErrInvalidType when s is not recognized. Matching is exact, as for the
// option values of a select: "Expense" is not a type.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return Income, ErrInvalidType
	}
}

// CoerceEntryType is ParseEntryType without the error.
func CoerceEntryType(s string) EntryType {
	t, _ := ParseEntryType(s)
	return t
}

// Valid reports whether t is one of the known types.
func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

func (t EntryType) String() string {
	return string(t)
}

// Today returns the current date of now in DateLayout.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// DefaultEntry is the blank row added by the "New Entry" control.
func DefaultEntry(now time.Time) Entry {
	return Entry{
		Date:   Today(now),
		Type:   Income,
		Amount: decimal.Zero,
	}
}

// WithDefaults fills the empty fields of e the way a freshly added row
// would: today's date, income type, zero amount.
func (e Entry) WithDefaults(now time.Time) Entry {
	if strings.TrimSpace(e.Date) == "" {
		e.Date = Today(now)
	}
	if !e.Type.Valid() {
		e.Type = Income
	}
	return e
}

// Signed returns the amount with expenses negated.
func (e Entry) Signed() decimal.Decimal {
	if e.Type == Expense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Equal compares entries field by field, amounts by numeric value.
func (e Entry) Equal(o Entry) bool {
	return e.Date == o.Date &&
		e.Description == o.Description &&
		e.Type == o.Type &&
		e.Amount.Equal(o.Amount)
}

// Total is the signed sum of all entry amounts.
func Total(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Signed())
	}
	return total
}
