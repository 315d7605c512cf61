package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// entryRecord is the persisted shape of an Entry.
type entryRecord struct {
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Amount      jsonAmount `json:"amount"`
}

// jsonAmount writes a JSON number and reads anything: numbers, numeric
// strings, null or garbage, the last two as zero.
type jsonAmount struct {
	decimal.Decimal
}

func (a jsonAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *jsonAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = ParseAmount(s)
		return nil
	}
	a.Decimal = ParseAmount(string(b))
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	t := e.Type
	if !t.Valid() {
		t = Income
	}
	return json.Marshal(entryRecord{
		Date:        e.Date,
		Description: e.Description,
		Type:        string(t),
		Amount:      jsonAmount{e.Amount},
	})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var rec entryRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	e.Date = rec.Date
	e.Description = rec.Description
	e.Type = EntryType(rec.Type)
	e.Amount = rec.Amount.Decimal
	return nil
}

// MarshalEntries serializes a collection as a JSON array. An empty
// collection is written as [] rather than null.
func MarshalEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal entries: %w", err)
	}
	return b, nil
}

// UnmarshalEntries parses a persisted collection. Blank input is an empty
// collection; anything that is not an array of objects is an error.
// Entry types are left as stored so callers can apply their own defaults.
func UnmarshalEntries(b []byte) ([]Entry, error) {
	if strings.TrimSpace(string(b)) == "" {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	if entries == nil {
		// literal null
		entries = []Entry{}
	}
	return entries, nil
}
