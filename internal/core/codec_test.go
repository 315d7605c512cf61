package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMarshalEntriesEmpty(t *testing.T) {
	b, err := MarshalEntries(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}

func TestMarshalEntriesShape(t *testing.T) {
	b, err := MarshalEntries([]Entry{
		{Date: "2025-01-01", Description: "salary", Type: Income, Amount: decimal.RequireFromString("100.5")},
		{Date: "2025-01-02", Description: "food", Type: "", Amount: decimal.Zero},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"date":"2025-01-01","description":"salary","type":"income","amount":100.5},` +
		`{"date":"2025-01-02","description":"food","type":"income","amount":0}]`
	if string(b) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", b, want)
	}
}

func TestUnmarshalEntriesLenient(t *testing.T) {
	in := `[{"date":"2025-01-01","description":"a","type":"expense","amount":40},
		{"date":"2025-01-02","description":"b","type":"income","amount":"12.5"},
		{"date":"2025-01-03","description":"c","type":"income","amount":null},
		{"description":"d"}]`
	got, err := UnmarshalEntries([]byte(in))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(got))
	}
	if got[0].Type != Expense || !got[0].Amount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if !got[1].Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("string amount not parsed: %s", got[1].Amount)
	}
	if !got[2].Amount.IsZero() {
		t.Fatalf("null amount should be zero, got %s", got[2].Amount)
	}
	if got[3].Date != "" || got[3].Type != "" {
		t.Fatalf("missing fields should stay empty: %+v", got[3])
	}
}

func TestUnmarshalEntriesMalformed(t *testing.T) {
	for _, in := range []string{"{not json", `{"date":"x"}`, `"text"`, `[1,2]`} {
		if _, err := UnmarshalEntries([]byte(in)); err == nil {
			t.Fatalf("%q expected error", in)
		}
	}
	for _, in := range []string{"", "  ", "null", "[]"} {
		got, err := UnmarshalEntries([]byte(in))
		if err != nil || len(got) != 0 {
			t.Fatalf("%q expected empty collection, got %v err=%v", in, got, err)
		}
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	in := []Entry{
		{Date: "2025-02-01", Description: "rent", Type: Expense, Amount: decimal.RequireFromString("950.00")},
		{Date: "2025-02-01", Description: "rent", Type: Expense, Amount: decimal.RequireFromString("950.00")},
		{Date: "2025-02-03", Description: "pay \"day\"", Type: Income, Amount: decimal.RequireFromString("0.1")},
	}
	b, err := MarshalEntries(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := UnmarshalEntries(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(in))
	}
	for i := range in {
		if !in[i].Equal(out[i]) {
			t.Fatalf("entry %d differs: %+v vs %+v", i, in[i], out[i])
		}
	}
}

func TestUnmarshalEntriesOutOfRangeAmounts(t *testing.T) {
	in := `[{"type":"income","amount":1e100000000},
		{"type":"income","amount":"1e-100000000"},
		{"type":"expense","amount":1e17},
		{"type":"income","amount":25}]`
	got, err := UnmarshalEntries([]byte(in))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i, e := range got[:3] {
		if !e.Amount.IsZero() {
			t.Fatalf("entry %d: out of range amount should read as zero, got %s", i, e.Amount)
		}
	}
	if !Total(got).Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected total 25, got %s", Total(got))
	}
}
