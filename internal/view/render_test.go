package view

import (
	"strings"
	"testing"

	"budget/internal/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func TestWriteHTML(t *testing.T) {
	tbl := NewTable()
	tbl.AppendRow(entry("2025-01-01", `<b>rent</b>`, core.Expense, "950"))
	tbl.SetTotalDisplay("-$950.00")

	var b strings.Builder
	if err := tbl.WriteHTML(&b); err != nil {
		t.Fatalf("write html: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		`<table class="budget-tracker">`,
		`<th>Description</th>`,
		`class="new-entry">New Entry</button>`,
		`<span class="total">-$950.00</span>`,
		`value="2025-01-01"`,
		`value="950"`,
		`<option value="expense" selected>Expense</option>`,
		`&lt;b&gt;rent&lt;/b&gt;`,
		`class="delete-entry"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("html missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<b>rent</b>") {
		t.Fatalf("description was not escaped")
	}
}

func TestWriteMarkdown(t *testing.T) {
	tbl := NewTable()
	tbl.AppendRow(entry("2025-01-01", "a|b", core.Income, "100"))
	tbl.AppendRow(entry("2025-01-02", "food", core.Expense, "40"))
	tbl.SetTotalDisplay("$60.00")

	var b strings.Builder
	if err := tbl.WriteMarkdown(&b); err != nil {
		t.Fatalf("write markdown: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"| 1 | 2025-01-01 | a\\|b | Income | 100 |",
		"| 2 | 2025-01-02 | food | Expense | 40 |",
		"**Total:** $60.00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

// The markdown must parse as one GFM table so terminal renderers lay it out
// as a grid, with escaped pipes kept inside their cell.
func TestWriteMarkdownParsesAsTable(t *testing.T) {
	tbl := NewTable()
	tbl.AppendRow(entry("2025-01-01", "a|b", core.Income, "100"))
	tbl.AppendRow(entry("", "", core.Expense, "0"))
	tbl.AppendRow(entry("2025-01-03", "line\nbreak", core.Income, "1.5"))

	var b strings.Builder
	if err := tbl.WriteMarkdown(&b); err != nil {
		t.Fatalf("write markdown: %v", err)
	}
	src := []byte(b.String())

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	var tables, rows int
	var cells []int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case extast.KindTable:
			tables++
		case extast.KindTableHeader, extast.KindTableRow:
			if n.Kind() == extast.KindTableRow {
				rows++
			}
			cells = append(cells, n.ChildCount())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if tables != 1 {
		t.Fatalf("expected one table, got %d:\n%s", tables, src)
	}
	if rows != 3 {
		t.Fatalf("expected 3 body rows, got %d:\n%s", rows, src)
	}
	for i, c := range cells {
		if c != 5 {
			t.Fatalf("line %d has %d cells, want 5:\n%s", i, c, src)
		}
	}
}
