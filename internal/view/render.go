package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	appweb "budget/web"
)

var loadTemplates = sync.OnceValues(func() (*template.Template, error) {
	return template.ParseFS(appweb.TemplatesFS, "templates/*.html")
})

type htmlRow struct {
	Index int
	RowValues
}

// WriteHTML renders the widget markup: header, entry rows, creation
// control and summary footer.
func (t *Table) WriteHTML(w io.Writer) error {
	tmpl, err := loadTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	data := struct {
		Rows  []htmlRow
		Total string
	}{Total: t.total}
	for i, r := range t.rows {
		data.Rows = append(data.Rows, htmlRow{Index: i + 1, RowValues: r.values})
	}
	if err := tmpl.ExecuteTemplate(w, "tracker", data); err != nil {
		return fmt.Errorf("render tracker: %w", err)
	}
	return nil
}

var typeLabels = map[string]string{"income": "Income", "expense": "Expense"}

// WriteMarkdown renders the table as a Markdown document with the rows
// numbered from 1.
func (t *Table) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	b.WriteString("| # | Date | Description | Type | Amount |\n")
	b.WriteString("|---:|---|---|---|---:|\n")
	for i, r := range t.rows {
		fmt.Fprintf(&b, "| %d |", i+1)
		for _, f := range Fields {
			v := r.values.get(f)
			if f == FieldType {
				v = typeLabels[v]
			}
			fmt.Fprintf(&b, " %s |", escapeCell(v))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n**Total:** %s\n", t.total)
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
