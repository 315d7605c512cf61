package web

import "embed"

// TemplatesFS embeds the widget markup templates.
//go:embed templates/*.html
var TemplatesFS embed.FS
