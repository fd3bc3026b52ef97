// Package web holds the server-rendered page templates.
package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/dinerozz/planzo-web/pkg/utils"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"date": utils.FormatDate,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// Templates parses every page template. Pages share the "header" and "footer" blocks of
// layout.html.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
