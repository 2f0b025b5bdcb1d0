// Package web embeds the rendered page templates and the fixed static
// files served for manual testing.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var StaticFS embed.FS

// Templates holds the parsed home and admin page templates.
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
