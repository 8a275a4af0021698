package partners

import (
	"embed"
	"html/template"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("partners").ParseFS(webFS, "web/templates/*.html")
}
