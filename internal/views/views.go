package views

import (
	"embed"
	"html/template"

	"github.com/mesa-app/mesa/internal/session"
)

//go:embed templates/*.html
var templates embed.FS

// IndexTemplate is the name of the single page rendered by the site
const IndexTemplate = "index.html"

// Index is the data the home page renders
type Index struct {
	UserLoggedIn bool
	UserName     string
	Flashes      []session.Flash
}

// Load parses the embedded page templates
func Load() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
