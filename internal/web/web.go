// Package web holds the server-rendered pages. Every page is rendered through the
// "base" layout, which picks the body from the Page value of the template data.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	domain "github.com/BruksfildServices01/luxstyle-booking/internal/domain/appointment"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded pages with times shown in loc.
func Templates(loc *time.Location) (*template.Template, error) {
	return template.New("").
		Funcs(FuncMap(loc)).
		ParseFS(templatesFS, "templates/*.html")
}

func FuncMap(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string {
			return t.In(loc).Format("02/01/2006 15:04")
		},
		"price": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
		"statusLabel": func(s string) string {
			return domain.Status(s).Label()
		},
		"knownStatuses": func() []domain.Status {
			return domain.KnownStatuses()
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}
