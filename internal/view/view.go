package view

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page - the data every template receives.
type Page struct {
	Title    string
	Identity *session.Identity
	BTCPrice string
	Notice   string
	Error    string
	Data     interface{}
}

var funcs = template.FuncMap{
	// balances are an 8-fraction-digit currency
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(8)
	},
	"percent": func(d decimal.Decimal) string {
		return d.String() + "%"
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("02 Jan 2006")
	},
}

// Renderer - parses the embedded templates once and renders page + layout
// pairs.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "glob templates")
	}

	pages := make(map[string]*template.Template)
	for _, name := range names {
		base := name[len("templates/"):]
		if base == "layout.html" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", base)
		}
		pages[base] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render - executes a page into a buffer first so a template failure still
// produces a clean 500 instead of a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	t, ok := r.pages[page]
	if !ok {
		logger.Error("Unknown template", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logger.Error("Failed to render template", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
