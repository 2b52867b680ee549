package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	cart    *template.Template
	catalog *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"catalogRoute":  func() string { return CatalogRoute },
		"cartRoute":     func() string { return CartRoute },
		"checkoutRoute": func() string { return CheckoutRoute },
		"thumb":         func() int { return ThumbnailSize },
	}

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html", "templates/add_to_cart.html", "templates/stepper.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	cart, err := parsePage(base, "templates/cart.html")
	if err != nil {
		return nil, err
	}
	catalog, err := parsePage(base, "templates/catalog.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{cart: cart, catalog: catalog}, nil
}

func parsePage(base *template.Template, name string) (*template.Template, error) {
	clone, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layout: %w", err)
	}
	page, err := clone.ParseFS(templateFS, name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return page, nil
}

func (r *Renderer) Cart(w io.Writer, page CartPage) error {
	return execute(w, r.cart, page)
}

func (r *Renderer) Catalog(w io.Writer, page CatalogPage) error {
	return execute(w, r.catalog, page)
}

// execute buffers the page; nothing reaches w when a template fails.
func execute(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("execute %s: %w", t.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
