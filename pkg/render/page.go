package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/modal/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// ClientScript is inline JavaScript appended to the end of the body.
	ClientScript string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, Document(page)); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Document builds the html element for page. Inline styles and the client
// script are emitted as raw text.
func Document(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	return vdom.Html(
		vdom.Lang(lang),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
			vdom.When(page.Title != "", func() *vdom.VNode {
				return vdom.Title(page.Title)
			}),
			vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
				return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
			}),
			vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
				return vdom.Style(vdom.Raw(css))
			}),
		),
		vdom.Body(
			page.Body,
			vdom.If(page.ClientScript != "", vdom.Script(vdom.Raw(page.ClientScript))),
		),
	)
}
