package view

import (
	"github.com/carelink-lab/carelink/pkg/domain/model"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// PageFrame composes the navigation shell, the header and the content region
func PageFrame(page *model.Page, content ...g.Node) g.Node {
	return Document(page.Title,
		NavigationShell(page.Shell),
		html.Div(
			html.Class("frame"),
			Header(page),
			html.Main(
				html.Class("content"),
				g.Group(content),
			),
		),
	)
}

// Header renders the page title, the patient name and the menu control
func Header(page *model.Page) g.Node {
	return html.Header(
		html.Class("header"),
		html.A(
			html.Class("button button--menu"),
			html.Href(menuOpenURL(page.Path, page.Shell.State)),
			g.Attr("aria-label", "Open navigation"),
			g.Attr("data-shell", "menu"),
			icon("menu"),
		),
		html.H1(html.Class("header__title"), g.Text(page.Title)),
		html.Span(html.Class("header__patient"), g.Text(page.Patient.Name)),
	)
}
