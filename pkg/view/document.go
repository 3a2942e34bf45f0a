package view

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

// StylesheetPath is where the portal stylesheet is served
const StylesheetPath = "/static/portal.css"

// Document wraps body nodes into a full HTML5 page
func Document(title string, body ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title + " | CareLink",
		Language: "en",
		Head: []g.Node{
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.Link(html.Rel("stylesheet"), html.Href(StylesheetPath)),
		},
		Body: body,
	})
}

// icon renders a placeholder for a named icon
func icon(name string) g.Node {
	if name == "" {
		return g.Group{}
	}
	return html.Span(
		html.Class("icon icon--"+name),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
	)
}
