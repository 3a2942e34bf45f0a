package view

import (
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

// NavigationShell renders the backdrop (only while open) and the sidebar
func NavigationShell(shell model.ShellView) g.Node {
	closeURL := model.ShellEvent{
		Kind:  model.ShellEventClose,
		From:  shell.ActivePath,
		State: shell.State,
	}.URL()

	nodes := g.Group{}
	if shell.Backdrop {
		nodes = append(nodes, html.A(
			html.Class("backdrop"),
			html.Href(closeURL),
			g.Attr("aria-label", "Close navigation"),
			g.Attr("data-shell", "backdrop"),
		))
	}

	transform := "sidebar--" + string(shell.Transform)
	return append(nodes,
		html.Aside(
			components.Classes{
				"sidebar": true,
				transform: true,
			},
			g.Attr("data-sidebar", shell.State.String()),
			html.Div(
				html.Class("sidebar__header"),
				html.Span(g.Text("CareLink")),
				html.A(
					html.Class("sidebar__close"),
					html.Href(closeURL),
					g.Attr("aria-label", "Close navigation"),
					g.Attr("data-shell", "close"),
					g.Text("×"),
				),
			),
			html.Nav(
				html.Class("sidebar__nav"),
				g.Map(shell.Items, func(item model.NavItemView) g.Node {
					return navItem(shell, item)
				}),
			),
			html.Div(
				html.Class("sidebar__footer"),
				logoutForm(shell),
			),
		),
	)
}

func navItem(shell model.ShellView, item model.NavItemView) g.Node {
	href := model.ShellEvent{
		Kind:   model.ShellEventNavigate,
		From:   shell.ActivePath,
		State:  shell.State,
		Target: item.Path,
	}.URL()

	return html.A(
		components.Classes{
			"nav-item":         true,
			"nav-item--active": item.Active,
		},
		html.Href(href),
		g.Attr("data-path", item.Path.String()),
		g.If(item.Active, g.Attr("aria-current", "page")),
		icon(item.Icon),
		html.Span(g.Text(item.Label)),
	)
}

func logoutForm(shell model.ShellView) g.Node {
	return html.Form(
		html.Method("post"),
		html.Action(model.ShellEvent{
			Kind: model.ShellEventLogout,
			From: shell.ActivePath,
		}.URL()),
		html.Button(
			html.Type("submit"),
			html.Class("nav-item button"),
			icon("log-out"),
			g.Text("Logout"),
		),
	)
}

// menuOpenURL is where the header's menu control points
func menuOpenURL(path types.Path, state types.SidebarState) string {
	return model.ShellEvent{
		Kind:  model.ShellEventMenuOpen,
		From:  path,
		State: state,
	}.URL()
}
