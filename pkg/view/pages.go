package view

import (
	"net/http"
	"strconv"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

// Page renders a patient page inside the page frame
func Page(page *model.Page) g.Node {
	return PageFrame(page, pageContent(page)...)
}

func pageContent(page *model.Page) []g.Node {
	switch page.Path {
	case types.PathDashboard:
		return []g.Node{
			SummaryCards(page.SummaryCards),
			section("Upcoming Appointments", AppointmentList(page.Appointments)),
			section("Recent Lab Results", LabResultsTable(page.LabResults)),
		}
	case types.PathAppointments:
		return []g.Node{AppointmentList(page.Appointments)}
	case types.PathLabResults:
		return []g.Node{LabResultsTable(page.LabResults)}
	case types.PathPrescriptions:
		return []g.Node{PrescriptionList(page.Prescriptions)}
	case types.PathRecords:
		return []g.Node{RecordList(page.Records)}
	default:
		return []g.Node{empty("Nothing to show here yet.")}
	}
}

// Landing renders the root page
func Landing() g.Node {
	return Document("Welcome",
		html.Main(
			html.Class("centered"),
			html.H1(g.Text("CareLink Patient Portal")),
			html.P(g.Text("View your appointments, prescriptions, lab results and medical records in one place.")),
			html.Div(
				html.Class("actions"),
				html.A(html.Class("button button--primary"), html.Href(types.PathRoleSelection.String()), g.Text("Sign in")),
				html.A(html.Class("button"), html.Href(types.PathRegister.String()), g.Text("Register")),
			),
		),
	)
}

// RoleSelection renders the role selection page
func RoleSelection(page *model.RoleSelection) g.Node {
	return Document(model.PageTitle(types.PathRoleSelection),
		html.Main(
			html.Class("centered"),
			html.H1(g.Text(model.PageTitle(types.PathRoleSelection))),
			g.If(page.Notice != "", html.P(html.Class("notice"), g.Attr("role", "status"), g.Text(page.Notice))),
			html.Ul(
				html.Class("list"),
				g.Map(page.Options, func(opt model.RoleOption) g.Node {
					return html.Li(
						components.Classes{
							"card":              true,
							"role":              true,
							"role--unavailable": !opt.Available,
						},
						g.Attr("data-role", opt.Role.String()),
						g.Iff(opt.Available, func() g.Node {
							return html.A(html.Class("button button--primary"), html.Href(opt.Href), g.Text(opt.Label))
						}),
						g.If(!opt.Available, html.Span(g.Text(opt.Label+" (coming soon)"))),
					)
				}),
			),
			html.A(html.Href(types.PathRoot.String()), g.Text("Back to home")),
		),
	)
}

// ErrorPage renders a minimal error page
func ErrorPage(status int, message string) g.Node {
	title := http.StatusText(status)
	return Document(title,
		html.Main(
			html.Class("centered"),
			html.H1(g.Text(strconv.Itoa(status)+" "+title)),
			html.P(g.Text(message)),
			html.A(html.Href(types.PathDashboard.String()), g.Text("Back to dashboard")),
		),
	)
}
