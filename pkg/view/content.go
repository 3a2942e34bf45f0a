package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const dateLayout = "Jan 2, 2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func statusBadge(status string) g.Node {
	return html.Span(
		html.Class("status status--"+strings.ToLower(status)),
		g.Text(status),
	)
}

func section(title string, body g.Node) g.Node {
	return html.Section(
		html.H2(html.Class("section__title"), g.Text(title)),
		body,
	)
}

func empty(message string) g.Node {
	return html.P(html.Class("empty"), g.Text(message))
}

// SummaryCards renders the dashboard headline cards
func SummaryCards(cards []model.SummaryCard) g.Node {
	if len(cards) == 0 {
		return empty("No summary available.")
	}

	return html.Div(
		html.Class("cards"),
		g.Map(cards, func(card model.SummaryCard) g.Node {
			return html.Div(
				html.Class("card"),
				g.Attr("data-key", card.ID.String()),
				icon(card.Icon),
				html.Div(html.Class("card__title"), g.Text(card.Title)),
				html.P(html.Class("card__value"), g.Text(card.Value)),
				g.If(card.Detail != "", html.P(html.Class("card__detail"), g.Text(card.Detail))),
			)
		}),
	)
}

// AppointmentList renders appointments. Reschedule and Cancel controls are
// only offered for upcoming appointments.
func AppointmentList(appts []model.Appointment) g.Node {
	if len(appts) == 0 {
		return empty("No appointments scheduled.")
	}

	return html.Ul(
		html.Class("list"),
		g.Map(appts, func(a model.Appointment) g.Node {
			return html.Li(
				html.Class("card appointment"),
				g.Attr("data-key", a.ID.String()),
				g.Attr("data-status", a.Status.String()),
				html.Div(
					html.Strong(g.Text(a.Doctor)),
					g.If(a.Specialty != "", html.Span(g.Text(" · "+a.Specialty))),
				),
				html.Div(
					html.Class("card__detail"),
					g.Text(formatDate(a.Date)),
					g.If(a.Time != "", g.Text(" at "+a.Time)),
				),
				g.If(a.Location != "", html.Div(html.Class("card__detail"), g.Text(a.Location))),
				statusBadge(a.Status.String()),
				g.If(a.IsUpcoming(), html.Div(
					html.Class("actions"),
					html.Button(
						html.Type("button"),
						html.Class("button button--primary"),
						g.Attr("data-action", "reschedule"),
						g.Text("Reschedule"),
					),
					html.Button(
						html.Type("button"),
						html.Class("button button--danger"),
						g.Attr("data-action", "cancel"),
						g.Text("Cancel"),
					),
				)),
			)
		}),
	)
}

// LabResultsTable renders lab results with one row per test
func LabResultsTable(results []model.LabResult) g.Node {
	if len(results) == 0 {
		return empty("No lab results yet.")
	}

	return html.Table(
		html.Class("table"),
		html.THead(
			html.Tr(
				html.Th(g.Text("Test")),
				html.Th(g.Text("Date")),
				html.Th(g.Text("Result")),
				html.Th(g.Text("Reference Range")),
				html.Th(g.Text("Status")),
			),
		),
		html.TBody(
			g.Map(results, func(r model.LabResult) g.Node {
				rng := r.Range
				if rng == "" {
					rng = "-"
				}
				return html.Tr(
					html.Class("row--"+strings.ToLower(r.Status.String())),
					g.Attr("data-key", r.ID.String()),
					html.Td(g.Text(r.Test)),
					html.Td(g.Text(formatDate(r.Date))),
					html.Td(g.Text(r.Result)),
					html.Td(g.Text(rng)),
					html.Td(statusBadge(r.Status.String())),
				)
			}),
		),
	)
}

// PrescriptionList renders prescriptions. Refills are shown for active ones only.
func PrescriptionList(rxs []model.Prescription) g.Node {
	if len(rxs) == 0 {
		return empty("No prescriptions on file.")
	}

	return html.Ul(
		html.Class("list"),
		g.Map(rxs, func(rx model.Prescription) g.Node {
			return html.Li(
				html.Class("card prescription"),
				g.Attr("data-key", rx.ID.String()),
				g.Attr("data-status", rx.Status.String()),
				html.Div(
					html.Strong(g.Text(rx.Medication)),
					g.If(rx.Dosage != "", html.Span(g.Text(" "+rx.Dosage))),
				),
				g.If(rx.Frequency != "", html.Div(html.Class("card__detail"), g.Text(rx.Frequency))),
				g.If(rx.PrescribedBy != "", html.Div(
					html.Class("card__detail"),
					g.Text("Prescribed by "+rx.PrescribedBy+" on "+formatDate(rx.PrescribedAt)),
				)),
				statusBadge(rx.Status.String()),
				g.If(rx.IsActive(), html.Div(
					html.Class("card__detail refills"),
					g.Text("Refills remaining: "+strconv.Itoa(rx.Refills)),
				)),
			)
		}),
	)
}

// RecordList renders the medical records list
func RecordList(recs []model.MedicalRecord) g.Node {
	if len(recs) == 0 {
		return empty("No medical records available.")
	}

	return html.Ul(
		html.Class("list"),
		g.Map(recs, func(rec model.MedicalRecord) g.Node {
			return html.Li(
				html.Class("card record"),
				g.Attr("data-key", rec.ID.String()),
				html.Strong(g.Text(rec.Title)),
				html.Div(
					html.Class("card__detail"),
					g.Text(strings.Join(nonEmpty(rec.Kind, rec.Provider, formatDate(rec.Date)), " · ")),
				),
			)
		}),
	)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
