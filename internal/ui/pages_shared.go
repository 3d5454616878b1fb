package ui

import (
	"strconv"
	"strings"

	"nrql2dql/internal/domain"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
	Icon  string
}

var navItems = []navItem{
	{Label: "Playground", Href: "/ui", Key: "playground", Icon: "arrow-right-left"},
	{Label: "Reference", Href: "/ui/reference", Key: "reference", Icon: "book-open"},
}

func appPage(title, active string, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "app-nav-link"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, A(
			Href(item.Href),
			Class(className),
			I(Class("nav-icon"), Attr("data-lucide", item.Icon), Attr("aria-hidden", "true")),
			Span(Text(item.Label)),
		))
	}

	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | NRQL to DQL")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			Link(Rel("stylesheet"), Href("/ui/static/app.css")),
			Script(Src("https://unpkg.com/lucide@latest/dist/umd/lucide.min.js")),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("app-shell"),
				Aside(
					Class("app-sidebar"),
					Div(
						Class("brand"),
						Strong(Text("NRQL to DQL")),
						P(Class(mutedClass()), Text("Monitoring query translator")),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(
					Class("app-main"),
					H1(Class("page-title"), Text(title)),
					Div(Class("content"), Group(body)),
				),
			),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

func cardClass(extra ...string) string {
	parts := []string{"card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "muted"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

// confidenceLabel renders the confidence as a colored pill.
func confidenceLabel(c domain.Confidence) Node {
	tone := "severe"
	switch c {
	case domain.ConfidenceHigh:
		tone = "success"
	case domain.ConfidenceMedium:
		tone = "attention"
	}
	return Span(Class("label label-"+tone), Text("confidence: "+string(c)))
}

func queryTypeLabel(t domain.QueryType) Node {
	return Span(Class("label"), Text("type: "+string(t)))
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func quickFilterCard(placeholder string) Node {
	return Div(
		Class(cardClass("toolbar")),
		data.Signals(map[string]any{"q": ""}),
		Label(Class("sr-only"), Text("Quick filter")),
		Input(Type("search"), Class("form-control"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
	)
}
