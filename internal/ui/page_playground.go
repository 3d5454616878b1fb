package ui

import (
	"fmt"
	"net/url"

	"nrql2dql/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// exampleQueries prefill the playground textarea via /ui?example=N.
var exampleQueries = []string{
	"SELECT count(*) FROM Transaction SINCE 1 hour ago",
	"SELECT average(duration) FROM Transaction WHERE appName = 'MyApp' FACET name SINCE 30 minutes ago LIMIT 10",
	"SELECT * FROM Log WHERE message LIKE '%timeout%' SINCE 2 hours ago",
	"SELECT uniqueCount(userId) FROM PageView FACET countryCode SINCE 1 week ago",
	"SELECT percentile(duration, 95) FROM Transaction FACET appName SINCE 1 day ago",
}

func playgroundPage(queryText string, result *domain.Result) Node {
	resultNode := Node(P(Class(mutedClass()), Text("Convert a query to see the result.")))
	if result != nil {
		resultNode = resultCard(result)
	}

	return appPage(
		"Playground",
		"playground",
		Div(
			Class(cardClass()),
			Form(
				Method("post"),
				Action("/ui/convert"),
				Label(Text("NRQL")),
				Textarea(Name("query"), Required(), Text(queryText)),
				Div(
					Class("button-row"),
					Button(Type("submit"), Class(primaryButtonClass()), Text("Convert")),
				),
			),
			H2(Text("Examples")),
			exampleLinks(),
		),
		resultNode,
	)
}

func exampleLinks() Node {
	links := make([]Node, 0, len(exampleQueries))
	for i := range exampleQueries {
		q := url.Values{}
		q.Set("example", fmt.Sprintf("%d", i+1))
		links = append(links, Li(A(Href("/ui?"+q.Encode()), Code(Text(exampleQueries[i])))))
	}
	return Ul(Class("diag-list"), Group(links))
}

func resultCard(result *domain.Result) Node {
	sections := []Node{
		H2(Text("DQL")),
		Div(Class("label-row"), queryTypeLabel(result.QueryType), confidenceLabel(result.Confidence)),
		Pre(Class("query-output"), Code(Text(result.ConvertedQuery))),
	}

	if len(result.Warnings) > 0 {
		items := make([]Node, 0, len(result.Warnings))
		for i := range result.Warnings {
			items = append(items, Li(Text(result.Warnings[i])))
		}
		sections = append(sections, H2(Text("Warnings")), Ul(Class("diag-list"), Group(items)))
	}

	if len(result.ManualReviewItems) > 0 {
		items := make([]Node, 0, len(result.ManualReviewItems))
		for i := range result.ManualReviewItems {
			items = append(items, Li(Text(result.ManualReviewItems[i])))
		}
		sections = append(sections, H2(Text("Needs manual review")), Ul(Class("diag-list"), Group(items)))
	}

	if len(result.FieldMappingsApplied) > 0 {
		rows := make([]Node, 0, len(result.FieldMappingsApplied))
		for _, m := range result.FieldMappingsApplied {
			rows = append(rows, Tr(Td(Code(Text(m.Source))), Td(Code(Text(m.Target)))))
		}
		sections = append(sections,
			H2(Text("Field mappings applied")),
			Table(
				THead(Tr(Th(Text("NRQL field")), Th(Text("DQL field")))),
				TBody(Group(rows)),
			),
		)
	}

	return Div(Class(cardClass()), Group(sections))
}
