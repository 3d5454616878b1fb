package ui

import (
	"nrql2dql/internal/mappings"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

func referencePage(snap mappings.Snapshot, operators []mappings.Entry) Node {
	return appPage(
		"Reference",
		"reference",
		quickFilterCard("Filter mappings"),
		entryTableCard("Attributes", "NRQL attribute", "DQL field", snap.Fields),
		functionTableCard(snap.Functions),
		eventTableCard(snap.Events),
		entryTableCard("Operators", "NRQL", "DQL", operators),
		entryTableCard("Time ranges", "NRQL phrase", "DQL offset", snap.TimeLiterals),
	)
}

func entryTableCard(title, sourceHeader, targetHeader string, entries []mappings.Entry) Node {
	rows := make([]Node, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Tr(
			data.Show(containsExpr(e.Source+" "+e.Target)),
			Td(Code(Text(e.Source))),
			Td(Code(Text(e.Target))),
		))
	}
	return Div(
		Class(cardClass("table-wrap")),
		H2(Text(title)),
		Table(
			THead(Tr(Th(Text(sourceHeader)), Th(Text(targetHeader)))),
			TBody(Group(rows)),
		),
	)
}

func functionTableCard(entries []mappings.Entry) Node {
	rows := make([]Node, 0, len(entries))
	for _, e := range entries {
		target := Node(Code(Text(e.Target)))
		if e.Target == "" {
			target = Span(Class(mutedClass()), Text("manual conversion required"))
		}
		rows = append(rows, Tr(
			data.Show(containsExpr(e.Source+" "+e.Target)),
			Td(Code(Text(e.Source))),
			Td(target),
		))
	}
	return Div(
		Class(cardClass("table-wrap")),
		H2(Text("Aggregations")),
		Table(
			THead(Tr(Th(Text("NRQL function")), Th(Text("DQL function")))),
			TBody(Group(rows)),
		),
	)
}

func eventTableCard(events []mappings.EventEntry) Node {
	rows := make([]Node, 0, len(events))
	for _, e := range events {
		metricKey := Node(Span(Class(mutedClass()), Text("-")))
		if e.MetricKey != "" {
			metricKey = Code(Text(e.MetricKey))
		}
		rows = append(rows, Tr(
			data.Show(containsExpr(e.Name+" "+e.Source+" "+e.MetricKey)),
			Td(Code(Text(e.Name))),
			Td(Text(e.Source)),
			Td(metricKey),
		))
	}
	return Div(
		Class(cardClass("table-wrap")),
		H2(Text("Event types")),
		Table(
			THead(Tr(Th(Text("NRQL event")), Th(Text("Data source")), Th(Text("Metric key")))),
			TBody(Group(rows)),
		),
	)
}
