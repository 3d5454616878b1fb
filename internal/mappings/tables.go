// Package mappings holds the translation tables the converter
// consults: attribute renames, aggregation function equivalents, event
// type targets, and relative time literals. The built-in defaults
// cover the common APM, infrastructure, browser, and log attributes;
// deployments with custom schemas extend them with a YAML overlay.
package mappings

import (
	"sort"
	"strings"
)

// EventTarget describes where queries against one source event type
// read from on the target side.
type EventTarget struct {
	Source    string // timeseries, logs, spans, or bizevents
	MetricKey string // metric key for timeseries sources, empty otherwise
}

// Event target sources.
const (
	SourceTimeseries = "timeseries"
	SourceLogs       = "logs"
	SourceSpans      = "spans"
	SourceBizevents  = "bizevents"
)

// Tables is an immutable set of translation tables. Construct one with
// Default or Load and share it freely: Tables never mutates after
// construction and is safe for concurrent use.
type Tables struct {
	fields       map[string]string
	functions    map[string]string
	events       map[string]EventTarget
	timeLiterals map[string]string

	fieldsCI    map[string]string
	functionsCI map[string]string
	eventsCI    map[string]EventTarget
}

// New builds Tables from the given maps, copying them. Function,
// event, and time-literal lookups are case-insensitive; field lookups
// prefer an exact match before falling back to case-insensitive.
func New(fields, functions map[string]string, events map[string]EventTarget, timeLiterals map[string]string) *Tables {
	t := &Tables{
		fields:       make(map[string]string, len(fields)),
		functions:    make(map[string]string, len(functions)),
		events:       make(map[string]EventTarget, len(events)),
		timeLiterals: make(map[string]string, len(timeLiterals)),
		fieldsCI:     make(map[string]string, len(fields)),
		functionsCI:  make(map[string]string, len(functions)),
		eventsCI:     make(map[string]EventTarget, len(events)),
	}
	for k, v := range fields {
		t.fields[k] = v
		t.fieldsCI[strings.ToLower(k)] = v
	}
	for k, v := range functions {
		t.functions[k] = v
		t.functionsCI[strings.ToLower(k)] = v
	}
	for k, v := range events {
		t.events[k] = v
		t.eventsCI[strings.ToLower(k)] = v
	}
	for k, v := range timeLiterals {
		t.timeLiterals[strings.ToLower(k)] = v
	}
	return t
}

// Field resolves a query attribute to its target name. Exact spelling
// wins over a case-insensitive match.
func (t *Tables) Field(name string) (string, bool) {
	if v, ok := t.fields[name]; ok {
		return v, true
	}
	v, ok := t.fieldsCI[strings.ToLower(name)]
	return v, ok
}

// Function resolves an aggregation function name case-insensitively.
// A hit with an empty target means the function is known and has no
// equivalent, which is different from an unknown function.
func (t *Tables) Function(name string) (string, bool) {
	v, ok := t.functionsCI[strings.ToLower(name)]
	return v, ok
}

// EventType resolves a FROM clause event type case-insensitively.
func (t *Tables) EventType(name string) (EventTarget, bool) {
	v, ok := t.eventsCI[strings.ToLower(name)]
	return v, ok
}

// TimeLiteral resolves a relative time phrase to a duration suffix
// such as "1h". The phrase must match a table entry exactly after
// trimming and lowercasing.
func (t *Tables) TimeLiteral(phrase string) (string, bool) {
	v, ok := t.timeLiterals[strings.ToLower(strings.TrimSpace(phrase))]
	return v, ok
}

// Entry is one source-to-target row of a table, for display surfaces.
type Entry struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// EventEntry is one event type row, for display surfaces.
type EventEntry struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	MetricKey string `json:"metric_key,omitempty"`
}

// Snapshot is a serializable view of the full table set, served by the
// mappings API endpoint and rendered on the reference page. Rows are
// sorted by source name so output is stable.
type Snapshot struct {
	Fields       []Entry      `json:"fields"`
	Functions    []Entry      `json:"functions"`
	Events       []EventEntry `json:"events"`
	TimeLiterals []Entry      `json:"time_literals"`
}

// Snapshot returns a sorted copy of all tables.
func (t *Tables) Snapshot() Snapshot {
	return Snapshot{
		Fields:       sortedEntries(t.fields),
		Functions:    sortedEntries(t.functions),
		Events:       t.eventEntries(),
		TimeLiterals: sortedEntries(t.timeLiterals),
	}
}

func sortedEntries(m map[string]string) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Source: k, Target: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Source < entries[j].Source })
	return entries
}

func (t *Tables) eventEntries() []EventEntry {
	entries := make([]EventEntry, 0, len(t.events))
	for k, v := range t.events {
		entries = append(entries, EventEntry{Name: k, Source: v.Source, MetricKey: v.MetricKey})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Operators returns the fixed operator correspondences between the two
// condition languages. These are rewrite rules rather than
// configuration, so overlays cannot change them; they are exposed here
// so the CLI and the reference page describe the same behavior.
func Operators() []Entry {
	return []Entry{
		{Source: "=", Target: "=="},
		{Source: "!=", Target: "!="},
		{Source: "<  <=  >  >=", Target: "unchanged"},
		{Source: "AND  OR  NOT", Target: "and  or  not"},
		{Source: "LIKE '%x%'", Target: "matchesPhrase(field, \"x\")"},
		{Source: "LIKE 'x%'", Target: "startsWith(field, \"x\")"},
		{Source: "LIKE '%x'", Target: "endsWith(field, \"x\")"},
		{Source: "NOT LIKE", Target: "not matchesPhrase(...)"},
		{Source: "IN (a, b)", Target: "in(field, a, b)"},
		{Source: "IS NULL", Target: "isNull(field)"},
		{Source: "IS NOT NULL", Target: "isNotNull(field)"},
	}
}
