package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Field(t *testing.T) {
	tables := Default()

	tests := []struct {
		name   string
		field  string
		want   string
		wantOK bool
	}{
		{"exact", "appName", "service.name", true},
		{"exact dotted", "error.class", "error.type", true},
		{"case-insensitive", "APPNAME", "service.name", true},
		{"case-insensitive dotted", "HTTP.StatusCode", "http.status_code", true},
		{"identity mapping", "timestamp", "timestamp", true},
		{"unknown", "customAttr", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.Field(tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_Function(t *testing.T) {
	tables := Default()

	tests := []struct {
		name   string
		fn     string
		want   string
		wantOK bool
	}{
		{"count carries parens", "count", "count()", true},
		{"average", "average", "avg", true},
		{"mixed case", "uniqueCount", "countDistinct", true},
		{"lowercased by parser", "uniquecount", "countDistinct", true},
		{"upper case", "AVERAGE", "avg", true},
		{"known but unsupported", "funnel", "", true},
		{"unknown", "mangle", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.Function(tt.fn)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_EventType(t *testing.T) {
	tables := Default()

	tests := []struct {
		name   string
		event  string
		want   EventTarget
		wantOK bool
	}{
		{"transaction", "Transaction", EventTarget{Source: SourceTimeseries, MetricKey: "builtin:service.response.time"}, true},
		{"lowercase", "transaction", EventTarget{Source: SourceTimeseries, MetricKey: "builtin:service.response.time"}, true},
		{"logs", "Log", EventTarget{Source: SourceLogs}, true},
		{"spans", "Span", EventTarget{Source: SourceSpans}, true},
		{"bizevents", "PageView", EventTarget{Source: SourceBizevents}, true},
		{"metric has no key", "Metric", EventTarget{Source: SourceTimeseries}, true},
		{"unknown", "MyCustomEvent", EventTarget{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.EventType(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_TimeLiteral(t *testing.T) {
	tables := Default()

	tests := []struct {
		name   string
		phrase string
		want   string
		wantOK bool
	}{
		{"one hour", "1 hour ago", "1h", true},
		{"upper and padded", "  24 HOURS AGO ", "24h", true},
		{"week normalizes to days", "1 week ago", "7d", true},
		{"month normalizes to days", "1 month ago", "30d", true},
		{"twelve is not two", "12 hours ago", "12h", true},
		{"not in table", "45 minutes ago", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.TimeLiteral(tt.phrase)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot_SortedAndComplete(t *testing.T) {
	snap := Default().Snapshot()

	require.NotEmpty(t, snap.Fields)
	require.NotEmpty(t, snap.Functions)
	require.NotEmpty(t, snap.Events)
	require.NotEmpty(t, snap.TimeLiterals)

	for i := 1; i < len(snap.Fields); i++ {
		assert.Less(t, snap.Fields[i-1].Source, snap.Fields[i].Source)
	}
	for i := 1; i < len(snap.Events); i++ {
		assert.Less(t, snap.Events[i-1].Name, snap.Events[i].Name)
	}
}

func TestOperators_NotEmpty(t *testing.T) {
	ops := Operators()

	require.NotEmpty(t, ops)
	assert.Equal(t, Entry{Source: "=", Target: "=="}, ops[0])
}
