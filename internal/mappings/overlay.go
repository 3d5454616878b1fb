package mappings

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is the YAML document shape for extending the built-in
// tables. Every section is optional; entries win over built-ins with
// the same key.
type Overlay struct {
	Fields       map[string]string       `yaml:"fields"`
	Functions    map[string]string       `yaml:"functions"`
	Events       map[string]OverlayEvent `yaml:"events"`
	TimeLiterals map[string]string       `yaml:"time_literals"`
}

// OverlayEvent is one event type entry in an overlay document.
type OverlayEvent struct {
	Source    string `yaml:"source"`
	MetricKey string `yaml:"metric_key"`
}

// Load reads a YAML overlay file and returns the built-in tables
// extended with it. Unknown YAML keys are rejected so a typoed section
// name fails loudly instead of being ignored.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc Overlay
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	t, err := Default().Extend(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Extend returns a new Tables with the overlay's entries merged over
// t's. It fails when an event entry names an unknown source.
func (t *Tables) Extend(o Overlay) (*Tables, error) {
	for name, ev := range o.Events {
		switch ev.Source {
		case SourceTimeseries, SourceLogs, SourceSpans, SourceBizevents:
		default:
			return nil, fmt.Errorf("event type %q: unknown source %q (want timeseries, logs, spans, or bizevents)", name, ev.Source)
		}
	}

	fields := mergeStrings(t.fields, o.Fields)
	functions := mergeStrings(t.functions, o.Functions)
	timeLiterals := mergeStrings(t.timeLiterals, o.TimeLiterals)
	events := make(map[string]EventTarget, len(t.events)+len(o.Events))
	for k, v := range t.events {
		events[k] = v
	}
	for k, v := range o.Events {
		events[k] = EventTarget{Source: v.Source, MetricKey: v.MetricKey}
	}

	return New(fields, functions, events, timeLiterals), nil
}

func mergeStrings(base, over map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}
