package domain

import "fmt"

// Diagnostics accumulates warnings, manual-review items, and applied
// field mappings while a single conversion runs. The zero value is
// ready to use. It is not safe for concurrent use; each conversion
// owns its own instance.
type Diagnostics struct {
	warnings []string
	review   []string
	mappings []FieldMapping
	seen     map[string]bool
}

// Warnf records a warning: the conversion produced output but some
// part of it deserves a second look.
func (d *Diagnostics) Warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// Reviewf records an item that needs a human before the output can be
// trusted at all.
func (d *Diagnostics) Reviewf(format string, args ...any) {
	d.review = append(d.review, fmt.Sprintf(format, args...))
}

// RecordFieldMapping notes that the attribute written as source was
// rewritten to target. Only the first mapping per source spelling is
// kept, so a field used in both WHERE and FACET reports once.
func (d *Diagnostics) RecordFieldMapping(source, target string) {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	if d.seen[source] {
		return
	}
	d.seen[source] = true
	d.mappings = append(d.mappings, FieldMapping{Source: source, Target: target})
}

// Warnings returns a copy of the recorded warnings, never nil.
func (d *Diagnostics) Warnings() []string {
	out := make([]string, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// ManualReview returns a copy of the recorded review items, never nil.
func (d *Diagnostics) ManualReview() []string {
	out := make([]string, len(d.review))
	copy(out, d.review)
	return out
}

// FieldMappings returns a copy of the applied mappings in the order
// they were first recorded, never nil.
func (d *Diagnostics) FieldMappings() []FieldMapping {
	out := make([]FieldMapping, len(d.mappings))
	copy(out, d.mappings)
	return out
}

// Confidence grades the conversion from what was recorded: any manual
// review item forces low, more than two warnings also reads low, any
// warning at all reads medium, and a clean run reads high.
func (d *Diagnostics) Confidence() Confidence {
	switch {
	case len(d.review) > 0:
		return ConfidenceLow
	case len(d.warnings) > 2:
		return ConfidenceLow
	case len(d.warnings) > 0:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}
