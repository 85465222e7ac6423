// Package query implements the task search grammar: parsing dot-notation
// query parameters into a typed FilterSpec and compiling the spec into a
// predicate over candidate tasks.
//
// Parsing is deliberately permissive: malformed date and boolean values do
// not fail the request, they drop the dimension and are recorded on the
// spec's Warnings list. This mirrors the upstream API behavior.
package query

import (
	"fmt"
	"strings"
	"time"
)

// DateOp selects the comparison applied by a date dimension.
type DateOp int

const (
	OpExact DateOp = iota
	OpBefore
	OpAfter
)

func (op DateOp) String() string {
	switch op {
	case OpBefore:
		return "before"
	case OpAfter:
		return "after"
	default:
		return "exact"
	}
}

// DateFilter is one parsed date/datetime dimension.
type DateFilter struct {
	Field string
	Op    DateOp

	// Value is the parsed bound, midnight UTC for date-only fields.
	Value time.Time

	// IsNull marks the "field must be unset" exact match.
	IsNull bool

	// DateOnly indicates calendar-date comparison semantics.
	DateOnly bool
}

// SetMode is a set-membership filter mode.
type SetMode string

const (
	ModeAny SetMode = "any" // relationship set intersects the ID set
	ModeNot SetMode = "not" // relationship set does not intersect the ID set
	ModeAll SetMode = "all" // relationship set is a superset of the ID set
)

// SetFilter is one parsed set-membership dimension.
type SetFilter struct {
	Relation string
	Mode     SetMode
	IDs      []string
}

// FilterSpec is the typed form of a caller's search parameters.
// Built once per request by ParseSpec; read-only thereafter. All present
// dimensions combine conjunctively.
type FilterSpec struct {
	Text            string
	ResourceSubtype string
	Completed       *bool
	IsSubtask       *bool
	Dates           []DateFilter
	Sets            []SetFilter

	// Warnings lists dimensions dropped by permissive parsing.
	Warnings []string
}

// Empty reports whether no dimension is present.
func (s FilterSpec) Empty() bool {
	return s.Text == "" && s.ResourceSubtype == "" && s.Completed == nil &&
		s.IsSubtask == nil && len(s.Dates) == 0 && len(s.Sets) == 0
}

// dateOnlyFields accept .before/.after and a bare exact/null form.
var dateOnlyFields = []string{"due_on", "start_on", "created_on", "completed_on", "modified_on"}

// dateTimeFields accept .before/.after only.
var dateTimeFields = []string{"due_at", "created_at", "completed_at"}

// relationModes maps each relation to the modes the grammar exposes for it.
var relationModes = []struct {
	relation string
	modes    []SetMode
}{
	{"assignee", []SetMode{ModeAny, ModeNot}},
	{"followers", []SetMode{ModeAny, ModeNot}},
	{"created_by", []SetMode{ModeAny, ModeNot}},
	{"assigned_by", []SetMode{ModeAny, ModeNot}},
	{"liked_by", []SetMode{ModeNot}},
	{"commented_on_by", []SetMode{ModeNot}},
	{"projects", []SetMode{ModeAny, ModeNot, ModeAll}},
	{"sections", []SetMode{ModeAny, ModeNot, ModeAll}},
	{"tags", []SetMode{ModeAny, ModeNot, ModeAll}},
	{"teams", []SetMode{ModeAny}},
	{"portfolios", []SetMode{ModeAny}},
}

// ParseSpec turns raw query parameters into a FilterSpec. Keys the grammar
// does not know are ignored, so the full request query map can be passed in.
func ParseSpec(raw map[string]string) FilterSpec {
	var spec FilterSpec

	spec.Text = raw["text"]
	spec.ResourceSubtype = raw["resource_subtype"]
	spec.Completed = parseBool(raw, "completed", &spec)
	spec.IsSubtask = parseBool(raw, "is_subtask", &spec)

	for _, field := range dateOnlyFields {
		spec.parseDateDim(raw, field, OpBefore, true)
		spec.parseDateDim(raw, field, OpAfter, true)
		spec.parseDateDim(raw, field, OpExact, true)
	}
	for _, field := range dateTimeFields {
		spec.parseDateDim(raw, field, OpBefore, false)
		spec.parseDateDim(raw, field, OpAfter, false)
	}

	for _, rm := range relationModes {
		for _, mode := range rm.modes {
			key := rm.relation + "." + string(mode)
			ids := splitIDList(raw[key])
			if len(ids) == 0 {
				continue
			}
			spec.Sets = append(spec.Sets, SetFilter{
				Relation: rm.relation,
				Mode:     mode,
				IDs:      ids,
			})
		}
	}

	return spec
}

func (s *FilterSpec) parseDateDim(raw map[string]string, field string, op DateOp, dateOnly bool) {
	key := field
	if op != OpExact {
		key = field + "." + op.String()
	}
	val, ok := raw[key]
	if !ok || val == "" {
		return
	}

	if strings.EqualFold(val, "null") {
		// "must be unset" only makes sense for an exact match; on a range
		// bound it degrades to the dimension being absent.
		if op == OpExact {
			s.Dates = append(s.Dates, DateFilter{Field: field, Op: op, IsNull: true, DateOnly: dateOnly})
		}
		return
	}

	t, err := parseISO(val, dateOnly)
	if err != nil {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s: unparseable value %q dropped", key, val))
		return
	}

	s.Dates = append(s.Dates, DateFilter{Field: field, Op: op, Value: t, DateOnly: dateOnly})
}

func parseBool(raw map[string]string, key string, spec *FilterSpec) *bool {
	val, ok := raw[key]
	if !ok || val == "" {
		return nil
	}
	switch val {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	spec.Warnings = append(spec.Warnings, fmt.Sprintf("%s: unrecognized boolean %q dropped", key, val))
	return nil
}

// isoLayouts are tried in order for datetime values.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(val string, dateOnly bool) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range isoLayouts {
		parsed, err = time.Parse(layout, val)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, err
	}
	if dateOnly {
		return DateOf(parsed), nil
	}
	return parsed.UTC(), nil
}

// DateOf truncates a timestamp to its calendar date, midnight UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// splitIDList parses a comma-separated identifier list, trimming whitespace
// and discarding empty segments.
func splitIDList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
