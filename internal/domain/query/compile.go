package query

import (
	"strings"
	"time"

	"taskdeck/internal/domain/resource"
)

// Predicate is a compiled boolean test over one candidate task.
// Predicates are stateless and reusable across any number of candidates.
type Predicate func(*resource.Task) bool

// Resolution tells whether a relation's data is resolvable by the backing
// store. Filters on Unresolved relations compile to an always-true
// predicate: callers get unfiltered results, never failures.
type Resolution int

const (
	Unresolved Resolution = iota
	Resolved
)

// RelationResolver is the compiler's collaborator for relationship data.
type RelationResolver interface {
	// Resolve reports whether the relation can be evaluated at all.
	Resolve(relation string) Resolution

	// Related returns the task's GID set for the relation.
	Related(t *resource.Task, relation string) []string
}

// Compile builds a single predicate from a FilterSpec: one sub-predicate
// per present dimension, folded with logical AND. The grammar has no
// top-level OR or NOT; ".not" semantics are local to one set dimension.
// Compilation is O(dimensions); evaluation is O(1) per dimension.
func Compile(spec FilterSpec, resolver RelationResolver) Predicate {
	var preds []Predicate

	if spec.Text != "" {
		needle := strings.ToLower(spec.Text)
		preds = append(preds, func(t *resource.Task) bool {
			return strings.Contains(strings.ToLower(t.Name), needle) ||
				strings.Contains(strings.ToLower(t.Notes), needle)
		})
	}

	if spec.ResourceSubtype != "" {
		want := spec.ResourceSubtype
		preds = append(preds, func(t *resource.Task) bool {
			return t.ResourceSubtype == want
		})
	}

	if spec.Completed != nil {
		want := *spec.Completed
		preds = append(preds, func(t *resource.Task) bool {
			return t.Completed == want
		})
	}

	if spec.IsSubtask != nil {
		want := *spec.IsSubtask
		preds = append(preds, func(t *resource.Task) bool {
			return t.IsSubtask() == want
		})
	}

	for _, df := range spec.Dates {
		preds = append(preds, compileDate(df))
	}

	for _, sf := range spec.Sets {
		preds = append(preds, compileSet(sf, resolver))
	}

	if len(preds) == 0 {
		return matchAll
	}
	if len(preds) == 1 {
		return preds[0]
	}
	return func(t *resource.Task) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

func matchAll(*resource.Task) bool { return true }

// dateField extracts the filterable timestamp for a field name, already
// truncated for date-only fields. Returns nil when the field is unset.
func dateField(t *resource.Task, field string) *time.Time {
	var v *time.Time
	dateOnly := false

	switch field {
	case "due_on":
		v, dateOnly = t.DueOn, true
	case "start_on":
		v, dateOnly = t.StartOn, true
	case "created_on":
		created := t.CreatedAt
		v, dateOnly = &created, true
	case "completed_on":
		v, dateOnly = t.CompletedAt, true
	case "modified_on":
		v, dateOnly = t.ModifiedAt, true
	case "due_at":
		v = t.DueAt
	case "created_at":
		created := t.CreatedAt
		v = &created
	case "completed_at":
		v = t.CompletedAt
	}

	if v == nil {
		return nil
	}
	if dateOnly {
		d := DateOf(*v)
		return &d
	}
	u := v.UTC()
	return &u
}

func compileDate(df DateFilter) Predicate {
	field := df.Field
	bound := df.Value

	switch {
	case df.IsNull:
		return func(t *resource.Task) bool {
			return dateField(t, field) == nil
		}
	case df.Op == OpBefore:
		// inclusive: v <= bound
		return func(t *resource.Task) bool {
			v := dateField(t, field)
			return v != nil && !v.After(bound)
		}
	case df.Op == OpAfter:
		// inclusive: v >= bound
		return func(t *resource.Task) bool {
			v := dateField(t, field)
			return v != nil && !v.Before(bound)
		}
	default:
		return func(t *resource.Task) bool {
			v := dateField(t, field)
			return v != nil && v.Equal(bound)
		}
	}
}

func compileSet(sf SetFilter, resolver RelationResolver) Predicate {
	if resolver == nil || resolver.Resolve(sf.Relation) == Unresolved {
		// Relationship data the store cannot serve yet: degrade to
		// unfiltered results rather than failing the request.
		return matchAll
	}

	ids := make(map[string]struct{}, len(sf.IDs))
	for _, id := range sf.IDs {
		ids[id] = struct{}{}
	}
	relation := sf.Relation

	switch sf.Mode {
	case ModeNot:
		return func(t *resource.Task) bool {
			return !intersects(resolver.Related(t, relation), ids)
		}
	case ModeAll:
		return func(t *resource.Task) bool {
			related := resolver.Related(t, relation)
			if len(related) < len(ids) {
				return false
			}
			have := make(map[string]struct{}, len(related))
			for _, gid := range related {
				have[gid] = struct{}{}
			}
			for gid := range ids {
				if _, ok := have[gid]; !ok {
					return false
				}
			}
			return true
		}
	default: // ModeAny
		return func(t *resource.Task) bool {
			return intersects(resolver.Related(t, relation), ids)
		}
	}
}

func intersects(related []string, ids map[string]struct{}) bool {
	for _, gid := range related {
		if _, ok := ids[gid]; ok {
			return true
		}
	}
	return false
}

// SnapshotResolver evaluates relations carried directly on the task
// snapshot. Relations whose storage is not implemented (liked_by,
// commented_on_by, teams, portfolios) stay Unresolved.
type SnapshotResolver struct{}

func (SnapshotResolver) Resolve(relation string) Resolution {
	switch relation {
	case "assignee", "created_by", "assigned_by", "followers", "projects", "sections", "tags":
		return Resolved
	}
	return Unresolved
}

func (SnapshotResolver) Related(t *resource.Task, relation string) []string {
	switch relation {
	case "assignee":
		return gidSlice(t.AssigneeGID)
	case "created_by":
		return gidSlice(t.CreatedByGID)
	case "assigned_by":
		return gidSlice(t.AssignedByGID)
	case "followers":
		return t.Followers
	case "projects":
		return t.Projects
	case "sections":
		return t.Sections
	case "tags":
		return t.Tags
	}
	return nil
}

func gidSlice(gid *string) []string {
	if gid == nil || *gid == "" {
		return nil
	}
	return []string{*gid}
}
