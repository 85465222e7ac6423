// Package typeahead implements bounded autocomplete search across the
// resource-type collections.
//
// Dispatch is over typed resource kinds, each variant carrying its own
// lookup closure; unknown kinds return an empty result rather than an
// error. Ordering is a deterministic placeholder (alphabetical or creation
// recency) until real relevance ranking lands.
package typeahead

import (
	"context"
	"sort"
	"strings"
	"time"

	"taskdeck/internal/domain"
	"taskdeck/internal/domain/resource"
)

// Config bounds result counts. Injected; no package-level state.
type Config struct {
	DefaultCount int
	MaxCount     int
}

// DefaultConfig matches the upstream API limits.
func DefaultConfig() Config {
	return Config{DefaultCount: 20, MaxCount: 100}
}

// Candidate is one searchable entry drawn from a collection.
type Candidate struct {
	GID       string
	Name      string
	Email     string // user collections only
	CreatedAt time.Time
}

type ordering int

const (
	byName ordering = iota
	byRecency
)

// source is one dispatch variant: the output tag, its lookup closure, and
// its ordering policy.
type source struct {
	kind       resource.Kind
	fetch      func(ctx context.Context) ([]Candidate, error)
	matchEmail bool
	order      ordering
}

// Ranker performs typeahead search against a Store's collections.
type Ranker struct {
	cfg   Config
	store domain.Store
}

// NewRanker creates a typeahead ranker over the given store.
func NewRanker(cfg Config, store domain.Store) *Ranker {
	return &Ranker{cfg: cfg, store: store}
}

// dispatch selects the lookup variant for a resource-type tag. The second
// return is false for unknown tags. portfolio and goal are known tags with
// no backing collection yet: they dispatch to an empty lookup.
func (r *Ranker) dispatch(kind resource.Kind) (source, bool) {
	switch kind {
	case resource.KindUser:
		return source{kind: kind, fetch: r.fetchUsers, matchEmail: true, order: byName}, true
	case resource.KindProject:
		return source{kind: kind, fetch: r.fetchProjects, order: byRecency}, true
	case resource.KindTask:
		return source{kind: kind, fetch: r.fetchTasks, order: byRecency}, true
	case resource.KindTag:
		return source{kind: kind, fetch: r.fetchTags, order: byName}, true
	case resource.KindTeam:
		return source{kind: kind, fetch: r.fetchTeams, order: byName}, true
	case resource.KindCustomField:
		return source{kind: kind, fetch: r.fetchCustomFields, order: byName}, true
	case resource.KindProjectTemplate:
		// project-backed, with the output tag overridden
		return source{kind: kind, fetch: r.fetchProjects, order: byName}, true
	case resource.KindPortfolio, resource.KindGoal:
		return source{kind: kind, fetch: fetchNone}, true
	}
	return source{}, false
}

// Rank searches one resource-type collection. query nil or empty makes
// every candidate eligible; results are truncated to count (clamped to
// [1, MaxCount], default for count <= 0). Unrecognized tags yield an empty
// list.
func (r *Ranker) Rank(ctx context.Context, resourceType string, query *string, count int) ([]resource.Ref, error) {
	src, ok := r.dispatch(resource.Kind(resourceType))
	if !ok {
		return []resource.Ref{}, nil
	}

	candidates, err := src.fetch(ctx)
	if err != nil {
		return nil, err
	}

	needle := ""
	if query != nil {
		needle = strings.ToLower(strings.TrimSpace(*query))
	}

	matched := candidates[:0:0]
	for _, c := range candidates {
		if needle == "" || matches(c, needle, src.matchEmail) {
			matched = append(matched, c)
		}
	}

	switch src.order {
	case byRecency:
		sort.SliceStable(matched, func(i, j int) bool {
			if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}
			return matched[i].GID < matched[j].GID
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].Name != matched[j].Name {
				return matched[i].Name < matched[j].Name
			}
			return matched[i].GID < matched[j].GID
		})
	}

	if n := r.clampCount(count); len(matched) > n {
		matched = matched[:n]
	}

	refs := make([]resource.Ref, len(matched))
	for i, c := range matched {
		refs[i] = resource.Ref{GID: c.GID, ResourceType: src.kind, Name: c.Name}
	}
	return refs, nil
}

func (r *Ranker) clampCount(count int) int {
	if count <= 0 {
		return r.cfg.DefaultCount
	}
	if count > r.cfg.MaxCount {
		return r.cfg.MaxCount
	}
	return count
}

func matches(c Candidate, needle string, matchEmail bool) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	return matchEmail && strings.Contains(strings.ToLower(c.Email), needle)
}

func fetchNone(context.Context) ([]Candidate, error) {
	return nil, nil
}

// --- per-collection lookups ---

func (r *Ranker) fetchUsers(ctx context.Context) ([]Candidate, error) {
	users, err := r.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(users))
	for i, u := range users {
		out[i] = Candidate{GID: u.GID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
	}
	return out, nil
}

func (r *Ranker) fetchProjects(ctx context.Context) ([]Candidate, error) {
	projects, err := r.store.Projects().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(projects))
	for i, p := range projects {
		out[i] = Candidate{GID: p.GID, Name: p.Name, CreatedAt: p.CreatedAt}
	}
	return out, nil
}

func (r *Ranker) fetchTasks(ctx context.Context) ([]Candidate, error) {
	tasks, err := r.store.Tasks().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(tasks))
	for i, t := range tasks {
		out[i] = Candidate{GID: t.GID, Name: t.Name, CreatedAt: t.CreatedAt}
	}
	return out, nil
}

func (r *Ranker) fetchTags(ctx context.Context) ([]Candidate, error) {
	tags, err := r.store.Tags().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(tags))
	for i, tg := range tags {
		out[i] = Candidate{GID: tg.GID, Name: tg.Name, CreatedAt: tg.CreatedAt}
	}
	return out, nil
}

func (r *Ranker) fetchTeams(ctx context.Context) ([]Candidate, error) {
	teams, err := r.store.Teams().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(teams))
	for i, tm := range teams {
		out[i] = Candidate{GID: tm.GID, Name: tm.Name, CreatedAt: tm.CreatedAt}
	}
	return out, nil
}

func (r *Ranker) fetchCustomFields(ctx context.Context) ([]Candidate, error) {
	fields, err := r.store.CustomFields().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(fields))
	for i, f := range fields {
		out[i] = Candidate{GID: f.GID, Name: f.Name, CreatedAt: f.CreatedAt}
	}
	return out, nil
}
