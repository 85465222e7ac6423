// Package memory provides an in-memory Store implementation.
//
// Collections keep insertion order, which gives the pagination engine the
// stable enumeration it depends on. Used as the default backing store when
// no database is configured, and by tests.
package memory

import (
	"context"
	"sync"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/resource"
)

// Collection is an ordered, keyed set of records for one entity type.
type Collection[T any] struct {
	mu           sync.RWMutex
	resourceName string
	gid          func(T) string
	order        []string
	items        map[string]T
}

// NewCollection creates an empty collection. gid extracts a record's key.
func NewCollection[T any](resourceName string, gid func(T) string) *Collection[T] {
	return &Collection[T]{
		resourceName: resourceName,
		gid:          gid,
		items:        make(map[string]T),
	}
}

// Create inserts a record at the end of the enumeration order.
func (c *Collection[T]) Create(_ context.Context, entity T) error {
	key := c.gid(entity)
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; exists {
		return apperror.NewConflict(c.resourceName + " with this gid already exists")
	}
	c.items[key] = entity
	c.order = append(c.order, key)
	return nil
}

// GetByGID retrieves a record by key.
func (c *Collection[T]) GetByGID(_ context.Context, gid string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entity, ok := c.items[gid]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(c.resourceName, gid)
	}
	return entity, nil
}

// Update replaces an existing record, keeping its enumeration position.
func (c *Collection[T]) Update(_ context.Context, entity T) error {
	key := c.gid(entity)
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return apperror.NewNotFound(c.resourceName, key)
	}
	c.items[key] = entity
	return nil
}

// Delete removes a record.
func (c *Collection[T]) Delete(_ context.Context, gid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[gid]; !ok {
		return apperror.NewNotFound(c.resourceName, gid)
	}
	delete(c.items, gid)
	for i, key := range c.order {
		if key == gid {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all records in insertion order.
func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.items[key])
	}
	return out, nil
}

// Store aggregates in-memory collections for every entity type.
type Store struct {
	tasks        *Collection[resource.Task]
	projects     *Collection[resource.Project]
	sections     *Collection[resource.Section]
	tags         *Collection[resource.Tag]
	teams        *Collection[resource.Team]
	users        *Collection[resource.User]
	workspaces   *Collection[resource.Workspace]
	customFields *Collection[resource.CustomField]
	stories      *Collection[resource.Story]
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		tasks:        NewCollection("task", func(t resource.Task) string { return t.GID }),
		projects:     NewCollection("project", func(p resource.Project) string { return p.GID }),
		sections:     NewCollection("section", func(s resource.Section) string { return s.GID }),
		tags:         NewCollection("tag", func(t resource.Tag) string { return t.GID }),
		teams:        NewCollection("team", func(t resource.Team) string { return t.GID }),
		users:        NewCollection("user", func(u resource.User) string { return u.GID }),
		workspaces:   NewCollection("workspace", func(w resource.Workspace) string { return w.GID }),
		customFields: NewCollection("custom_field", func(f resource.CustomField) string { return f.GID }),
		stories:      NewCollection("story", func(s resource.Story) string { return s.GID }),
	}
}

var _ domain.Store = (*Store)(nil)

func (s *Store) Tasks() domain.Repository[resource.Task]               { return s.tasks }
func (s *Store) Projects() domain.Repository[resource.Project]         { return s.projects }
func (s *Store) Sections() domain.Repository[resource.Section]         { return s.sections }
func (s *Store) Tags() domain.Repository[resource.Tag]                 { return s.tags }
func (s *Store) Teams() domain.Repository[resource.Team]               { return s.teams }
func (s *Store) Users() domain.Repository[resource.User]               { return s.users }
func (s *Store) Workspaces() domain.Repository[resource.Workspace]     { return s.workspaces }
func (s *Store) CustomFields() domain.Repository[resource.CustomField] { return s.customFields }
func (s *Store) Stories() domain.Repository[resource.Story]            { return s.stories }
