// Package domain provides core business interfaces and types.
package domain

import (
	"context"

	"taskdeck/internal/domain/resource"
)

// Repository defines CRUD plus ordered enumeration for one entity type.
//
// List returns every record in a stable, deterministic order (creation
// order). The query compiler and pagination engine depend on that
// stability: repeated enumeration of an unchanged store must yield the
// same sequence. Filtering happens in the caller (fetch-then-filter).
type Repository[T any] interface {
	// Create inserts a new record.
	Create(ctx context.Context, entity T) error

	// GetByGID retrieves a record by its GID.
	GetByGID(ctx context.Context, gid string) (T, error)

	// Update replaces an existing record.
	Update(ctx context.Context, entity T) error

	// Delete removes a record.
	Delete(ctx context.Context, gid string) error

	// List enumerates all records in stable creation order.
	List(ctx context.Context) ([]T, error)
}

// Store aggregates the per-entity repositories backing the API.
type Store interface {
	Tasks() Repository[resource.Task]
	Projects() Repository[resource.Project]
	Sections() Repository[resource.Section]
	Tags() Repository[resource.Tag]
	Teams() Repository[resource.Team]
	Users() Repository[resource.User]
	Workspaces() Repository[resource.Workspace]
	CustomFields() Repository[resource.CustomField]
	Stories() Repository[resource.Story]
}
