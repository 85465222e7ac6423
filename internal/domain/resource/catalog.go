package resource

import (
	"time"

	"github.com/shopspring/decimal"
)

// Section is a named grouping of tasks within a project.
type Section struct {
	GID          string    `db:"gid" json:"gid"`
	ResourceType Kind      `db:"resource_type" json:"resource_type"`
	Name         string    `db:"name" json:"name"`
	ProjectGID   string    `db:"project_gid" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Tag is a light-weight label attachable to tasks.
type Tag struct {
	GID          string    `db:"gid" json:"gid"`
	ResourceType Kind      `db:"resource_type" json:"resource_type"`
	Name         string    `db:"name" json:"name"`
	Color        string    `db:"color" json:"color,omitempty"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	WorkspaceGID string    `db:"workspace_gid" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Team groups users within an organization workspace.
type Team struct {
	GID             string    `db:"gid" json:"gid"`
	ResourceType    Kind      `db:"resource_type" json:"resource_type"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description,omitempty"`
	Visibility      string    `db:"visibility" json:"visibility,omitempty"`
	OrganizationGID string    `db:"organization_gid" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// User is an account record. Email participates in typeahead matching.
type User struct {
	GID          string    `db:"gid" json:"gid"`
	ResourceType Kind      `db:"resource_type" json:"resource_type"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Workspace is the top-level container all other resources live in.
type Workspace struct {
	GID            string    `db:"gid" json:"gid"`
	ResourceType   Kind      `db:"resource_type" json:"resource_type"`
	Name           string    `db:"name" json:"name"`
	IsOrganization bool      `db:"is_organization" json:"is_organization"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CustomField is a user-defined field definition. Number values keep
// exact precision via decimal.
type CustomField struct {
	GID          string           `db:"gid" json:"gid"`
	ResourceType Kind             `db:"resource_type" json:"resource_type"`
	Name         string           `db:"name" json:"name"`
	Type         string           `db:"type" json:"type,omitempty"`
	Description  string           `db:"description" json:"description,omitempty"`
	Enabled      bool             `db:"enabled" json:"enabled"`
	Precision    int              `db:"precision" json:"precision,omitempty"`
	NumberValue  *decimal.Decimal `db:"number_value" json:"number_value,omitempty"`
	TextValue    string           `db:"text_value" json:"text_value,omitempty"`
	WorkspaceGID string           `db:"workspace_gid" json:"-"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// DisplayValue renders the field's value the way list views show it.
func (f *CustomField) DisplayValue() string {
	switch f.Type {
	case "number":
		if f.NumberValue == nil {
			return ""
		}
		return f.NumberValue.StringFixed(int32(f.Precision))
	default:
		return f.TextValue
	}
}

// Story is an activity feed entry attached to a task.
type Story struct {
	GID             string    `db:"gid" json:"gid"`
	ResourceType    Kind      `db:"resource_type" json:"resource_type"`
	ResourceSubtype string    `db:"resource_subtype" json:"resource_subtype,omitempty"`
	Text            string    `db:"text" json:"text"`
	TaskGID         string    `db:"task_gid" json:"-"`
	CreatedByGID    *string   `db:"created_by_gid" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
