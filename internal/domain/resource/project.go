package resource

import "time"

// Project is the full project record.
type Project struct {
	GID          string     `db:"gid" json:"gid"`
	ResourceType Kind       `db:"resource_type" json:"resource_type"`
	Name         string     `db:"name" json:"name"`
	Notes        string     `db:"notes" json:"notes,omitempty"`
	HTMLNotes    string     `db:"html_notes" json:"html_notes,omitempty"`
	Color        string     `db:"color" json:"color,omitempty"`
	Icon         string     `db:"icon" json:"icon,omitempty"`
	DefaultView  string     `db:"default_view" json:"default_view,omitempty"`
	Archived     bool       `db:"archived" json:"archived"`
	Public       bool       `db:"is_public" json:"public"`
	Completed    bool       `db:"completed" json:"completed"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	DueOn        *time.Time `db:"due_on" json:"due_on,omitempty"`
	StartOn      *time.Time `db:"start_on" json:"start_on,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	ModifiedAt   *time.Time `db:"modified_at" json:"modified_at,omitempty"`
	PermalinkURL string     `db:"permalink_url" json:"permalink_url,omitempty"`

	TeamGID      *string `db:"team_gid" json:"-"`
	WorkspaceGID string  `db:"workspace_gid" json:"-"`
}
