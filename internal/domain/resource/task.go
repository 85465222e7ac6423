package resource

import "time"

// Task is the full task record. Date-only fields (due_on, start_on) are
// normalized to midnight UTC; *_at fields carry full timestamps.
type Task struct {
	GID             string     `db:"gid" json:"gid"`
	ResourceType    Kind       `db:"resource_type" json:"resource_type"`
	Name            string     `db:"name" json:"name"`
	ResourceSubtype string     `db:"resource_subtype" json:"resource_subtype,omitempty"`
	Notes           string     `db:"notes" json:"notes,omitempty"`
	HTMLNotes       string     `db:"html_notes" json:"html_notes,omitempty"`
	ApprovalStatus  string     `db:"approval_status" json:"approval_status,omitempty"`
	AssigneeStatus  string     `db:"assignee_status" json:"assignee_status,omitempty"`
	Completed       bool       `db:"completed" json:"completed"`
	CompletedAt     *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	DueOn           *time.Time `db:"due_on" json:"due_on,omitempty"`
	DueAt           *time.Time `db:"due_at" json:"due_at,omitempty"`
	StartOn         *time.Time `db:"start_on" json:"start_on,omitempty"`
	StartAt         *time.Time `db:"start_at" json:"start_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	ModifiedAt      *time.Time `db:"modified_at" json:"modified_at,omitempty"`
	NumSubtasks     int        `db:"num_subtasks" json:"num_subtasks"`
	NumLikes        int        `db:"num_likes" json:"num_likes"`
	Liked           bool       `db:"liked" json:"liked"`
	PermalinkURL    string     `db:"permalink_url" json:"permalink_url,omitempty"`

	ParentGID     *string `db:"parent_gid" json:"-"`
	AssigneeGID   *string `db:"assignee_gid" json:"-"`
	AssignedByGID *string `db:"assigned_by_gid" json:"-"`
	CreatedByGID  *string `db:"created_by_gid" json:"-"`
	WorkspaceGID  string  `db:"workspace_gid" json:"-"`

	// Relationship snapshots. Only populated by stores that resolve the
	// relation; the query compiler consults RelationResolver before use.
	Followers []string `db:"-" json:"-"`
	Projects  []string `db:"-" json:"-"`
	Sections  []string `db:"-" json:"-"`
	Tags      []string `db:"-" json:"-"`
}

// IsSubtask reports whether the task has a parent.
func (t *Task) IsSubtask() bool {
	return t.ParentGID != nil && *t.ParentGID != ""
}
