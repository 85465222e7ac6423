package dto

import (
	"time"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/core/id"
	"taskdeck/internal/domain/query"
	"taskdeck/internal/domain/resource"
)

// CompactRef is the short object form embedded in responses.
type CompactRef struct {
	GID          string        `json:"gid"`
	ResourceType resource.Kind `json:"resource_type"`
	Name         string        `json:"name,omitempty"`
}

func compact(gid *string, kind resource.Kind) *CompactRef {
	if gid == nil || *gid == "" {
		return nil
	}
	return &CompactRef{GID: *gid, ResourceType: kind}
}

// TaskResponse is the full task payload with relations in compact form.
type TaskResponse struct {
	resource.Task
	Assignee   *CompactRef `json:"assignee"`
	AssignedBy *CompactRef `json:"assigned_by,omitempty"`
	CreatedBy  *CompactRef `json:"created_by,omitempty"`
	Parent     *CompactRef `json:"parent"`
	Workspace  *CompactRef `json:"workspace,omitempty"`
}

// FromTask creates TaskResponse from a task.
func FromTask(t resource.Task) TaskResponse {
	return TaskResponse{
		Task:       t,
		Assignee:   compact(t.AssigneeGID, resource.KindUser),
		AssignedBy: compact(t.AssignedByGID, resource.KindUser),
		CreatedBy:  compact(t.CreatedByGID, resource.KindUser),
		Parent:     compact(t.ParentGID, resource.KindTask),
		Workspace:  compact(&t.WorkspaceGID, resource.KindWorkspace),
	}
}

// FromTasks maps a slice of tasks to responses.
func FromTasks(tasks []resource.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = FromTask(t)
	}
	return out
}

// CreateTaskRequest for creating tasks.
type CreateTaskRequest struct {
	Name            string  `json:"name" binding:"required"`
	Workspace       string  `json:"workspace"`
	Notes           string  `json:"notes"`
	HTMLNotes       string  `json:"html_notes"`
	ResourceSubtype string  `json:"resource_subtype"`
	ApprovalStatus  string  `json:"approval_status"`
	AssigneeStatus  string  `json:"assignee_status"`
	Completed       bool    `json:"completed"`
	Liked           bool    `json:"liked"`
	DueOn           *string `json:"due_on"`
	DueAt           *string `json:"due_at"`
	StartOn         *string `json:"start_on"`
	StartAt         *string `json:"start_at"`
	Assignee        *string `json:"assignee"`
	AssignedBy      *string `json:"assigned_by"`
	Parent          *string `json:"parent"`
}

// ToTask builds a new task from the request. Date-only fields are
// normalized to midnight UTC; due_on and due_at are mutually exclusive.
func (r CreateTaskRequest) ToTask(workspaceGID string) (resource.Task, error) {
	var task resource.Task
	if r.DueOn != nil && r.DueAt != nil {
		return task, apperror.NewValidation("Cannot specify both due_on and due_at")
	}
	if r.StartOn != nil && r.StartAt != nil {
		return task, apperror.NewValidation("Cannot specify both start_on and start_at")
	}

	now := time.Now().UTC()
	subtype := r.ResourceSubtype
	if subtype == "" {
		subtype = "default_task"
	}
	task = resource.Task{
		GID:             id.NewGID(),
		ResourceType:    resource.KindTask,
		Name:            r.Name,
		Notes:           r.Notes,
		HTMLNotes:       r.HTMLNotes,
		ResourceSubtype: subtype,
		ApprovalStatus:  r.ApprovalStatus,
		AssigneeStatus:  r.AssigneeStatus,
		Completed:       r.Completed,
		Liked:           r.Liked,
		CreatedAt:       now,
		ModifiedAt:      &now,
		AssigneeGID:     r.Assignee,
		AssignedByGID:   r.AssignedBy,
		ParentGID:       r.Parent,
		WorkspaceGID:    workspaceGID,
	}
	if task.Completed {
		task.CompletedAt = &now
	}

	var err error
	if task.DueOn, err = parseDateOnly("due_on", r.DueOn); err != nil {
		return task, err
	}
	if task.DueAt, err = ParseDate("due_at", r.DueAt); err != nil {
		return task, err
	}
	if task.StartOn, err = parseDateOnly("start_on", r.StartOn); err != nil {
		return task, err
	}
	if task.StartAt, err = ParseDate("start_at", r.StartAt); err != nil {
		return task, err
	}
	return task, nil
}

// UpdateTaskRequest for updating tasks. Only present fields are applied.
type UpdateTaskRequest struct {
	Name            *string `json:"name"`
	Notes           *string `json:"notes"`
	HTMLNotes       *string `json:"html_notes"`
	ResourceSubtype *string `json:"resource_subtype"`
	ApprovalStatus  *string `json:"approval_status"`
	AssigneeStatus  *string `json:"assignee_status"`
	Completed       *bool   `json:"completed"`
	Liked           *bool   `json:"liked"`
	DueOn           *string `json:"due_on"`
	DueAt           *string `json:"due_at"`
	StartOn         *string `json:"start_on"`
	StartAt         *string `json:"start_at"`
	Assignee        *string `json:"assignee"`
	Parent          *string `json:"parent"`
}

// Apply merges the request into the existing task and bumps modified_at.
func (r UpdateTaskRequest) Apply(task *resource.Task) error {
	if r.Name != nil {
		task.Name = *r.Name
	}
	if r.Notes != nil {
		task.Notes = *r.Notes
	}
	if r.HTMLNotes != nil {
		task.HTMLNotes = *r.HTMLNotes
	}
	if r.ResourceSubtype != nil {
		task.ResourceSubtype = *r.ResourceSubtype
	}
	if r.ApprovalStatus != nil {
		task.ApprovalStatus = *r.ApprovalStatus
	}
	if r.AssigneeStatus != nil {
		task.AssigneeStatus = *r.AssigneeStatus
	}
	if r.Liked != nil {
		task.Liked = *r.Liked
	}
	if r.Assignee != nil {
		if *r.Assignee == "" {
			task.AssigneeGID = nil
		} else {
			task.AssigneeGID = r.Assignee
		}
	}
	if r.Parent != nil {
		if *r.Parent == "" {
			task.ParentGID = nil
		} else {
			task.ParentGID = r.Parent
		}
	}

	now := time.Now().UTC()
	if r.Completed != nil && *r.Completed != task.Completed {
		task.Completed = *r.Completed
		if task.Completed {
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	var err error
	if r.DueOn != nil {
		if task.DueOn, err = parseDateOnly("due_on", r.DueOn); err != nil {
			return err
		}
		task.DueAt = nil
	}
	if r.DueAt != nil {
		if task.DueAt, err = ParseDate("due_at", r.DueAt); err != nil {
			return err
		}
	}
	if r.StartOn != nil {
		if task.StartOn, err = parseDateOnly("start_on", r.StartOn); err != nil {
			return err
		}
		task.StartAt = nil
	}
	if r.StartAt != nil {
		if task.StartAt, err = ParseDate("start_at", r.StartAt); err != nil {
			return err
		}
	}

	task.ModifiedAt = &now
	return nil
}

func parseDateOnly(field string, val *string) (*time.Time, error) {
	t, err := ParseDate(field, val)
	if err != nil || t == nil {
		return nil, err
	}
	day := query.DateOf(*t)
	return &day, nil
}
