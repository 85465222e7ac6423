package dto

import (
	"time"

	"taskdeck/internal/core/id"
	"taskdeck/internal/domain/resource"
)

// ProjectResponse is the full project payload.
type ProjectResponse struct {
	resource.Project
	Team      *CompactRef `json:"team,omitempty"`
	Workspace *CompactRef `json:"workspace,omitempty"`
}

func FromProject(p resource.Project) ProjectResponse {
	return ProjectResponse{
		Project:   p,
		Team:      compact(p.TeamGID, resource.KindTeam),
		Workspace: compact(&p.WorkspaceGID, resource.KindWorkspace),
	}
}

func FromProjects(projects []resource.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = FromProject(p)
	}
	return out
}

// CreateProjectRequest for creating projects.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Notes       string  `json:"notes"`
	HTMLNotes   string  `json:"html_notes"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	DefaultView string  `json:"default_view"`
	Public      bool    `json:"public"`
	Archived    bool    `json:"archived"`
	DueOn       *string `json:"due_on"`
	StartOn     *string `json:"start_on"`
	Team        *string `json:"team"`
}

func (r CreateProjectRequest) ToProject(workspaceGID string) (resource.Project, error) {
	now := time.Now().UTC()
	project := resource.Project{
		GID:          id.NewGID(),
		ResourceType: resource.KindProject,
		Name:         r.Name,
		Notes:        r.Notes,
		HTMLNotes:    r.HTMLNotes,
		Color:        r.Color,
		Icon:         r.Icon,
		DefaultView:  r.DefaultView,
		Public:       r.Public,
		Archived:     r.Archived,
		CreatedAt:    now,
		ModifiedAt:   &now,
		TeamGID:      r.Team,
		WorkspaceGID: workspaceGID,
	}

	var err error
	if project.DueOn, err = parseDateOnly("due_on", r.DueOn); err != nil {
		return project, err
	}
	if project.StartOn, err = parseDateOnly("start_on", r.StartOn); err != nil {
		return project, err
	}
	return project, nil
}

// UpdateProjectRequest for updating projects.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Notes       *string `json:"notes"`
	HTMLNotes   *string `json:"html_notes"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	DefaultView *string `json:"default_view"`
	Public      *bool   `json:"public"`
	Archived    *bool   `json:"archived"`
	Completed   *bool   `json:"completed"`
	DueOn       *string `json:"due_on"`
	StartOn     *string `json:"start_on"`
}

func (r UpdateProjectRequest) Apply(project *resource.Project) error {
	if r.Name != nil {
		project.Name = *r.Name
	}
	if r.Notes != nil {
		project.Notes = *r.Notes
	}
	if r.HTMLNotes != nil {
		project.HTMLNotes = *r.HTMLNotes
	}
	if r.Color != nil {
		project.Color = *r.Color
	}
	if r.Icon != nil {
		project.Icon = *r.Icon
	}
	if r.DefaultView != nil {
		project.DefaultView = *r.DefaultView
	}
	if r.Public != nil {
		project.Public = *r.Public
	}
	if r.Archived != nil {
		project.Archived = *r.Archived
	}

	now := time.Now().UTC()
	if r.Completed != nil && *r.Completed != project.Completed {
		project.Completed = *r.Completed
		if project.Completed {
			project.CompletedAt = &now
		} else {
			project.CompletedAt = nil
		}
	}

	var err error
	if r.DueOn != nil {
		if project.DueOn, err = parseDateOnly("due_on", r.DueOn); err != nil {
			return err
		}
	}
	if r.StartOn != nil {
		if project.StartOn, err = parseDateOnly("start_on", r.StartOn); err != nil {
			return err
		}
	}

	project.ModifiedAt = &now
	return nil
}
