package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"taskdeck/internal/core/id"
	"taskdeck/internal/domain/resource"
)

// --- Sections ---

type CreateSectionRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateSectionRequest) ToSection(projectGID string) resource.Section {
	return resource.Section{
		GID:          id.NewGID(),
		ResourceType: resource.KindSection,
		Name:         r.Name,
		ProjectGID:   projectGID,
		CreatedAt:    time.Now().UTC(),
	}
}

type UpdateSectionRequest struct {
	Name *string `json:"name"`
}

func (r UpdateSectionRequest) Apply(s *resource.Section) {
	if r.Name != nil {
		s.Name = *r.Name
	}
}

// --- Tags ---

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
	Notes string `json:"notes"`
}

func (r CreateTagRequest) ToTag(workspaceGID string) resource.Tag {
	return resource.Tag{
		GID:          id.NewGID(),
		ResourceType: resource.KindTag,
		Name:         r.Name,
		Color:        r.Color,
		Notes:        r.Notes,
		WorkspaceGID: workspaceGID,
		CreatedAt:    time.Now().UTC(),
	}
}

type UpdateTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Notes *string `json:"notes"`
}

func (r UpdateTagRequest) Apply(t *resource.Tag) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Color != nil {
		t.Color = *r.Color
	}
	if r.Notes != nil {
		t.Notes = *r.Notes
	}
}

// --- Teams ---

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
}

func (r CreateTeamRequest) ToTeam(organizationGID string) resource.Team {
	return resource.Team{
		GID:             id.NewGID(),
		ResourceType:    resource.KindTeam,
		Name:            r.Name,
		Description:     r.Description,
		Visibility:      r.Visibility,
		OrganizationGID: organizationGID,
		CreatedAt:       time.Now().UTC(),
	}
}

type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"`
}

func (r UpdateTeamRequest) Apply(t *resource.Team) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Visibility != nil {
		t.Visibility = *r.Visibility
	}
}

// --- Users ---

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

func (r CreateUserRequest) ToUser() resource.User {
	return resource.User{
		GID:          id.NewGID(),
		ResourceType: resource.KindUser,
		Name:         r.Name,
		Email:        r.Email,
		CreatedAt:    time.Now().UTC(),
	}
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r UpdateUserRequest) Apply(u *resource.User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
}

// --- Workspaces ---

type CreateWorkspaceRequest struct {
	Name           string `json:"name" binding:"required"`
	IsOrganization bool   `json:"is_organization"`
}

func (r CreateWorkspaceRequest) ToWorkspace() resource.Workspace {
	return resource.Workspace{
		GID:            id.NewGID(),
		ResourceType:   resource.KindWorkspace,
		Name:           r.Name,
		IsOrganization: r.IsOrganization,
		CreatedAt:      time.Now().UTC(),
	}
}

type UpdateWorkspaceRequest struct {
	Name *string `json:"name"`
}

func (r UpdateWorkspaceRequest) Apply(w *resource.Workspace) {
	if r.Name != nil {
		w.Name = *r.Name
	}
}

// --- Custom fields ---

type CreateCustomFieldRequest struct {
	Name        string           `json:"name" binding:"required"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Enabled     *bool            `json:"enabled"`
	Precision   int              `json:"precision"`
	NumberValue *decimal.Decimal `json:"number_value"`
	TextValue   string           `json:"text_value"`
}

func (r CreateCustomFieldRequest) ToCustomField(workspaceGID string) resource.CustomField {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return resource.CustomField{
		GID:          id.NewGID(),
		ResourceType: resource.KindCustomField,
		Name:         r.Name,
		Type:         r.Type,
		Description:  r.Description,
		Enabled:      enabled,
		Precision:    r.Precision,
		NumberValue:  r.NumberValue,
		TextValue:    r.TextValue,
		WorkspaceGID: workspaceGID,
		CreatedAt:    time.Now().UTC(),
	}
}

type UpdateCustomFieldRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Enabled     *bool            `json:"enabled"`
	Precision   *int             `json:"precision"`
	NumberValue *decimal.Decimal `json:"number_value"`
	TextValue   *string          `json:"text_value"`
}

func (r UpdateCustomFieldRequest) Apply(f *resource.CustomField) {
	if r.Name != nil {
		f.Name = *r.Name
	}
	if r.Description != nil {
		f.Description = *r.Description
	}
	if r.Enabled != nil {
		f.Enabled = *r.Enabled
	}
	if r.Precision != nil {
		f.Precision = *r.Precision
	}
	if r.NumberValue != nil {
		f.NumberValue = r.NumberValue
	}
	if r.TextValue != nil {
		f.TextValue = *r.TextValue
	}
}

// CustomFieldResponse adds the precision-formatted display value.
type CustomFieldResponse struct {
	resource.CustomField
	DisplayValue string `json:"display_value"`
}

func FromCustomField(f resource.CustomField) CustomFieldResponse {
	return CustomFieldResponse{CustomField: f, DisplayValue: f.DisplayValue()}
}

// --- Stories ---

type CreateStoryRequest struct {
	Text      string  `json:"text" binding:"required"`
	CreatedBy *string `json:"created_by"`
}

func (r CreateStoryRequest) ToStory(taskGID string) resource.Story {
	return resource.Story{
		GID:             id.NewGID(),
		ResourceType:    resource.KindStory,
		ResourceSubtype: "comment_added",
		Text:            r.Text,
		TaskGID:         taskGID,
		CreatedByGID:    r.CreatedBy,
		CreatedAt:       time.Now().UTC(),
	}
}

// StoryResponse embeds the author in compact form.
type StoryResponse struct {
	resource.Story
	CreatedBy *CompactRef `json:"created_by,omitempty"`
}

func FromStory(s resource.Story) StoryResponse {
	return StoryResponse{Story: s, CreatedBy: compact(s.CreatedByGID, resource.KindUser)}
}

func FromStories(stories []resource.Story) []StoryResponse {
	out := make([]StoryResponse, len(stories))
	for i, s := range stories {
		out[i] = FromStory(s)
	}
	return out
}
