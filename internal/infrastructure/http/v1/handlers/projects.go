package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/gid"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// ProjectHandler serves project CRUD and listing filters.
type ProjectHandler struct {
	*ResourceHandler[resource.Project]
	store domain.Store
}

func NewProjectHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *ProjectHandler {
	return &ProjectHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Project]{
			Repo:         store.Projects(),
			ResourceName: "project",
			GIDParam:     "project_gid",
			PageConfig:   pageCfg,
			MapToDTO:     func(p resource.Project) any { return dto.FromProject(p) },
		}),
		store: store,
	}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		dto.CreateProjectRequest
		Workspace string `json:"workspace"`
	}
	if !h.BindJSON(c, &req) {
		return
	}
	if err := gid.Validate(req.Workspace, "workspace", false); err != nil {
		h.Error(c, err)
		return
	}
	if req.Team != nil {
		if err := gid.Validate(*req.Team, "team", false); err != nil {
			h.Error(c, err)
			return
		}
	}

	project, err := req.ToProject(req.Workspace)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.store.Projects().Create(c.Request.Context(), project); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromProject(project))
}

// Update handles PUT /projects/:project_gid.
func (h *ProjectHandler) Update(c *gin.Context) {
	projectGID, ok := h.PathGID(c, "project_gid", "project")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	project, err := h.store.Projects().GetByGID(ctx, projectGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := req.Apply(&project); err != nil {
		h.Error(c, err)
		return
	}
	if err := h.store.Projects().Update(ctx, project); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProject(project))
}

// List handles GET /projects with optional workspace, team and archived
// filters.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.store.Projects().List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	workspace := c.Query("workspace")
	team := c.Query("team")
	archived := c.Query("archived")

	filtered := projects[:0:0]
	for _, p := range projects {
		if workspace != "" && p.WorkspaceGID != workspace {
			continue
		}
		if team != "" && (p.TeamGID == nil || *p.TeamGID != team) {
			continue
		}
		if archived != "" && p.Archived != (archived == "true") {
			continue
		}
		filtered = append(filtered, p)
	}
	h.RespondPage(c, filtered)
}
