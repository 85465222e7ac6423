package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// WorkspaceHandler serves workspace CRUD.
type WorkspaceHandler struct {
	*ResourceHandler[resource.Workspace]
	store domain.Store
}

func NewWorkspaceHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *WorkspaceHandler {
	return &WorkspaceHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Workspace]{
			Repo:         store.Workspaces(),
			ResourceName: "workspace",
			GIDParam:     "workspace_gid",
			PageConfig:   pageCfg,
		}),
		store: store,
	}
}

// Create handles POST /workspaces.
func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	workspace := req.ToWorkspace()
	if err := h.store.Workspaces().Create(c.Request.Context(), workspace); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, workspace)
}

// Update handles PUT /workspaces/:workspace_gid.
func (h *WorkspaceHandler) Update(c *gin.Context) {
	workspaceGID, ok := h.PathGID(c, "workspace_gid", "workspace")
	if !ok {
		return
	}
	var req dto.UpdateWorkspaceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	workspace, err := h.store.Workspaces().GetByGID(ctx, workspaceGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Apply(&workspace)
	if err := h.store.Workspaces().Update(ctx, workspace); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, workspace)
}
