package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// UserHandler serves user CRUD.
type UserHandler struct {
	*ResourceHandler[resource.User]
	store domain.Store
}

func NewUserHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.User]{
			Repo:         store.Users(),
			ResourceName: "user",
			GIDParam:     "user_gid",
			PageConfig:   pageCfg,
		}),
		store: store,
	}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	user := req.ToUser()
	if err := h.store.Users().Create(c.Request.Context(), user); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, user)
}

// ListByWorkspace handles GET /workspaces/:workspace_gid/users. Workspace
// membership is not modeled, so every user belongs to every workspace.
func (h *UserHandler) ListByWorkspace(c *gin.Context) {
	workspaceGID, ok := h.PathGID(c, "workspace_gid", "workspace")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Workspaces().GetByGID(ctx, workspaceGID); err != nil {
		h.Error(c, err)
		return
	}
	users, err := h.store.Users().List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.RespondPage(c, users)
}

// Update handles PUT /users/:user_gid.
func (h *UserHandler) Update(c *gin.Context) {
	userGID, ok := h.PathGID(c, "user_gid", "user")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	user, err := h.store.Users().GetByGID(ctx, userGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Apply(&user)
	if err := h.store.Users().Update(ctx, user); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}
