package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/gid"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// TagHandler serves tag CRUD.
type TagHandler struct {
	*ResourceHandler[resource.Tag]
	store domain.Store
}

func NewTagHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *TagHandler {
	return &TagHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Tag]{
			Repo:         store.Tags(),
			ResourceName: "tag",
			GIDParam:     "tag_gid",
			PageConfig:   pageCfg,
		}),
		store: store,
	}
}

// Create handles POST /tags.
func (h *TagHandler) Create(c *gin.Context) {
	var req struct {
		dto.CreateTagRequest
		Workspace string `json:"workspace"`
	}
	if !h.BindJSON(c, &req) {
		return
	}
	if err := gid.Validate(req.Workspace, "workspace", false); err != nil {
		h.Error(c, err)
		return
	}

	tag := req.ToTag(req.Workspace)
	if err := h.store.Tags().Create(c.Request.Context(), tag); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, tag)
}

// Update handles PUT /tags/:tag_gid.
func (h *TagHandler) Update(c *gin.Context) {
	tagGID, ok := h.PathGID(c, "tag_gid", "tag")
	if !ok {
		return
	}
	var req dto.UpdateTagRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	tag, err := h.store.Tags().GetByGID(ctx, tagGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Apply(&tag)
	if err := h.store.Tags().Update(ctx, tag); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, tag)
}
