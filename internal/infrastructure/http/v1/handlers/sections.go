package handlers

import (
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"

	"github.com/gin-gonic/gin"
)

// SectionHandler serves section CRUD under projects.
type SectionHandler struct {
	*ResourceHandler[resource.Section]
	store domain.Store
}

func NewSectionHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *SectionHandler {
	return &SectionHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Section]{
			Repo:         store.Sections(),
			ResourceName: "section",
			GIDParam:     "section_gid",
			PageConfig:   pageCfg,
		}),
		store: store,
	}
}

// Create handles POST /projects/:project_gid/sections.
func (h *SectionHandler) Create(c *gin.Context) {
	projectGID, ok := h.PathGID(c, "project_gid", "project")
	if !ok {
		return
	}
	var req dto.CreateSectionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.Projects().GetByGID(ctx, projectGID); err != nil {
		h.Error(c, err)
		return
	}
	section := req.ToSection(projectGID)
	if err := h.store.Sections().Create(ctx, section); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, section)
}

// Update handles PUT /sections/:section_gid.
func (h *SectionHandler) Update(c *gin.Context) {
	sectionGID, ok := h.PathGID(c, "section_gid", "section")
	if !ok {
		return
	}
	var req dto.UpdateSectionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	section, err := h.store.Sections().GetByGID(ctx, sectionGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Apply(&section)
	if err := h.store.Sections().Update(ctx, section); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, section)
}

// ListByProject handles GET /projects/:project_gid/sections.
func (h *SectionHandler) ListByProject(c *gin.Context) {
	projectGID, ok := h.PathGID(c, "project_gid", "project")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Projects().GetByGID(ctx, projectGID); err != nil {
		h.Error(c, err)
		return
	}
	sections, err := h.store.Sections().List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	var matched []resource.Section
	for _, s := range sections {
		if s.ProjectGID == projectGID {
			matched = append(matched, s)
		}
	}
	h.RespondPage(c, matched)
}
