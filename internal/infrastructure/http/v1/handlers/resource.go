package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// ResourceHandler provides generic read and delete handlers for one
// resource collection. Create and update stay resource-specific because
// their parent wiring differs.
type ResourceHandler[T any] struct {
	*BaseHandler
	repo         domain.Repository[T]
	resourceName string
	gidParam     string
	pageCfg      page.Config
	mapToDTO     func(T) any
}

// ResourceHandlerConfig configures the generic handler.
type ResourceHandlerConfig[T any] struct {
	Repo         domain.Repository[T]
	ResourceName string
	GIDParam     string
	PageConfig   page.Config
	MapToDTO     func(T) any
}

// NewResourceHandler creates a handler for one resource collection.
func NewResourceHandler[T any](base *BaseHandler, cfg ResourceHandlerConfig[T]) *ResourceHandler[T] {
	mapToDTO := cfg.MapToDTO
	if mapToDTO == nil {
		mapToDTO = func(entity T) any { return entity }
	}
	return &ResourceHandler[T]{
		BaseHandler:  base,
		repo:         cfg.Repo,
		resourceName: cfg.ResourceName,
		gidParam:     cfg.GIDParam,
		pageCfg:      cfg.PageConfig,
		mapToDTO:     mapToDTO,
	}
}

// Get handles GET /{collection}/:gid.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	gid, ok := h.PathGID(c, h.gidParam, h.resourceName)
	if !ok {
		return
	}
	entity, err := h.repo.GetByGID(c.Request.Context(), gid)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.mapToDTO(entity))
}

// List handles GET /{collection} with limit/offset pagination.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.RespondPage(c, items)
}

// Delete handles DELETE /{collection}/:gid.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	gid, ok := h.PathGID(c, h.gidParam, h.resourceName)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), gid); err != nil {
		h.Error(c, err)
		return
	}
	h.Deleted(c)
}

// RespondPage paginates an already filtered, stably ordered slice and
// writes the list envelope.
func (h *ResourceHandler[T]) RespondPage(c *gin.Context, items []T) {
	limit := h.ParseIntQuery(c, "limit", 0)
	p := page.Paginate(h.pageCfg, items, limit, c.Query("offset"))
	c.JSON(http.StatusOK, dto.WrapPage(page.Map(p, h.mapToDTO), c.Request.URL.Path))
}
