package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/typeahead"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// TypeaheadHandler serves workspace typeahead lookups.
type TypeaheadHandler struct {
	*BaseHandler
	ranker *typeahead.Ranker
	store  domain.Store
}

func NewTypeaheadHandler(base *BaseHandler, store domain.Store, cfg typeahead.Config) *TypeaheadHandler {
	return &TypeaheadHandler{
		BaseHandler: base,
		ranker:      typeahead.NewRanker(cfg, store),
		store:       store,
	}
}

// Search handles GET /workspaces/:workspace_gid/typeahead.
// resource_type is required; unknown types yield an empty result rather
// than an error so clients can probe capabilities.
func (h *TypeaheadHandler) Search(c *gin.Context) {
	workspaceGID, ok := h.PathGID(c, "workspace_gid", "workspace")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Workspaces().GetByGID(ctx, workspaceGID); err != nil {
		h.Error(c, err)
		return
	}

	resourceType := c.Query("resource_type")
	if resourceType == "" {
		h.Error(c, apperror.NewValidation("resource_type: Missing input"))
		return
	}

	var query *string
	if q, exists := c.GetQuery("query"); exists {
		query = &q
	}
	count := h.ParseIntQuery(c, "count", 0)

	refs, err := h.ranker.Rank(ctx, resourceType, query, count)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListEnvelope{Data: refs, NextPage: nil})
}
