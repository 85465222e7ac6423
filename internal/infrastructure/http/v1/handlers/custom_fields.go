package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/gid"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// CustomFieldHandler serves custom field CRUD. Number values render with
// field precision in display_value.
type CustomFieldHandler struct {
	*ResourceHandler[resource.CustomField]
	store domain.Store
}

func NewCustomFieldHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *CustomFieldHandler {
	return &CustomFieldHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.CustomField]{
			Repo:         store.CustomFields(),
			ResourceName: "custom_field",
			GIDParam:     "custom_field_gid",
			PageConfig:   pageCfg,
			MapToDTO:     func(f resource.CustomField) any { return dto.FromCustomField(f) },
		}),
		store: store,
	}
}

// Create handles POST /custom_fields.
func (h *CustomFieldHandler) Create(c *gin.Context) {
	var req struct {
		dto.CreateCustomFieldRequest
		Workspace string `json:"workspace"`
	}
	if !h.BindJSON(c, &req) {
		return
	}
	if err := gid.Validate(req.Workspace, "workspace", false); err != nil {
		h.Error(c, err)
		return
	}

	field := req.ToCustomField(req.Workspace)
	if err := h.store.CustomFields().Create(c.Request.Context(), field); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromCustomField(field))
}

// Update handles PUT /custom_fields/:custom_field_gid.
func (h *CustomFieldHandler) Update(c *gin.Context) {
	fieldGID, ok := h.PathGID(c, "custom_field_gid", "custom_field")
	if !ok {
		return
	}
	var req dto.UpdateCustomFieldRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	field, err := h.store.CustomFields().GetByGID(ctx, fieldGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Apply(&field)
	if err := h.store.CustomFields().Update(ctx, field); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCustomField(field))
}
