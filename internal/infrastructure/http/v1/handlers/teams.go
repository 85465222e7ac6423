package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/gid"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// TeamHandler serves team CRUD.
type TeamHandler struct {
	*ResourceHandler[resource.Team]
	store domain.Store
}

func NewTeamHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *TeamHandler {
	return &TeamHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Team]{
			Repo:         store.Teams(),
			ResourceName: "team",
			GIDParam:     "team_gid",
			PageConfig:   pageCfg,
		}),
		store: store,
	}
}

// Create handles POST /teams.
func (h *TeamHandler) Create(c *gin.Context) {
	var req struct {
		dto.CreateTeamRequest
		Organization string `json:"organization"`
	}
	if !h.BindJSON(c, &req) {
		return
	}
	if err := gid.Validate(req.Organization, "organization", false); err != nil {
		h.Error(c, err)
		return
	}

	team := req.ToTeam(req.Organization)
	if err := h.store.Teams().Create(c.Request.Context(), team); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, team)
}

// Update handles PUT /teams/:team_gid.
func (h *TeamHandler) Update(c *gin.Context) {
	teamGID, ok := h.PathGID(c, "team_gid", "team")
	if !ok {
		return
	}
	var req dto.UpdateTeamRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	team, err := h.store.Teams().GetByGID(ctx, teamGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Apply(&team)
	if err := h.store.Teams().Update(ctx, team); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, team)
}
