package handlers

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/gid"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
)

// StoryHandler serves stories (comments and activity) attached to tasks.
type StoryHandler struct {
	*ResourceHandler[resource.Story]
	store domain.Store
}

func NewStoryHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *StoryHandler {
	return &StoryHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Story]{
			Repo:         store.Stories(),
			ResourceName: "story",
			GIDParam:     "story_gid",
			PageConfig:   pageCfg,
			MapToDTO:     func(s resource.Story) any { return dto.FromStory(s) },
		}),
		store: store,
	}
}

// Create handles POST /tasks/:task_gid/stories.
func (h *StoryHandler) Create(c *gin.Context) {
	taskGID, ok := h.PathGID(c, "task_gid", "task")
	if !ok {
		return
	}
	var req dto.CreateStoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if req.CreatedBy != nil {
		if err := gid.Validate(*req.CreatedBy, "user", false); err != nil {
			h.Error(c, err)
			return
		}
	}

	ctx := c.Request.Context()
	if _, err := h.store.Tasks().GetByGID(ctx, taskGID); err != nil {
		h.Error(c, err)
		return
	}
	story := req.ToStory(taskGID)
	if err := h.store.Stories().Create(ctx, story); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromStory(story))
}

// ListByTask handles GET /tasks/:task_gid/stories.
func (h *StoryHandler) ListByTask(c *gin.Context) {
	taskGID, ok := h.PathGID(c, "task_gid", "task")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Tasks().GetByGID(ctx, taskGID); err != nil {
		h.Error(c, err)
		return
	}
	stories, err := h.store.Stories().List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	var matched []resource.Story
	for _, s := range stories {
		if s.TaskGID == taskGID {
			matched = append(matched, s)
		}
	}
	h.RespondPage(c, matched)
}
