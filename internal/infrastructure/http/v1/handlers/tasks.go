package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/core/gid"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/query"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/http/v1/dto"
	"taskdeck/pkg/logger"
)

// TaskHandler serves task CRUD, listing filters and workspace search.
type TaskHandler struct {
	*ResourceHandler[resource.Task]
	store domain.Store
}

// NewTaskHandler creates a task handler.
func NewTaskHandler(base *BaseHandler, store domain.Store, pageCfg page.Config) *TaskHandler {
	return &TaskHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[resource.Task]{
			Repo:         store.Tasks(),
			ResourceName: "task",
			GIDParam:     "task_gid",
			PageConfig:   pageCfg,
			MapToDTO:     func(t resource.Task) any { return dto.FromTask(t) },
		}),
		store: store,
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if err := gid.Validate(req.Workspace, "workspace", false); err != nil {
		h.Error(c, err)
		return
	}
	for name, ref := range map[string]*string{
		"assignee": req.Assignee, "assigned_by": req.AssignedBy, "parent": req.Parent,
	} {
		if ref != nil {
			if err := gid.Validate(*ref, name, false); err != nil {
				h.Error(c, err)
				return
			}
		}
	}

	task, err := req.ToTask(req.Workspace)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.store.Tasks().Create(c.Request.Context(), task); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromTask(task))
}

// Update handles PUT /tasks/:task_gid.
func (h *TaskHandler) Update(c *gin.Context) {
	taskGID, ok := h.PathGID(c, "task_gid", "task")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	task, err := h.store.Tasks().GetByGID(ctx, taskGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := req.Apply(&task); err != nil {
		h.Error(c, err)
		return
	}
	if err := h.store.Tasks().Update(ctx, task); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromTask(task))
}

// List handles GET /tasks with optional assignee, workspace, project and
// completed filters. Results keep stable creation order.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.store.Tasks().List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	assignee := c.Query("assignee")
	workspace := c.Query("workspace")
	project := c.Query("project")
	completed := c.Query("completed")

	filtered := tasks[:0:0]
	for _, t := range tasks {
		if assignee != "" && (t.AssigneeGID == nil || *t.AssigneeGID != assignee) {
			continue
		}
		if workspace != "" && t.WorkspaceGID != workspace {
			continue
		}
		if project != "" && !contains(t.Projects, project) {
			continue
		}
		if completed != "" && t.Completed != (completed == "true") {
			continue
		}
		filtered = append(filtered, t)
	}
	h.RespondPage(c, filtered)
}

// Subtasks handles GET /tasks/:task_gid/subtasks.
func (h *TaskHandler) Subtasks(c *gin.Context) {
	taskGID, ok := h.PathGID(c, "task_gid", "task")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Tasks().GetByGID(ctx, taskGID); err != nil {
		h.Error(c, err)
		return
	}
	tasks, err := h.store.Tasks().List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	var subtasks []resource.Task
	for _, t := range tasks {
		if t.ParentGID != nil && *t.ParentGID == taskGID {
			subtasks = append(subtasks, t)
		}
	}
	h.RespondPage(c, subtasks)
}

// Search handles GET /workspaces/:workspace_gid/tasks/search. Filter
// parameters are parsed permissively; malformed values are dropped and
// logged, never rejected.
func (h *TaskHandler) Search(c *gin.Context) {
	workspaceGID, ok := h.PathGID(c, "workspace_gid", "workspace")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Workspaces().GetByGID(ctx, workspaceGID); err != nil {
		h.Error(c, err)
		return
	}

	raw := make(map[string]string)
	for key, vals := range c.Request.URL.Query() {
		if len(vals) > 0 {
			raw[key] = vals[0]
		}
	}
	spec := query.ParseSpec(raw)
	if len(spec.Warnings) > 0 {
		logger.Debug(ctx, "dropped malformed search filters", "warnings", spec.Warnings)
	}
	pred := query.Compile(spec, query.SnapshotResolver{})

	tasks, err := h.store.Tasks().List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	var matched []resource.Task
	for i := range tasks {
		if tasks[i].WorkspaceGID != workspaceGID {
			continue
		}
		if pred(&tasks[i]) {
			matched = append(matched, tasks[i])
		}
	}
	h.RespondPage(c, matched)
}

// ListByProject handles GET /projects/:project_gid/tasks.
func (h *TaskHandler) ListByProject(c *gin.Context) {
	projectGID, ok := h.PathGID(c, "project_gid", "project")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.store.Projects().GetByGID(ctx, projectGID); err != nil {
		h.Error(c, err)
		return
	}
	tasks, err := h.store.Tasks().List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	var matched []resource.Task
	for _, t := range tasks {
		if contains(t.Projects, projectGID) {
			matched = append(matched, t)
		}
	}
	h.RespondPage(c, matched)
}

// SetParent handles POST /tasks/:task_gid/setParent.
func (h *TaskHandler) SetParent(c *gin.Context) {
	taskGID, ok := h.PathGID(c, "task_gid", "task")
	if !ok {
		return
	}
	var req struct {
		Parent *string `json:"parent"`
	}
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	task, err := h.store.Tasks().GetByGID(ctx, taskGID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if req.Parent == nil || *req.Parent == "" {
		task.ParentGID = nil
	} else {
		if err := gid.Validate(*req.Parent, "parent", false); err != nil {
			h.Error(c, err)
			return
		}
		if *req.Parent == taskGID {
			h.Error(c, apperror.NewValidation("A task cannot be its own parent"))
			return
		}
		if _, err := h.store.Tasks().GetByGID(ctx, *req.Parent); err != nil {
			h.Error(c, err)
			return
		}
		task.ParentGID = req.Parent
	}
	if err := h.store.Tasks().Update(ctx, task); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(dto.FromTask(task)))
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
