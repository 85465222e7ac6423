// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/typeahead"
	"taskdeck/internal/infrastructure/http/v1/handlers"
	"taskdeck/internal/infrastructure/http/v1/middleware"
	"taskdeck/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Store is the storage backend serving all collections
	Store domain.Store

	// APIPrefix is the base path for the versioned API group.
	// Defaults to /api/v1; next_page paths follow it automatically.
	APIPrefix string

	// Logger for request logging
	Logger *logger.Logger

	// Pagination bounds applied to all list endpoints
	Pagination page.Config

	// Typeahead bounds for the typeahead endpoint
	Typeahead typeahead.Config

	// Backend names the storage implementation for the info endpoint
	Backend string

	// Version reported by the info endpoint
	Version string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Store, cfg.Backend, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	taskHandler := handlers.NewTaskHandler(base, cfg.Store, cfg.Pagination)
	projectHandler := handlers.NewProjectHandler(base, cfg.Store, cfg.Pagination)
	sectionHandler := handlers.NewSectionHandler(base, cfg.Store, cfg.Pagination)
	tagHandler := handlers.NewTagHandler(base, cfg.Store, cfg.Pagination)
	teamHandler := handlers.NewTeamHandler(base, cfg.Store, cfg.Pagination)
	userHandler := handlers.NewUserHandler(base, cfg.Store, cfg.Pagination)
	workspaceHandler := handlers.NewWorkspaceHandler(base, cfg.Store, cfg.Pagination)
	customFieldHandler := handlers.NewCustomFieldHandler(base, cfg.Store, cfg.Pagination)
	storyHandler := handlers.NewStoryHandler(base, cfg.Store, cfg.Pagination)
	typeaheadHandler := handlers.NewTypeaheadHandler(base, cfg.Store, cfg.Typeahead)

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}
	api := router.Group(prefix)
	{
		workspaces := api.Group("/workspaces")
		{
			workspaces.POST("", workspaceHandler.Create)
			workspaces.GET("", workspaceHandler.List)
			workspaces.GET("/:workspace_gid", workspaceHandler.Get)
			workspaces.PUT("/:workspace_gid", workspaceHandler.Update)
			workspaces.DELETE("/:workspace_gid", workspaceHandler.Delete)
			workspaces.GET("/:workspace_gid/tasks/search", taskHandler.Search)
			workspaces.GET("/:workspace_gid/typeahead", typeaheadHandler.Search)
			workspaces.GET("/:workspace_gid/users", userHandler.ListByWorkspace)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/:task_gid", taskHandler.Get)
			tasks.PUT("/:task_gid", taskHandler.Update)
			tasks.DELETE("/:task_gid", taskHandler.Delete)
			tasks.GET("/:task_gid/subtasks", taskHandler.Subtasks)
			tasks.POST("/:task_gid/setParent", taskHandler.SetParent)
			tasks.GET("/:task_gid/stories", storyHandler.ListByTask)
			tasks.POST("/:task_gid/stories", storyHandler.Create)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.List)
			projects.GET("/:project_gid", projectHandler.Get)
			projects.PUT("/:project_gid", projectHandler.Update)
			projects.DELETE("/:project_gid", projectHandler.Delete)
			projects.GET("/:project_gid/tasks", taskHandler.ListByProject)
			projects.GET("/:project_gid/sections", sectionHandler.ListByProject)
			projects.POST("/:project_gid/sections", sectionHandler.Create)
		}

		sections := api.Group("/sections")
		{
			sections.GET("/:section_gid", sectionHandler.Get)
			sections.PUT("/:section_gid", sectionHandler.Update)
			sections.DELETE("/:section_gid", sectionHandler.Delete)
		}

		tags := api.Group("/tags")
		{
			tags.POST("", tagHandler.Create)
			tags.GET("", tagHandler.List)
			tags.GET("/:tag_gid", tagHandler.Get)
			tags.PUT("/:tag_gid", tagHandler.Update)
			tags.DELETE("/:tag_gid", tagHandler.Delete)
		}

		teams := api.Group("/teams")
		{
			teams.POST("", teamHandler.Create)
			teams.GET("", teamHandler.List)
			teams.GET("/:team_gid", teamHandler.Get)
			teams.PUT("/:team_gid", teamHandler.Update)
			teams.DELETE("/:team_gid", teamHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:user_gid", userHandler.Get)
			users.PUT("/:user_gid", userHandler.Update)
			users.DELETE("/:user_gid", userHandler.Delete)
		}

		customFields := api.Group("/custom_fields")
		{
			customFields.POST("", customFieldHandler.Create)
			customFields.GET("", customFieldHandler.List)
			customFields.GET("/:custom_field_gid", customFieldHandler.Get)
			customFields.PUT("/:custom_field_gid", customFieldHandler.Update)
			customFields.DELETE("/:custom_field_gid", customFieldHandler.Delete)
		}

		stories := api.Group("/stories")
		{
			stories.GET("/:story_gid", storyHandler.Get)
			stories.DELETE("/:story_gid", storyHandler.Delete)
		}
	}

	return router
}
