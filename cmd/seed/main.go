// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"taskdeck/internal/core/id"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/storage/postgres"
	"taskdeck/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}

	store, err := postgres.NewStore(pool)
	if err != nil {
		log.Fatalw("failed to initialize store", "error", err)
	}

	if err := seedDemoData(ctx, store, log); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	if err := reportChangeHistory(ctx, store, log); err != nil {
		log.Fatalw("failed to read change history", "error", err)
	}

	log.Info("seeding completed successfully")
}

// reportChangeHistory reads back the audit trail the seed run produced.
func reportChangeHistory(ctx context.Context, store *postgres.Store, log *logger.Logger) error {
	tasks, err := store.Tasks().List(ctx)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		entries, err := store.History(ctx, resource.KindTask, task.GID)
		if err != nil {
			return err
		}
		actions := make([]string, len(entries))
		for i, entry := range entries {
			actions[i] = entry.Action
		}
		log.Infow("change history", "task", task.Name, "actions", actions)
	}
	return nil
}

func seedDemoData(ctx context.Context, store domain.Store, log *logger.Logger) error {
	now := time.Now().UTC()

	workspace := resource.Workspace{
		GID:            id.NewGID(),
		ResourceType:   resource.KindWorkspace,
		Name:           "Demo Workspace",
		IsOrganization: true,
		CreatedAt:      now,
	}
	if err := store.Workspaces().Create(ctx, workspace); err != nil {
		return err
	}
	log.Infow("seeded workspace", "gid", workspace.GID)

	users := []resource.User{
		{GID: id.NewGID(), ResourceType: resource.KindUser, Name: "Alice Chen", Email: "alice@example.com", CreatedAt: now},
		{GID: id.NewGID(), ResourceType: resource.KindUser, Name: "Bob Malik", Email: "bob@example.com", CreatedAt: now},
	}
	for _, u := range users {
		if err := store.Users().Create(ctx, u); err != nil {
			return err
		}
	}
	log.Infow("seeded users", "count", len(users))

	team := resource.Team{
		GID:             id.NewGID(),
		ResourceType:    resource.KindTeam,
		Name:            "Engineering",
		OrganizationGID: workspace.GID,
		CreatedAt:       now,
	}
	if err := store.Teams().Create(ctx, team); err != nil {
		return err
	}

	project := resource.Project{
		GID:          id.NewGID(),
		ResourceType: resource.KindProject,
		Name:         "Launch Plan",
		Color:        "light-green",
		TeamGID:      &team.GID,
		WorkspaceGID: workspace.GID,
		CreatedAt:    now,
	}
	if err := store.Projects().Create(ctx, project); err != nil {
		return err
	}
	log.Infow("seeded project", "gid", project.GID)

	tag := resource.Tag{
		GID:          id.NewGID(),
		ResourceType: resource.KindTag,
		Name:         "urgent",
		Color:        "hot-pink",
		WorkspaceGID: workspace.GID,
		CreatedAt:    now,
	}
	if err := store.Tags().Create(ctx, tag); err != nil {
		return err
	}

	dueOn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7)
	tasks := []resource.Task{
		{
			GID:             id.NewGID(),
			ResourceType:    resource.KindTask,
			Name:            "Draft launch announcement",
			ResourceSubtype: "default_task",
			AssigneeGID:     &users[0].GID,
			DueOn:           &dueOn,
			WorkspaceGID:    workspace.GID,
			CreatedAt:       now,
			ModifiedAt:      &now,
		},
		{
			GID:             id.NewGID(),
			ResourceType:    resource.KindTask,
			Name:            "Review pricing page",
			ResourceSubtype: "default_task",
			AssigneeGID:     &users[1].GID,
			Completed:       true,
			CompletedAt:     &now,
			WorkspaceGID:    workspace.GID,
			CreatedAt:       now,
			ModifiedAt:      &now,
		},
	}
	for _, t := range tasks {
		if err := store.Tasks().Create(ctx, t); err != nil {
			return err
		}
	}
	log.Infow("seeded tasks", "count", len(tasks))

	return nil
}
