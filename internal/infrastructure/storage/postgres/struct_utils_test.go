package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/domain/resource"
)

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[resource.Task]()

	assert.Contains(t, cols, "gid")
	assert.Contains(t, cols, "workspace_gid")
	assert.Contains(t, cols, "due_on")

	// Relation slices carry db:"-" and must not become columns.
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "followers")
	assert.NotContains(t, cols, "projects")
}

func TestExtractDBColumnsCached(t *testing.T) {
	first := ExtractDBColumns[resource.Tag]()
	second := ExtractDBColumns[resource.Tag]()
	assert.Equal(t, first, second)
}

func TestStructToMap(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tag := resource.Tag{
		GID:          "101",
		ResourceType: resource.KindTag,
		Name:         "urgent",
		Color:        "hot-pink",
		WorkspaceGID: "7",
		CreatedAt:    created,
	}

	m := StructToMap(tag)

	require.Equal(t, "101", m["gid"])
	assert.Equal(t, resource.KindTag, m["resource_type"])
	assert.Equal(t, "urgent", m["name"])
	assert.Equal(t, "hot-pink", m["color"])
	assert.Equal(t, "7", m["workspace_gid"])
	assert.Equal(t, created, m["created_at"])
	assert.NotContains(t, m, "-")
}

func TestStructToMapPointerFields(t *testing.T) {
	assignee := "42"
	task := resource.Task{GID: "1", AssigneeGID: &assignee}

	m := StructToMap(task)

	require.Contains(t, m, "assignee_gid")
	assert.Equal(t, &assignee, m["assignee_gid"])
	assert.Nil(t, m["parent_gid"])
}
