package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/domain/resource"
)

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tasks := store.Tasks()

	require.NoError(t, tasks.Create(ctx, resource.Task{GID: "1", Name: "first"}))

	got, err := tasks.GetByGID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	got.Name = "renamed"
	require.NoError(t, tasks.Update(ctx, got))
	got, err = tasks.GetByGID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	require.NoError(t, tasks.Delete(ctx, "1"))
	_, err = tasks.GetByGID(ctx, "1")
	assert.True(t, apperror.IsNotFound(err))
}

func TestCollection_DuplicateCreate(t *testing.T) {
	ctx := context.Background()
	tasks := NewStore().Tasks()

	require.NoError(t, tasks.Create(ctx, resource.Task{GID: "1"}))
	err := tasks.Create(ctx, resource.Task{GID: "1"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestCollection_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	tasks := NewStore().Tasks()

	for _, gid := range []string{"3", "1", "2"} {
		require.NoError(t, tasks.Create(ctx, resource.Task{GID: gid}))
	}
	require.NoError(t, tasks.Delete(ctx, "1"))
	require.NoError(t, tasks.Create(ctx, resource.Task{GID: "4"}))

	listed, err := tasks.List(ctx)
	require.NoError(t, err)

	gids := make([]string, len(listed))
	for i, tk := range listed {
		gids[i] = tk.GID
	}
	assert.Equal(t, []string{"3", "2", "4"}, gids)
}

func TestCollection_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	tasks := NewStore().Tasks()

	require.NoError(t, tasks.Create(ctx, resource.Task{GID: "1", Name: "a"}))
	require.NoError(t, tasks.Create(ctx, resource.Task{GID: "2", Name: "b"}))
	require.NoError(t, tasks.Update(ctx, resource.Task{GID: "1", Name: "a2"}))

	listed, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "1", listed[0].GID)
	assert.Equal(t, "a2", listed[0].Name)
}

func TestCollection_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	tasks := NewStore().Tasks()

	err := tasks.Update(ctx, resource.Task{GID: "nope"})
	assert.True(t, apperror.IsNotFound(err))
}
