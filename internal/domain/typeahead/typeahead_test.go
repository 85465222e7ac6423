package typeahead

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/domain/resource"
	"taskdeck/internal/infrastructure/storage/memory"
)

func strptr(s string) *string { return &s }

func seededRanker(t *testing.T) *Ranker {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	users := []resource.User{
		{GID: "u1", ResourceType: resource.KindUser, Name: "Alice Chen", Email: "alice@example.com"},
		{GID: "u2", ResourceType: resource.KindUser, Name: "Bob Marsh", Email: "bob@example.com"},
		{GID: "u3", ResourceType: resource.KindUser, Name: "Sam Ortiz", Email: "sam.ali@example.com"},
	}
	for _, u := range users {
		require.NoError(t, store.Users().Create(ctx, u))
	}

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	projects := []resource.Project{
		{GID: "p1", ResourceType: resource.KindProject, Name: "Website Redesign", CreatedAt: base},
		{GID: "p2", ResourceType: resource.KindProject, Name: "Mobile App", CreatedAt: base.Add(48 * time.Hour)},
		{GID: "p3", ResourceType: resource.KindProject, Name: "Onboarding", CreatedAt: base.Add(24 * time.Hour)},
	}
	for _, p := range projects {
		require.NoError(t, store.Projects().Create(ctx, p))
	}

	require.NoError(t, store.Tags().Create(ctx, resource.Tag{GID: "t1", ResourceType: resource.KindTag, Name: "urgent"}))

	return NewRanker(DefaultConfig(), store)
}

func TestRank_UserMatchesNameAndEmail(t *testing.T) {
	r := seededRanker(t)

	refs, err := r.Rank(context.Background(), "user", strptr("ali"), 5)
	require.NoError(t, err)

	// "ali" hits Alice by name and Sam by email; sorted by name
	require.Len(t, refs, 2)
	assert.Equal(t, "Alice Chen", refs[0].Name)
	assert.Equal(t, "Sam Ortiz", refs[1].Name)
	for _, ref := range refs {
		assert.Equal(t, resource.KindUser, ref.ResourceType)
	}
}

func TestRank_CountBounds(t *testing.T) {
	r := seededRanker(t)
	ctx := context.Background()

	refs, err := r.Rank(ctx, "user", strptr("ali"), 1)
	require.NoError(t, err)
	assert.Len(t, refs, 1)

	// count <= 0 falls back to the default
	refs, err = r.Rank(ctx, "user", nil, 0)
	require.NoError(t, err)
	assert.Len(t, refs, 3)
}

func TestRank_NilQueryReturnsAll(t *testing.T) {
	r := seededRanker(t)

	refs, err := r.Rank(context.Background(), "project", nil, 10)
	require.NoError(t, err)
	assert.Len(t, refs, 3)
}

func TestRank_ProjectsOrderedByRecency(t *testing.T) {
	r := seededRanker(t)

	refs, err := r.Rank(context.Background(), "project", nil, 10)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "Mobile App", refs[0].Name)
	assert.Equal(t, "Onboarding", refs[1].Name)
	assert.Equal(t, "Website Redesign", refs[2].Name)
}

func TestRank_ProjectTemplateOverridesTag(t *testing.T) {
	r := seededRanker(t)

	refs, err := r.Rank(context.Background(), "project_template", strptr("mobile"), 10)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "p2", refs[0].GID)
	assert.Equal(t, resource.KindProjectTemplate, refs[0].ResourceType)
}

func TestRank_EmptyCollections(t *testing.T) {
	r := seededRanker(t)
	ctx := context.Background()

	for _, tag := range []string{"portfolio", "goal"} {
		refs, err := r.Rank(ctx, tag, nil, 10)
		require.NoError(t, err)
		assert.Empty(t, refs)
	}
}

func TestRank_UnknownTypeYieldsEmpty(t *testing.T) {
	r := seededRanker(t)

	refs, err := r.Rank(context.Background(), "unknown_type", strptr("x"), 5)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestRank_CaseInsensitive(t *testing.T) {
	r := seededRanker(t)

	refs, err := r.Rank(context.Background(), "tag", strptr("URGENT"), 5)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "urgent", refs[0].Name)
}
