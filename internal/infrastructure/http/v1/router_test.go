package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/typeahead"
	"taskdeck/internal/infrastructure/storage/memory"
	"taskdeck/pkg/logger"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterConfig{
		Store:      memory.NewStore(),
		Logger:     logger.Default(),
		Pagination: page.DefaultConfig(),
		Typeahead:  typeahead.DefaultConfig(),
		Backend:    "memory",
		Version:    "test",
	})
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createWorkspace(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/v1/workspaces", map[string]any{
		"name": "Acme",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	return data["gid"].(string)
}

func createTask(t *testing.T, router http.Handler, workspace string, fields map[string]any) map[string]any {
	t.Helper()
	body := map[string]any{"workspace": workspace}
	for k, v := range fields {
		body[k] = v
	}
	rec := do(t, router, http.MethodPost, "/api/v1/tasks", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)["data"].(map[string]any)
}

func TestTaskLifecycle(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)

	created := createTask(t, router, ws, map[string]any{
		"name":   "Write launch notes",
		"due_on": "2026-09-15",
	})
	gid := created["gid"].(string)
	assert.Equal(t, "task", created["resource_type"])
	assert.Equal(t, "default_task", created["resource_subtype"])

	rec := do(t, router, http.MethodGet, "/api/v1/tasks/"+gid, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Write launch notes", got["name"])

	rec = do(t, router, http.MethodPut, "/api/v1/tasks/"+gid, map[string]any{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, true, updated["completed"])
	assert.NotNil(t, updated["completed_at"])

	rec = do(t, router, http.MethodDelete, "/api/v1/tasks/"+gid, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/tasks/"+gid, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidGIDRendersErrorEnvelope(t *testing.T) {
	router := testRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/tasks/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	errs := body["errors"].([]any)
	require.Len(t, errs, 1)
	first := errs[0].(map[string]any)
	assert.Equal(t, "task: Not a Long: abc", first["message"])
	assert.NotEmpty(t, first["help"])
}

func TestUUIDGIDAccepted(t *testing.T) {
	router := testRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/tasks/550e8400-e29b-41d4-a716-446655440000", nil)
	// Passes validation, then 404 since nothing stored under that gid.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchFiltersByDueDateAndCompletion(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)

	createTask(t, router, ws, map[string]any{
		"name": "in range, open", "due_on": "2026-09-10",
	})
	createTask(t, router, ws, map[string]any{
		"name": "in range, done", "due_on": "2026-09-10", "completed": true,
	})
	createTask(t, router, ws, map[string]any{
		"name": "out of range", "due_on": "2026-10-01",
	})

	rec := do(t, router, http.MethodGet,
		"/api/v1/workspaces/"+ws+"/tasks/search?due_on.before=2026-09-20&completed=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "in range, open", data[0].(map[string]any)["name"])
}

func TestSearchIgnoresMalformedFilterValues(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)
	createTask(t, router, ws, map[string]any{"name": "kept"})

	// Malformed date and non-canonical boolean are dropped, not rejected.
	rec := do(t, router, http.MethodGet,
		"/api/v1/workspaces/"+ws+"/tasks/search?due_on.before=not-a-date&completed=True", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].([]any)
	assert.Len(t, data, 1)
}

func TestListPagination(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)
	for i := 0; i < 5; i++ {
		createTask(t, router, ws, map[string]any{"name": fmt.Sprintf("task %d", i)})
	}

	rec := do(t, router, http.MethodGet, "/api/v1/tasks?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 2)

	next := body["next_page"].(map[string]any)
	assert.Equal(t, "2", next["offset"])
	assert.Equal(t, "/api/v1/tasks", next["path"])
	assert.Contains(t, next["uri"], "limit=2")
	assert.Contains(t, next["uri"], "offset=2")

	// Follow the continuation until exhausted.
	rec = do(t, router, http.MethodGet, "/api/v1/tasks?limit=2&offset=4", nil)
	body = decode(t, rec)
	assert.Len(t, body["data"].([]any), 1)
	assert.Nil(t, body["next_page"])
}

func TestPaginationForgivesBadCursor(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)
	createTask(t, router, ws, map[string]any{"name": "only"})

	rec := do(t, router, http.MethodGet, "/api/v1/tasks?offset=garbage", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"].([]any), 1)
}

func TestTypeahead(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)

	for _, u := range []map[string]any{
		{"name": "Alice Chen", "email": "alice@example.com"},
		{"name": "Bob Marsh", "email": "ali.bob@example.com"},
		{"name": "Dana Cruz", "email": "dana@example.com"},
	} {
		rec := do(t, router, http.MethodPost, "/api/v1/users", u)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, router, http.MethodGet,
		"/api/v1/workspaces/"+ws+"/typeahead?resource_type=user&query=ali", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "Alice Chen", data[0].(map[string]any)["name"])
	assert.Equal(t, "Bob Marsh", data[1].(map[string]any)["name"])

	// Missing resource_type is the one required parameter.
	rec = do(t, router, http.MethodGet, "/api/v1/workspaces/"+ws+"/typeahead", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown resource types yield an empty result, not an error.
	rec = do(t, router, http.MethodGet,
		"/api/v1/workspaces/"+ws+"/typeahead?resource_type=attachment", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["data"])
}

func TestStoriesUnderTask(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)
	task := createTask(t, router, ws, map[string]any{"name": "with comments"})
	gid := task["gid"].(string)

	rec := do(t, router, http.MethodPost, "/api/v1/tasks/"+gid+"/stories", map[string]any{
		"text": "looks good",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	story := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "comment_added", story["resource_subtype"])

	rec = do(t, router, http.MethodGet, "/api/v1/tasks/"+gid+"/stories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"].([]any), 1)
}

func TestSetParentRejectsSelf(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)
	task := createTask(t, router, ws, map[string]any{"name": "loop"})
	gid := task["gid"].(string)

	rec := do(t, router, http.MethodPost, "/api/v1/tasks/"+gid+"/setParent", map[string]any{
		"parent": gid,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubtasks(t *testing.T) {
	router := testRouter(t)
	ws := createWorkspace(t, router)
	parent := createTask(t, router, ws, map[string]any{"name": "parent"})
	parentGID := parent["gid"].(string)
	createTask(t, router, ws, map[string]any{"name": "child", "parent": parentGID})
	createTask(t, router, ws, map[string]any{"name": "unrelated"})

	rec := do(t, router, http.MethodGet, "/api/v1/tasks/"+parentGID+"/subtasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "child", data[0].(map[string]any)["name"])
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	rec := do(t, router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/health/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode(t, rec)
	assert.Equal(t, "taskdeck", info["app"])
	assert.Equal(t, "memory", info["storage"])
}

func TestRouterHonorsAPIPrefix(t *testing.T) {
	router := NewRouter(RouterConfig{
		Store:      memory.NewStore(),
		APIPrefix:  "/api/beta",
		Logger:     logger.Default(),
		Pagination: page.DefaultConfig(),
		Typeahead:  typeahead.DefaultConfig(),
		Backend:    "memory",
		Version:    "test",
	})

	rec := do(t, router, http.MethodPost, "/api/beta/workspaces", map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/beta/workspaces", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"].([]any), 1)

	// The default mount point is gone when a prefix is configured.
	rec = do(t, router, http.MethodGet, "/api/v1/workspaces", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
