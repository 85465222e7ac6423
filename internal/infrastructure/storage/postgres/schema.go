package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"taskdeck/internal/core/apperror"
)

// schema is applied idempotently at startup. Column names mirror the db
// tags on the resource structs.
const schema = `
CREATE TABLE IF NOT EXISTS workspace (
    gid             TEXT PRIMARY KEY,
    resource_type   TEXT NOT NULL DEFAULT 'workspace',
    name            TEXT NOT NULL DEFAULT '',
    is_organization BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS app_user (
    gid           TEXT PRIMARY KEY,
    resource_type TEXT NOT NULL DEFAULT 'user',
    name          TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS team (
    gid              TEXT PRIMARY KEY,
    resource_type    TEXT NOT NULL DEFAULT 'team',
    name             TEXT NOT NULL DEFAULT '',
    description      TEXT NOT NULL DEFAULT '',
    visibility       TEXT NOT NULL DEFAULT '',
    organization_gid TEXT NOT NULL DEFAULT '',
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS project (
    gid           TEXT PRIMARY KEY,
    resource_type TEXT NOT NULL DEFAULT 'project',
    name          TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT '',
    html_notes    TEXT NOT NULL DEFAULT '',
    color         TEXT NOT NULL DEFAULT '',
    icon          TEXT NOT NULL DEFAULT '',
    default_view  TEXT NOT NULL DEFAULT '',
    archived      BOOLEAN NOT NULL DEFAULT FALSE,
    is_public     BOOLEAN NOT NULL DEFAULT FALSE,
    completed     BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at  TIMESTAMPTZ,
    due_on        TIMESTAMPTZ,
    start_on      TIMESTAMPTZ,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_at   TIMESTAMPTZ,
    permalink_url TEXT NOT NULL DEFAULT '',
    team_gid      TEXT,
    workspace_gid TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS section (
    gid           TEXT PRIMARY KEY,
    resource_type TEXT NOT NULL DEFAULT 'section',
    name          TEXT NOT NULL DEFAULT '',
    project_gid   TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tag (
    gid           TEXT PRIMARY KEY,
    resource_type TEXT NOT NULL DEFAULT 'tag',
    name          TEXT NOT NULL DEFAULT '',
    color         TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT '',
    workspace_gid TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS custom_field (
    gid           TEXT PRIMARY KEY,
    resource_type TEXT NOT NULL DEFAULT 'custom_field',
    name          TEXT NOT NULL DEFAULT '',
    type          TEXT NOT NULL DEFAULT '',
    description   TEXT NOT NULL DEFAULT '',
    enabled       BOOLEAN NOT NULL DEFAULT TRUE,
    precision     INTEGER NOT NULL DEFAULT 0,
    number_value  NUMERIC,
    text_value    TEXT NOT NULL DEFAULT '',
    workspace_gid TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS task (
    gid              TEXT PRIMARY KEY,
    resource_type    TEXT NOT NULL DEFAULT 'task',
    name             TEXT NOT NULL DEFAULT '',
    resource_subtype TEXT NOT NULL DEFAULT '',
    notes            TEXT NOT NULL DEFAULT '',
    html_notes       TEXT NOT NULL DEFAULT '',
    approval_status  TEXT NOT NULL DEFAULT '',
    assignee_status  TEXT NOT NULL DEFAULT '',
    completed        BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at     TIMESTAMPTZ,
    due_on           TIMESTAMPTZ,
    due_at           TIMESTAMPTZ,
    start_on         TIMESTAMPTZ,
    start_at         TIMESTAMPTZ,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_at      TIMESTAMPTZ,
    num_subtasks     INTEGER NOT NULL DEFAULT 0,
    num_likes        INTEGER NOT NULL DEFAULT 0,
    liked            BOOLEAN NOT NULL DEFAULT FALSE,
    permalink_url    TEXT NOT NULL DEFAULT '',
    parent_gid       TEXT,
    assignee_gid     TEXT,
    assigned_by_gid  TEXT,
    created_by_gid   TEXT,
    workspace_gid    TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_task_workspace ON task (workspace_gid);
CREATE INDEX IF NOT EXISTS idx_task_parent ON task (parent_gid);

CREATE TABLE IF NOT EXISTS story (
    gid              TEXT PRIMARY KEY,
    resource_type    TEXT NOT NULL DEFAULT 'story',
    resource_subtype TEXT NOT NULL DEFAULT '',
    text             TEXT NOT NULL DEFAULT '',
    task_gid         TEXT NOT NULL DEFAULT '',
    created_by_gid   TEXT,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_story_task ON story (task_gid);

CREATE TABLE IF NOT EXISTS change_log (
    gid           TEXT PRIMARY KEY,
    resource_type TEXT NOT NULL,
    resource_gid  TEXT NOT NULL,
    action        TEXT NOT NULL,
    snapshot      JSONB,
    snapshot_zstd BYTEA,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_change_log_resource ON change_log (resource_type, resource_gid);
`

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return apperror.NewDatabase("failed to apply schema", err)
	}
	return nil
}
