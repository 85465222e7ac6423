package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"taskdeck/internal/domain"
	"taskdeck/internal/domain/resource"
)

// logged wraps a repository so every mutation leaves a change log entry.
type logged[T any] struct {
	inner *Repo[T]
	log   *ChangeLog
	kind  resource.Kind
}

func (l *logged[T]) record(ctx context.Context, action, gid string, entity *T) error {
	var snapshot json.RawMessage
	if entity != nil {
		raw, err := json.Marshal(entity)
		if err != nil {
			return err
		}
		snapshot = raw
	}
	return l.log.Record(ctx, string(l.kind), gid, action, snapshot)
}

func (l *logged[T]) Create(ctx context.Context, entity T) error {
	if err := l.inner.Create(ctx, entity); err != nil {
		return err
	}
	return l.record(ctx, "created", l.inner.gidOf(entity), &entity)
}

func (l *logged[T]) GetByGID(ctx context.Context, gid string) (T, error) {
	return l.inner.GetByGID(ctx, gid)
}

func (l *logged[T]) Update(ctx context.Context, entity T) error {
	if err := l.inner.Update(ctx, entity); err != nil {
		return err
	}
	return l.record(ctx, "updated", l.inner.gidOf(entity), &entity)
}

func (l *logged[T]) Delete(ctx context.Context, gid string) error {
	if err := l.inner.Delete(ctx, gid); err != nil {
		return err
	}
	return l.record(ctx, "deleted", gid, nil)
}

func (l *logged[T]) List(ctx context.Context) ([]T, error) {
	return l.inner.List(ctx)
}

// Store is the PostgreSQL-backed implementation of domain.Store.
type Store struct {
	pool *pgxpool.Pool
	log  *ChangeLog

	tasks        *logged[resource.Task]
	projects     *logged[resource.Project]
	sections     *logged[resource.Section]
	tags         *logged[resource.Tag]
	teams        *logged[resource.Team]
	users        *logged[resource.User]
	workspaces   *logged[resource.Workspace]
	customFields *logged[resource.CustomField]
	stories      *logged[resource.Story]
}

var _ domain.Store = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) (*Store, error) {
	changeLog, err := NewChangeLog(pool)
	if err != nil {
		return nil, err
	}
	s := &Store{pool: pool, log: changeLog}
	s.tasks = wire(pool, changeLog, "task", resource.KindTask,
		func(t resource.Task) string { return t.GID })
	s.projects = wire(pool, changeLog, "project", resource.KindProject,
		func(p resource.Project) string { return p.GID })
	s.sections = wire(pool, changeLog, "section", resource.KindSection,
		func(sec resource.Section) string { return sec.GID })
	s.tags = wire(pool, changeLog, "tag", resource.KindTag,
		func(t resource.Tag) string { return t.GID })
	s.teams = wire(pool, changeLog, "team", resource.KindTeam,
		func(t resource.Team) string { return t.GID })
	s.users = wire(pool, changeLog, "app_user", resource.KindUser,
		func(u resource.User) string { return u.GID })
	s.workspaces = wire(pool, changeLog, "workspace", resource.KindWorkspace,
		func(w resource.Workspace) string { return w.GID })
	s.customFields = wire(pool, changeLog, "custom_field", resource.KindCustomField,
		func(f resource.CustomField) string { return f.GID })
	s.stories = wire(pool, changeLog, "story", resource.KindStory,
		func(st resource.Story) string { return st.GID })
	return s, nil
}

func wire[T any](pool *pgxpool.Pool, log *ChangeLog, table string, kind resource.Kind, gidOf func(T) string) *logged[T] {
	return &logged[T]{
		inner: NewRepo[T](pool, table, string(kind), gidOf),
		log:   log,
		kind:  kind,
	}
}

func (s *Store) Close() {
	s.log.Close()
	s.pool.Close()
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) ChangeLog() *ChangeLog { return s.log }

// History returns the change log entries for one resource.
func (s *Store) History(ctx context.Context, kind resource.Kind, gid string) ([]ChangeEntry, error) {
	return s.log.History(ctx, string(kind), gid)
}

func (s *Store) Tasks() domain.Repository[resource.Task]               { return s.tasks }
func (s *Store) Projects() domain.Repository[resource.Project]         { return s.projects }
func (s *Store) Sections() domain.Repository[resource.Section]         { return s.sections }
func (s *Store) Tags() domain.Repository[resource.Tag]                 { return s.tags }
func (s *Store) Teams() domain.Repository[resource.Team]               { return s.teams }
func (s *Store) Users() domain.Repository[resource.User]               { return s.users }
func (s *Store) Workspaces() domain.Repository[resource.Workspace]     { return s.workspaces }
func (s *Store) CustomFields() domain.Repository[resource.CustomField] { return s.customFields }
func (s *Store) Stories() domain.Repository[resource.Story]            { return s.stories }
