package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"taskdeck/internal/core/apperror"
)

var tracer = otel.Tracer("taskdeck/storage")

const uniqueViolation = "23505"

// Repo is a generic repository over a single table. Rows are addressed by
// their gid column and enumerated in stable creation order.
type Repo[T any] struct {
	pool         *pgxpool.Pool
	tableName    string
	resourceName string
	selectCols   []string
	gidOf        func(T) string
}

// NewRepo creates a repository for table tableName. resourceName is the
// human-readable name used in error messages. gidOf extracts the entity gid.
func NewRepo[T any](pool *pgxpool.Pool, tableName, resourceName string, gidOf func(T) string) *Repo[T] {
	return &Repo[T]{
		pool:         pool,
		tableName:    tableName,
		resourceName: resourceName,
		selectCols:   ExtractDBColumns[T](),
		gidOf:        gidOf,
	}
}

func (r *Repo[T]) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (r *Repo[T]) Create(ctx context.Context, entity T) error {
	ctx, span := tracer.Start(ctx, "repo.Create",
		trace.WithAttributes(attribute.String("db.table", r.tableName)))
	defer span.End()

	query, args, err := r.builder().
		Insert(r.tableName).
		SetMap(StructToMap(entity)).
		ToSql()
	if err != nil {
		return apperror.NewDatabase("failed to build insert query", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.NewConflict(
				fmt.Sprintf("%s with id '%s' already exists", r.resourceName, r.gidOf(entity)))
		}
		return apperror.NewDatabase("failed to insert "+r.resourceName, err)
	}
	return nil
}

func (r *Repo[T]) GetByGID(ctx context.Context, gid string) (T, error) {
	ctx, span := tracer.Start(ctx, "repo.GetByGID",
		trace.WithAttributes(attribute.String("db.table", r.tableName)))
	defer span.End()

	var entity T
	query, args, err := r.builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(sq.Eq{"gid": gid}).
		ToSql()
	if err != nil {
		return entity, apperror.NewDatabase("failed to build select query", err)
	}

	if err := pgxscan.Get(ctx, r.pool, &entity, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity, apperror.NewNotFound(r.resourceName, gid)
		}
		return entity, apperror.NewDatabase("failed to get "+r.resourceName, err)
	}
	return entity, nil
}

func (r *Repo[T]) Update(ctx context.Context, entity T) error {
	ctx, span := tracer.Start(ctx, "repo.Update",
		trace.WithAttributes(attribute.String("db.table", r.tableName)))
	defer span.End()

	gid := r.gidOf(entity)
	values := StructToMap(entity)
	delete(values, "gid")

	query, args, err := r.builder().
		Update(r.tableName).
		SetMap(values).
		Where(sq.Eq{"gid": gid}).
		ToSql()
	if err != nil {
		return apperror.NewDatabase("failed to build update query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewDatabase("failed to update "+r.resourceName, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.resourceName, gid)
	}
	return nil
}

func (r *Repo[T]) Delete(ctx context.Context, gid string) error {
	ctx, span := tracer.Start(ctx, "repo.Delete",
		trace.WithAttributes(attribute.String("db.table", r.tableName)))
	defer span.End()

	query, args, err := r.builder().
		Delete(r.tableName).
		Where(sq.Eq{"gid": gid}).
		ToSql()
	if err != nil {
		return apperror.NewDatabase("failed to build delete query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewDatabase("failed to delete "+r.resourceName, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(r.resourceName, gid)
	}
	return nil
}

// List returns all rows ordered by creation time, with gid as a tie-break
// so the enumeration order is stable across calls.
func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	ctx, span := tracer.Start(ctx, "repo.List",
		trace.WithAttributes(attribute.String("db.table", r.tableName)))
	defer span.End()

	query, args, err := r.builder().
		Select(r.selectCols...).
		From(r.tableName).
		OrderBy("created_at ASC", "gid ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewDatabase("failed to build list query", err)
	}

	var entities []T
	if err := pgxscan.Select(ctx, r.pool, &entities, query, args...); err != nil {
		return nil, apperror.NewDatabase("failed to list "+r.resourceName, err)
	}
	return entities, nil
}
