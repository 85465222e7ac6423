package postgres

import (
	"context"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/zstd"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/core/id"
)

// compressThreshold is the snapshot size above which payloads are stored
// zstd-compressed.
const compressThreshold = 10 * 1024

// ChangeEntry is one recorded mutation of a resource.
type ChangeEntry struct {
	GID          string          `db:"gid" json:"gid"`
	ResourceType string          `db:"resource_type" json:"resource_type"`
	ResourceGID  string          `db:"resource_gid" json:"resource_gid"`
	Action       string          `db:"action" json:"action"`
	Snapshot     json.RawMessage `db:"snapshot" json:"snapshot,omitempty"`
	SnapshotZstd []byte          `db:"snapshot_zstd" json:"-"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// ChangeLog records resource mutations into the change_log table. Large
// snapshots are zstd-compressed before storage.
type ChangeLog struct {
	pool    *pgxpool.Pool
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewChangeLog(pool *pgxpool.Pool) (*ChangeLog, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return &ChangeLog{pool: pool, encoder: encoder, decoder: decoder}, nil
}

func (c *ChangeLog) Close() {
	c.encoder.Close()
	c.decoder.Close()
}

// Record writes a change entry. Snapshot may be nil for deletes.
func (c *ChangeLog) Record(ctx context.Context, resourceType, resourceGID, action string, snapshot json.RawMessage) error {
	entry := ChangeEntry{
		GID:          id.NewGID(),
		ResourceType: resourceType,
		ResourceGID:  resourceGID,
		Action:       action,
		CreatedAt:    time.Now().UTC(),
	}
	if len(snapshot) > compressThreshold {
		entry.SnapshotZstd = c.encoder.EncodeAll(snapshot, nil)
	} else {
		entry.Snapshot = snapshot
	}

	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert("change_log").
		SetMap(StructToMap(entry)).
		ToSql()
	if err != nil {
		return apperror.NewDatabase("failed to build change log query", err)
	}
	if _, err := c.pool.Exec(ctx, query, args...); err != nil {
		return apperror.NewDatabase("failed to record change", err)
	}
	return nil
}

// History returns the recorded mutations of one resource, oldest first,
// with snapshots decompressed.
func (c *ChangeLog) History(ctx context.Context, resourceType, resourceGID string) ([]ChangeEntry, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(ExtractDBColumns[ChangeEntry]()...).
		From("change_log").
		Where(sq.Eq{"resource_type": resourceType, "resource_gid": resourceGID}).
		OrderBy("created_at ASC", "gid ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewDatabase("failed to build change history query", err)
	}

	var entries []ChangeEntry
	if err := pgxscan.Select(ctx, c.pool, &entries, query, args...); err != nil {
		return nil, apperror.NewDatabase("failed to load change history", err)
	}
	for i := range entries {
		snapshot, err := c.DecodeSnapshot(entries[i])
		if err != nil {
			return nil, err
		}
		entries[i].Snapshot = snapshot
		entries[i].SnapshotZstd = nil
	}
	return entries, nil
}

// DecodeSnapshot returns the JSON snapshot of an entry, decompressing when
// it was stored compressed.
func (c *ChangeLog) DecodeSnapshot(entry ChangeEntry) (json.RawMessage, error) {
	if len(entry.SnapshotZstd) == 0 {
		return entry.Snapshot, nil
	}
	raw, err := c.decoder.DecodeAll(entry.SnapshotZstd, nil)
	if err != nil {
		return nil, apperror.NewDatabase("failed to decompress snapshot", err)
	}
	return raw, nil
}
