// Package page implements cursor pagination over stably ordered result
// sequences.
//
// The cursor is an opaque offset token encoding a start index. Decoding is
// forgiving: an absent or malformed token always means "start from the
// beginning", never an error. Given an unchanging ordered sequence,
// repeatedly following next cursors visits every element exactly once.
package page

import (
	"fmt"
	"strconv"
)

// Config bounds page sizes. Injected by callers; no package-level state.
type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig matches the upstream API limits.
func DefaultConfig() Config {
	return Config{DefaultLimit: 50, MaxLimit: 100}
}

// Clamp normalizes a requested limit into [1, MaxLimit], substituting the
// default for zero or negative values.
func (c Config) Clamp(limit int) int {
	if limit <= 0 {
		return c.DefaultLimit
	}
	if limit > c.MaxLimit {
		return c.MaxLimit
	}
	return limit
}

// Page is one bounded slice of an ordered result sequence.
type Page[T any] struct {
	Items      []T
	Limit      int
	HasMore    bool
	NextCursor string
}

// NextPage is the continuation descriptor returned alongside a page that
// has further results.
type NextPage struct {
	Offset string `json:"offset"`
	Path   string `json:"path"`
	URI    string `json:"uri"`
}

// Next builds the continuation descriptor for a page, or nil when the
// sequence is exhausted.
func (p Page[T]) Next(basePath string) *NextPage {
	if !p.HasMore || p.NextCursor == "" {
		return nil
	}
	return &NextPage{
		Offset: p.NextCursor,
		Path:   basePath,
		URI:    fmt.Sprintf("%s?limit=%d&offset=%s", basePath, p.Limit, p.NextCursor),
	}
}

// Paginate slices ordered[start:start+limit], clipped to bounds. The limit
// is clamped per cfg; the start index comes from the cursor.
func Paginate[T any](cfg Config, ordered []T, limit int, cursor string) Page[T] {
	limit = cfg.Clamp(limit)
	start := DecodeCursor(cursor)

	if start > len(ordered) {
		start = len(ordered)
	}
	end := start + limit
	if end > len(ordered) {
		end = len(ordered)
	}

	p := Page[T]{
		Items: ordered[start:end],
		Limit: limit,
	}

	if start+limit < len(ordered) {
		p.HasMore = true
		p.NextCursor = EncodeCursor(start + limit)
	}

	return p
}

// Map converts a page's items while preserving its continuation state.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:      items,
		Limit:      p.Limit,
		HasMore:    p.HasMore,
		NextCursor: p.NextCursor,
	}
}

// DecodeCursor extracts the start index from an offset token. Absent,
// empty, or malformed tokens decode to 0.
func DecodeCursor(cursor string) int {
	if cursor == "" {
		return 0
	}
	start, err := strconv.Atoi(cursor)
	if err != nil || start < 0 {
		return 0
	}
	return start
}

// EncodeCursor produces the offset token for a start index. Round-trip
// stable with DecodeCursor.
func EncodeCursor(start int) string {
	return strconv.Itoa(start)
}
