package page

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestDecodeCursor_Forgiving(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
		want   int
	}{
		{"empty", "", 0},
		{"valid", "42", 42},
		{"zero", "0", 0},
		{"non-numeric", "abc", 0},
		{"negative", "-5", 0},
		{"float", "1.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeCursor(tt.cursor))
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 50, 99, 1000} {
		assert.Equal(t, idx, DecodeCursor(EncodeCursor(idx)))
	}
}

func TestClamp(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		limit int
		want  int
	}{
		{0, 50},
		{-3, 50},
		{1, 1},
		{100, 100},
		{101, 100},
		{25, 25},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d", tt.limit), func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Clamp(tt.limit))
		})
	}
}

func TestPaginate_Slicing(t *testing.T) {
	cfg := DefaultConfig()
	ordered := sequence(10)

	t.Run("first page", func(t *testing.T) {
		p := Paginate(cfg, ordered, 3, "")
		assert.Equal(t, []int{0, 1, 2}, p.Items)
		assert.True(t, p.HasMore)
		assert.Equal(t, "3", p.NextCursor)
	})

	t.Run("middle page", func(t *testing.T) {
		p := Paginate(cfg, ordered, 3, "3")
		assert.Equal(t, []int{3, 4, 5}, p.Items)
		assert.True(t, p.HasMore)
	})

	t.Run("last partial page", func(t *testing.T) {
		p := Paginate(cfg, ordered, 3, "9")
		assert.Equal(t, []int{9}, p.Items)
		assert.False(t, p.HasMore)
		assert.Empty(t, p.NextCursor)
	})

	t.Run("exact boundary has no more", func(t *testing.T) {
		p := Paginate(cfg, sequence(6), 3, "3")
		assert.Equal(t, []int{3, 4, 5}, p.Items)
		assert.False(t, p.HasMore)
	})

	t.Run("cursor beyond end", func(t *testing.T) {
		p := Paginate(cfg, ordered, 3, "50")
		assert.Empty(t, p.Items)
		assert.False(t, p.HasMore)
	})

	t.Run("malformed cursor restarts", func(t *testing.T) {
		p := Paginate(cfg, ordered, 3, "bogus")
		assert.Equal(t, []int{0, 1, 2}, p.Items)
	})

	t.Run("empty sequence", func(t *testing.T) {
		p := Paginate(cfg, []int{}, 3, "")
		assert.Empty(t, p.Items)
		assert.False(t, p.HasMore)
	})
}

// Walking every page from an empty cursor must visit each element exactly
// once, in order, for any page size.
func TestPaginate_FullWalkProperty(t *testing.T) {
	cfg := DefaultConfig()

	for _, n := range []int{1, 5, 50, 150, 251} {
		for _, limit := range []int{1, 3, 50, 100} {
			t.Run(fmt.Sprintf("n=%d/limit=%d", n, limit), func(t *testing.T) {
				ordered := sequence(n)

				var walked []int
				cursor := ""
				for pages := 0; ; pages++ {
					require.Less(t, pages, n+1, "walk did not terminate")
					p := Paginate(cfg, ordered, limit, cursor)
					walked = append(walked, p.Items...)
					if !p.HasMore {
						break
					}
					cursor = p.NextCursor
				}

				assert.Equal(t, ordered, walked)
			})
		}
	}
}

func TestNextPageEnvelope(t *testing.T) {
	cfg := DefaultConfig()

	p := Paginate(cfg, sequence(10), 4, "")
	next := p.Next("/api/v1/tasks")
	require.NotNil(t, next)
	assert.Equal(t, "4", next.Offset)
	assert.Equal(t, "/api/v1/tasks", next.Path)
	assert.Equal(t, "/api/v1/tasks?limit=4&offset=4", next.URI)

	last := Paginate(cfg, sequence(10), 100, "")
	assert.Nil(t, last.Next("/api/v1/tasks"))
}

func TestMap_PreservesContinuation(t *testing.T) {
	p := Paginate(DefaultConfig(), sequence(10), 3, "3")

	mapped := Map(p, func(v int) string { return fmt.Sprintf("item-%d", v) })
	assert.Equal(t, []string{"item-3", "item-4", "item-5"}, mapped.Items)
	assert.Equal(t, p.Limit, mapped.Limit)
	assert.Equal(t, p.HasMore, mapped.HasMore)
	assert.Equal(t, p.NextCursor, mapped.NextCursor)

	next := mapped.Next("/api/v1/tags")
	require.NotNil(t, next)
	assert.Equal(t, "6", next.Offset)
}
