package postgres

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshotPassthrough(t *testing.T) {
	log, err := NewChangeLog(nil)
	require.NoError(t, err)
	defer log.Close()

	snapshot := json.RawMessage(`{"gid":"12345","name":"a task"}`)
	got, err := log.DecodeSnapshot(ChangeEntry{Snapshot: snapshot})
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestDecodeSnapshotDecompresses(t *testing.T) {
	log, err := NewChangeLog(nil)
	require.NoError(t, err)
	defer log.Close()

	// Repetitive payload over the compression threshold.
	big := json.RawMessage(`{"notes":"` + string(bytes.Repeat([]byte("lorem ipsum "), 2000)) + `"}`)
	require.Greater(t, len(big), compressThreshold)

	compressed := log.encoder.EncodeAll(big, nil)
	assert.Less(t, len(compressed), len(big))

	got, err := log.DecodeSnapshot(ChangeEntry{SnapshotZstd: compressed})
	require.NoError(t, err)
	assert.Equal(t, big, got)
}
