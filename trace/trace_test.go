package trace_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pink-mist/lazyutil/sequence"
	"github.com/pink-mist/lazyutil/trace"
)

func TestPullsTransparent(t *testing.T) {
	log := zerolog.New(&bytes.Buffer{}).Level(zerolog.DebugLevel)

	s := trace.Pulls(sequence.Of(1, 2, 3), log, "nums")
	assert.Equal(t, []int{1, 2, 3}, s.Drain())

	_, ok := s.Pull()
	assert.False(t, ok)
}

func TestPullsLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	trace.Pulls(sequence.Of("a", "b"), log, "letters").Drain()

	var entries []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 3)

	assert.Equal(t, "letters", entries[0]["sequence"])
	assert.Equal(t, "pulled value", entries[0]["message"])
	assert.Equal(t, "a", entries[0]["value"])
	assert.Equal(t, float64(1), entries[0]["pull"])

	assert.Equal(t, "b", entries[1]["value"])
	assert.Equal(t, float64(2), entries[1]["pull"])

	assert.Equal(t, "sequence exhausted", entries[2]["message"])
	assert.Equal(t, float64(2), entries[2]["pulls"])
}

func TestPullsDisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	s := trace.Pulls(sequence.Of(1, 2), log, "quiet")
	assert.Equal(t, []int{1, 2}, s.Drain())
	assert.Zero(t, buf.Len(), "debug events must not be emitted above debug level")
}
