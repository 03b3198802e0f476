package toml

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	messages := []domain.TrackedMessage{
		{
			ID: "101",
			History: []domain.RawRecord{
				{ID: "101", Payload: "AB12", ObservedAt: base},
				{ID: "101", Payload: "AC12", ObservedAt: base.Add(15 * time.Millisecond)},
			},
			Pinned: true,
		},
		{
			ID:      "7E8",
			History: []domain.RawRecord{{ID: "7E8", Payload: "ÿ0", ObservedAt: base.Add(time.Second)}},
			Ignored: true,
		},
	}

	var out bytes.Buffer
	codec := NewCodec()
	require.NoError(t, codec.WriteSnapshot(&out, messages))
	assert.Contains(t, out.String(), "version = 1")

	got, err := codec.ReadSnapshot(&out)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestCodecEmptySnapshot(t *testing.T) {
	var out bytes.Buffer
	codec := NewCodec()
	require.NoError(t, codec.WriteSnapshot(&out, nil))

	got, err := codec.ReadSnapshot(&out)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCodecRejectsNewerSchemaVersion(t *testing.T) {
	input := strings.Join([]string{
		"version = 99",
		"",
		"[[messages]]",
		"id = \"1\"",
		"",
		"[[messages.values]]",
		"data = \"AA\"",
		"ts = 1",
	}, "\n")

	_, err := NewCodec().ReadSnapshot(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)
	assert.Contains(t, err.Error(), "unsupported snapshot schema version 99")
}

func TestCodecRejectsEntryWithoutValues(t *testing.T) {
	input := "version = 1\n\n[[messages]]\nid = \"1\"\n"

	_, err := NewCodec().ReadSnapshot(strings.NewReader(input))
	assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)
}
