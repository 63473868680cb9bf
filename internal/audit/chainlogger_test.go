package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainLogger_RecordBuildsValidChain(t *testing.T) {
	ctx := context.Background()
	logger := NewChainLogger(nil)
	actor := uuid.New()

	require.NoError(t, logger.Record(ctx, actor, "transaction.create", "transaction", uuid.New(), nil, map[string]string{"status": "PENDING"}))
	require.NoError(t, logger.Record(ctx, actor, "transaction.approve", "transaction", uuid.New(), map[string]string{"status": "PENDING"}, map[string]string{"status": "APPROVED"}))
	require.NoError(t, logger.Record(ctx, actor, "fund.delete", "fund", uuid.New(), map[string]string{"name": "Social"}, nil))

	entries := logger.Entries()
	require.Len(t, entries, 3)

	// First entry chains off the zero hash
	assert.Equal(t, strings.Repeat("0", 64), entries[0].PreviousHash)
	assert.Equal(t, entries[0].Hash, entries[1].PreviousHash)
	assert.Equal(t, entries[1].Hash, entries[2].PreviousHash)

	assert.True(t, VerifyChain(entries))
}

func TestChainLogger_TamperingBreaksVerification(t *testing.T) {
	ctx := context.Background()
	logger := NewChainLogger(nil)
	actor := uuid.New()

	require.NoError(t, logger.Record(ctx, actor, "transaction.create", "transaction", uuid.New(), nil, nil))
	require.NoError(t, logger.Record(ctx, actor, "transaction.approve", "transaction", uuid.New(), nil, nil))

	entries := logger.Entries()
	entries[0].Payload = `{"actor_id":"forged"}`

	assert.False(t, VerifyChain(entries))
}

func TestChainLogger_WritesJSONLinesToSink(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := NewChainLogger(&buf)

	entityID := uuid.New()
	require.NoError(t, logger.Record(ctx, uuid.New(), "transaction.reject", "transaction", entityID, nil, nil))

	line := strings.TrimSpace(buf.String())
	var entry Entry
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.NotEmpty(t, entry.Hash)
	assert.Contains(t, entry.Payload, entityID.String())
}

func TestVerifyChain_EmptyIsValid(t *testing.T) {
	assert.True(t, VerifyChain(nil))
}
