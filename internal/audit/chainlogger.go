package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is a single audit log entry. Entries form a hash chain: each
// entry's hash covers its payload and the previous entry's hash, so
// any tampering with history breaks verification.
type Entry struct {
	Timestamp    string `json:"timestamp"`
	PreviousHash string `json:"previous_hash"`
	Payload      string `json:"payload"`
	Hash         string `json:"hash"`
}

type payload struct {
	ActorID    string `json:"actor_id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Before     any    `json:"before,omitempty"`
	After      any    `json:"after,omitempty"`
}

// ChainLogger is a tamper-evident audit log. It implements
// domain.AuditLog. Entries are kept in memory and, when a sink is
// configured, written through as JSON lines.
type ChainLogger struct {
	mu           sync.Mutex
	previousHash string
	entries      []*Entry
	sink         io.Writer // optional
}

// NewChainLogger creates a ChainLogger initialized with a zero hash.
// sink may be nil.
func NewChainLogger(sink io.Writer) *ChainLogger {
	return &ChainLogger{
		previousHash: strings.Repeat("0", 64),
		sink:         sink,
	}
}

// Record appends one audit entry for a mutating ledger operation.
func (c *ChainLogger) Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, before, after any) error {
	body, err := json.Marshal(payload{
		ActorID:    actorID.String(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID.String(),
		Before:     before,
		After:      after,
	})
	if err != nil {
		return fmt.Errorf("failed to encode audit payload: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
		PreviousHash: c.previousHash,
		Payload:      string(body),
	}

	hashInput := fmt.Sprintf("%s|%s|%s", entry.PreviousHash, entry.Timestamp, entry.Payload)
	hash := sha256.Sum256([]byte(hashInput))
	entry.Hash = hex.EncodeToString(hash[:])

	c.previousHash = entry.Hash
	c.entries = append(c.entries, entry)

	if c.sink != nil {
		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to encode audit entry: %w", err)
		}
		if _, err := c.sink.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write audit entry: %w", err)
		}
	}

	return nil
}

// Entries returns a copy of all recorded entries.
func (c *ChainLogger) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]*Entry, len(c.entries))
	copy(copied, c.entries)
	return copied
}

// VerifyChain checks if a slice of entries forms a valid hash chain.
func VerifyChain(entries []*Entry) bool {
	for i, entry := range entries {
		prevHash := entry.PreviousHash
		if i > 0 && prevHash != entries[i-1].Hash {
			return false
		}

		hashInput := fmt.Sprintf("%s|%s|%s", prevHash, entry.Timestamp, entry.Payload)
		hash := sha256.Sum256([]byte(hashInput))
		if hex.EncodeToString(hash[:]) != entry.Hash {
			return false
		}
	}
	return true
}
