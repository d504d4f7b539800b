package actionlog

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// Store is a queryable index over action log entries. The flat log file
// remains the source of truth; stores are rebuilt from it with Reindex.
type Store interface {
	Record(ctx context.Context, entry Entry) error
	List(ctx context.Context, filter Filter) ([]Entry, error)
}

// Filter limits entry queries.
type Filter struct {
	AgentID string
	Tool    string
	Limit   int
}

// MemoryStore keeps entries in memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore returns an in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record appends an entry.
func (s *MemoryStore) Record(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns filtered entries in insertion order.
func (s *MemoryStore) List(_ context.Context, filter Filter) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if filter.AgentID != "" && entry.AgentID != filter.AgentID {
			continue
		}
		if filter.Tool != "" && entry.Tool != filter.Tool {
			continue
		}
		out = append(out, entry)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// Reindex streams a log file into a store, skipping malformed lines.
// It returns the number of entries recorded.
func Reindex(ctx context.Context, r io.Reader, store Store) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for scanner.Scan() {
		entry, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		if err := store.Record(ctx, entry); err != nil {
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}
