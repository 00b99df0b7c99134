package store

import (
	"context"
	"sort"
	"sync"

	"github.com/waylight/waylight/models"
)

// memoryQueueStore is an in-memory [QueueStore] for tests and ephemeral
// clients. It mirrors the SQLite store's semantics, including the
// per-entry serialization guarantee.
type memoryQueueStore struct {
	mu      sync.Mutex
	entries map[queueKey]models.QueueEntry
	seq     map[queueKey]int
	nextSeq int
}

type queueKey struct {
	kind        models.AggregateKind
	aggregateID string
}

// NewMemoryQueueStore constructs an empty in-memory queue store.
func NewMemoryQueueStore() QueueStore {
	return &memoryQueueStore{
		entries: make(map[queueKey]models.QueueEntry),
		seq:     make(map[queueKey]int),
	}
}

func (s *memoryQueueStore) Get(_ context.Context, kind models.AggregateKind, aggregateID string) (models.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[queueKey{kind, aggregateID}]
	if !exists {
		return models.QueueEntry{}, ErrEntryNotFound
	}
	return entry.Clone(), nil
}

func (s *memoryQueueStore) Put(_ context.Context, entry models.QueueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := queueKey{entry.Kind, entry.AggregateID}
	if _, exists := s.entries[key]; !exists {
		s.seq[key] = s.nextSeq
		s.nextSeq++
	}
	s.entries[key] = entry.Clone()
	return nil
}

func (s *memoryQueueStore) Delete(_ context.Context, kind models.AggregateKind, aggregateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := queueKey{kind, aggregateID}
	delete(s.entries, key)
	delete(s.seq, key)
	return nil
}

func (s *memoryQueueStore) List(_ context.Context) ([]models.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]queueKey, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return s.seq[keys[i]] < s.seq[keys[j]] })

	entries := make([]models.QueueEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, s.entries[key].Clone())
	}
	return entries, nil
}
