package storage

import (
	"context"
	"sort"
	"sync"

	"lensrl/internal/model"
)

type MemoryStore struct {
	mu       sync.RWMutex
	episodes map[string]model.EpisodeRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{episodes: make(map[string]model.EpisodeRecord)}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.episodes = make(map[string]model.EpisodeRecord)
	return nil
}

func (s *MemoryStore) SaveEpisode(_ context.Context, episode model.EpisodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.episodes[episode.ID] = episode
	return nil
}

func (s *MemoryStore) GetEpisode(_ context.Context, id string) (model.EpisodeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	episode, ok := s.episodes[id]
	return episode, ok, nil
}

func (s *MemoryStore) ListEpisodes(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.episodes))
	for id := range s.episodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
