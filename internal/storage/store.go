package storage

import (
	"context"

	"lensrl/internal/model"
)

// Store defines persistence operations for episode rollout records.
type Store interface {
	Init(ctx context.Context) error
	SaveEpisode(ctx context.Context, episode model.EpisodeRecord) error
	GetEpisode(ctx context.Context, id string) (model.EpisodeRecord, bool, error)
	ListEpisodes(ctx context.Context) ([]string, error)
}
