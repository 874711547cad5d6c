// Package lensrl is the public facade: it wires the environment, reward and
// persistence layers together and runs seeded rollouts.
package lensrl

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"lensrl/internal/engine"
	"lensrl/internal/env"
	"lensrl/internal/model"
	"lensrl/internal/optic"
	"lensrl/internal/reward"
	"lensrl/internal/storage"
)

const defaultDBPath = "lensrl.db"

// maxStepAttempts bounds a rollout against a policy that keeps producing
// invalid actions, which do not advance the episode.
const maxStepAttempts = 10000

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store  storage.Store
	tracer engine.Tracer
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store, tracer: engine.Paraxial{}}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

type RunRequest struct {
	Episodes            int
	Seed                int64
	MaxLenses           int
	FNumber             float64
	MaxSteps            int
	OptimizerIterations int
}

type EpisodeSummary struct {
	ID               string
	Seed             int64
	Steps            int
	ValidSteps       int
	TotalReward      float64
	FinalRMS         float64
	FinalFieldOfView float64
	FinalFocalLength float64
}

type RunResult struct {
	Episodes        []EpisodeSummary
	MeanTotalReward float64
}

// Run rolls out seeded random-policy episodes, persisting one record per
// episode.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	episodes := req.Episodes
	if episodes <= 0 {
		episodes = 1
	}

	var result RunResult
	totals := make([]float64, 0, episodes)
	for ep := 0; ep < episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		seed := req.Seed + int64(ep)
		summary, record, err := c.runEpisode(ctx, req, seed)
		if err != nil {
			return RunResult{}, err
		}
		if err := c.store.SaveEpisode(ctx, record); err != nil {
			return RunResult{}, err
		}
		result.Episodes = append(result.Episodes, summary)
		totals = append(totals, summary.TotalReward)
	}

	if mean, err := stats.Mean(totals); err == nil {
		result.MeanTotalReward = mean
	}
	return result, nil
}

func (c *Client) runEpisode(ctx context.Context, req RunRequest, seed int64) (EpisodeSummary, model.EpisodeRecord, error) {
	rw := reward.Composite{
		reward.NewRMS(c.tracer, 1.0, true, 1.0),
		reward.Complexity{Weight: 0.1},
	}
	environment, err := env.New(env.Config{
		MaxLenses:           req.MaxLenses,
		FNumber:             req.FNumber,
		MaxSteps:            req.MaxSteps,
		OptimizerIterations: req.OptimizerIterations,
	}, c.tracer, rw)
	if err != nil {
		return EpisodeSummary{}, model.EpisodeRecord{}, err
	}
	if _, _, err := environment.Reset(seed); err != nil {
		return EpisodeSummary{}, model.EpisodeRecord{}, err
	}

	sys := environment.System()
	record := model.EpisodeRecord{
		ID:        uuid.NewString(),
		Seed:      seed,
		FNumber:   sys.FNumber,
		MaxLenses: sys.MaxLenses,
	}
	storage.StampVersions(&record)

	policy := rand.New(rand.NewSource(seed))
	for attempts := 0; ; attempts++ {
		if err := ctx.Err(); err != nil {
			return EpisodeSummary{}, model.EpisodeRecord{}, err
		}
		if attempts >= maxStepAttempts {
			return EpisodeSummary{}, model.EpisodeRecord{}, errors.New("episode failed to terminate within the attempt budget")
		}

		action := make([]float64, environment.ActionSize())
		for i := range action {
			action[i] = policy.Float64()*2 - 1
		}
		res, err := environment.Step(action)
		if err != nil {
			return EpisodeSummary{}, model.EpisodeRecord{}, err
		}

		valid, _ := res.Info["valid"].(bool)
		sys = environment.System()
		record.Steps = append(record.Steps, model.StepRecord{
			Action:      action,
			Valid:       valid,
			Reward:      res.Reward,
			RMS:         sys.RMS,
			FieldOfView: sys.FieldOfView,
			Surfaces:    sys.NumSurfaces(),
		})
		record.TotalReward += res.Reward
		if res.Terminated {
			break
		}
	}

	record.FinalRMS = sys.RMS
	record.FinalFieldOfView = sys.FieldOfView
	if f, err := c.tracer.ParaxialFocalLength(sys); err == nil {
		record.FinalFocalLength = f
	}
	record.FinalSurfaces = SurfaceRecords(sys)

	summary := EpisodeSummary{
		ID:               record.ID,
		Seed:             seed,
		Steps:            len(record.Steps),
		ValidSteps:       environment.StepCount(),
		TotalReward:      record.TotalReward,
		FinalRMS:         record.FinalRMS,
		FinalFieldOfView: record.FinalFieldOfView,
		FinalFocalLength: record.FinalFocalLength,
	}
	return summary, record, nil
}

// Episodes lists persisted episode IDs.
func (c *Client) Episodes(ctx context.Context) ([]string, error) {
	return c.store.ListEpisodes(ctx)
}

// Episode fetches one persisted episode record.
func (c *Client) Episode(ctx context.Context, id string) (model.EpisodeRecord, bool, error) {
	return c.store.GetEpisode(ctx, id)
}

// ScaleToUnityFocalLength rescales a system so its focal length becomes 1.
func (c *Client) ScaleToUnityFocalLength(sys *optic.System) error {
	return engine.ScaleToUnityFocalLength(c.tracer, sys)
}

// SurfaceRecords converts a prescription into its persisted form.
func SurfaceRecords(sys *optic.System) []model.SurfaceRecord {
	out := make([]model.SurfaceRecord, 0, len(sys.Surfaces))
	for _, surf := range sys.Surfaces {
		rec := model.SurfaceRecord{IsStop: surf.IsStop}
		if !math.IsInf(surf.Radius, 0) && surf.Radius != 0 {
			rec.Curvature = 1 / surf.Radius
		}
		if !math.IsInf(surf.Thickness, 0) {
			rec.Thickness = surf.Thickness
		}
		if surf.Material != nil {
			rec.Glass = surf.Material.Name
		}
		out = append(out, rec)
	}
	return out
}

// SystemFromRecord rebuilds a prescription from a persisted episode record.
func SystemFromRecord(rec model.EpisodeRecord) *optic.System {
	sys := optic.NewSystem(rec.FNumber, rec.MaxLenses)
	sys.FieldOfView = rec.FinalFieldOfView
	sys.RMS = rec.FinalRMS

	for i, s := range rec.FinalSurfaces {
		surf := optic.Surface{Thickness: s.Thickness, IsStop: s.IsStop}
		if s.Curvature != 0 {
			surf.Radius = 1 / s.Curvature
		} else {
			surf.Radius = math.Inf(1)
		}
		if i == 0 {
			surf.Thickness = math.Inf(1)
		}
		if s.Glass != "" {
			if g, ok := optic.GlassByName(s.Glass); ok {
				surf.Material = g
			}
		}
		sys.Surfaces = append(sys.Surfaces, surf)
	}
	return sys
}
