// Package env implements the step-based environment: decode, validate,
// execute, observe, reward, terminate.
package env

import (
	"errors"
	"math/rand"

	"lensrl/internal/engine"
	"lensrl/internal/norm"
	"lensrl/internal/optic"
	"lensrl/internal/ops"
	"lensrl/internal/reward"
	"lensrl/internal/space"
)

var (
	ErrNotReset    = errors.New("environment must be reset before stepping")
	ErrEpisodeDone = errors.New("episode is done; reset before stepping")
)

// invalidActionPenalty is the fixed reward for a step whose validation
// failed. The prescription is left untouched and the step counter does not
// advance.
const invalidActionPenalty = -10

type Config struct {
	MaxLenses           int
	FNumber             float64
	MaxSteps            int
	OptimizerIterations int
}

func (c Config) withDefaults() Config {
	if c.MaxLenses <= 0 {
		c.MaxLenses = 1
	}
	if c.FNumber <= 0 {
		c.FNumber = 10
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = 25
	}
	if c.OptimizerIterations <= 0 {
		c.OptimizerIterations = 10
	}
	return c
}

// Result is the outcome of one environment step.
type Result struct {
	Observation []float64
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        map[string]any
}

// Env is a single-owner, synchronous episode state machine. One instance
// processes one step at a time; there is no shared state across instances.
type Env struct {
	cfg      Config
	obsSpace *space.ObservationSpace
	actSpace *space.ActionSpace
	pipeline ops.Pipeline
	reward   reward.Reward

	sys       *optic.System
	stepCount int
	done      bool
}

func New(cfg Config, tracer engine.Tracer, rw reward.Reward) (*Env, error) {
	if tracer == nil {
		return nil, errors.New("tracer is required")
	}
	if rw == nil {
		return nil, errors.New("reward is required")
	}
	cfg = cfg.withDefaults()

	registry := norm.DefaultRegistry()
	return &Env{
		cfg:      cfg,
		obsSpace: space.NewObservationSpace(registry, cfg.MaxLenses),
		actSpace: space.NewActionSpace(registry, cfg.MaxLenses, len(optic.Catalog)),
		pipeline: ops.Pipeline{Tracer: tracer, MaxIterations: cfg.OptimizerIterations},
		reward:   rw,
	}, nil
}

// ObservationSize is the fixed length of normalized observations.
func (e *Env) ObservationSize() int {
	return e.obsSpace.Size()
}

// ActionSize is the fixed length of raw action vectors.
func (e *Env) ActionSize() int {
	return e.actSpace.Size()
}

// System exposes the current prescription for read-only collaborators.
func (e *Env) System() *optic.System {
	return e.sys
}

// StepCount reports valid steps taken since the last reset.
func (e *Env) StepCount() int {
	return e.stepCount
}

// Reset reinitializes the lens state from seed and returns the first
// observation.
func (e *Env) Reset(seed int64) ([]float64, map[string]any, error) {
	rng := rand.New(rand.NewSource(seed))
	e.sys = optic.NewSystem(e.cfg.FNumber, e.cfg.MaxLenses)
	e.sys.Reset(rng)
	e.stepCount = 0
	e.done = false

	obs, err := e.observe()
	if err != nil {
		return nil, nil, err
	}
	return obs, e.info(true), nil
}

// Step decodes and validates the raw action, then either applies it and
// scores the result, or short-circuits to the fixed penalty with the current
// observation unchanged. Invalid steps do not advance the step counter.
func (e *Env) Step(rawAction []float64) (Result, error) {
	if e.sys == nil {
		return Result{}, ErrNotReset
	}
	if e.done {
		return Result{}, ErrEpisodeDone
	}

	act, err := e.actSpace.Decode(rawAction)
	if err != nil {
		return Result{}, err
	}

	next, valid := e.pipeline.Apply(e.sys, act)
	if !valid {
		obs, err := e.observe()
		if err != nil {
			return Result{}, err
		}
		return Result{
			Observation: obs,
			Reward:      invalidActionPenalty,
			Info:        e.info(false),
		}, nil
	}

	e.sys = next
	score := e.reward.Score(e.sys)
	obs, err := e.observe()
	if err != nil {
		return Result{}, err
	}
	e.stepCount++
	e.done = e.stepCount >= e.cfg.MaxSteps

	return Result{
		Observation: obs,
		Reward:      score,
		Terminated:  e.done,
		Info:        e.info(true),
	}, nil
}

func (e *Env) observe() ([]float64, error) {
	return e.obsSpace.Normalize(e.sys.RawObservation())
}

func (e *Env) info(valid bool) map[string]any {
	return map[string]any{
		"valid":         valid,
		"step":          e.stepCount,
		"rms":           e.sys.RMS,
		"surfaces":      e.sys.NumSurfaces(),
		"field_of_view": e.sys.FieldOfView,
	}
}
