package main

import (
	"encoding/json"
	"math"
	"os"

	"lensrl/pkg/lensrl"
)

func loadRunConfig(path string) (lensrl.RunRequest, lensrl.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lensrl.RunRequest{}, lensrl.Options{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return lensrl.RunRequest{}, lensrl.Options{}, err
	}

	var req lensrl.RunRequest
	var opts lensrl.Options
	if v, ok := asInt(raw["episodes"]); ok {
		req.Episodes = v
	}
	if v, ok := asInt(raw["seed"]); ok {
		req.Seed = int64(v)
	}
	if v, ok := asInt(raw["max_lenses"]); ok {
		req.MaxLenses = v
	}
	if v, ok := asFloat64(raw["f_number"]); ok {
		req.FNumber = v
	}
	if v, ok := asInt(raw["max_steps"]); ok {
		req.MaxSteps = v
	}
	if v, ok := asInt(raw["optimizer_iterations"]); ok {
		req.OptimizerIterations = v
	}
	if v, ok := asString(raw["store"]); ok {
		opts.StoreKind = v
	}
	if v, ok := asString(raw["db_path"]); ok {
		opts.DBPath = v
	}
	return req, opts, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}
