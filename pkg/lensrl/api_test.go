package lensrl

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"lensrl/internal/model"
	"lensrl/internal/optic"
)

func newMemoryClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), Options{StoreKind: "memory"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRunPersistsEpisodes(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient(t)

	result, err := client.Run(ctx, RunRequest{
		Episodes: 2,
		Seed:     3,
		MaxSteps: 4,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Episodes) != 2 {
		t.Fatalf("episode count: got %d, want 2", len(result.Episodes))
	}

	seen := make(map[string]bool)
	for i, ep := range result.Episodes {
		if ep.ID == "" {
			t.Fatalf("episode %d has no ID", i)
		}
		if seen[ep.ID] {
			t.Fatalf("duplicate episode ID %s", ep.ID)
		}
		seen[ep.ID] = true

		if ep.Seed != 3+int64(i) {
			t.Fatalf("episode %d seed: got %d, want %d", i, ep.Seed, 3+int64(i))
		}
		if ep.ValidSteps != 4 {
			t.Fatalf("episode %d valid steps: got %d, want 4", i, ep.ValidSteps)
		}
		if ep.Steps < ep.ValidSteps {
			t.Fatalf("episode %d recorded %d steps for %d valid ones", i, ep.Steps, ep.ValidSteps)
		}
	}

	mean := (result.Episodes[0].TotalReward + result.Episodes[1].TotalReward) / 2
	if math.Abs(result.MeanTotalReward-mean) > 1e-9 {
		t.Fatalf("mean total reward: got %f, want %f", result.MeanTotalReward, mean)
	}

	ids, err := client.Episodes(ctx)
	if err != nil {
		t.Fatalf("episodes: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("persisted episode count: got %d, want 2", len(ids))
	}

	record, ok, err := client.Episode(ctx, result.Episodes[0].ID)
	if err != nil {
		t.Fatalf("episode fetch: %v", err)
	}
	if !ok {
		t.Fatal("persisted episode not found")
	}
	if len(record.Steps) != result.Episodes[0].Steps {
		t.Fatalf("recorded steps: got %d, want %d", len(record.Steps), result.Episodes[0].Steps)
	}
	if record.SchemaVersion == 0 || record.CodecVersion == 0 {
		t.Fatalf("record not version stamped: %+v", record.VersionedRecord)
	}
	if len(record.FinalSurfaces) < 4 {
		t.Fatalf("final prescription too short: %d surfaces", len(record.FinalSurfaces))
	}
}

func TestRunDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()
	a := newMemoryClient(t)
	b := newMemoryClient(t)

	req := RunRequest{Episodes: 1, Seed: 11, MaxSteps: 3}
	resA, err := a.Run(ctx, req)
	if err != nil {
		t.Fatalf("run a: %v", err)
	}
	resB, err := b.Run(ctx, req)
	if err != nil {
		t.Fatalf("run b: %v", err)
	}

	epA, epB := resA.Episodes[0], resB.Episodes[0]
	if epA.TotalReward != epB.TotalReward {
		t.Fatalf("same-seed rollouts diverged: %f vs %f", epA.TotalReward, epB.TotalReward)
	}
	if epA.Steps != epB.Steps {
		t.Fatalf("same-seed step counts diverged: %d vs %d", epA.Steps, epB.Steps)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	client := newMemoryClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Run(ctx, RunRequest{Episodes: 1}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestSurfaceRecordRoundTrip(t *testing.T) {
	sys := optic.NewSystem(10, 1)
	sys.Reset(rand.New(rand.NewSource(13)))
	sys.FieldOfView = 8
	sys.RMS = 0.02

	record := model.EpisodeRecord{
		FNumber:          sys.FNumber,
		MaxLenses:        sys.MaxLenses,
		FinalRMS:         sys.RMS,
		FinalFieldOfView: sys.FieldOfView,
		FinalSurfaces:    SurfaceRecords(sys),
	}
	rebuilt := SystemFromRecord(record)

	if len(rebuilt.Surfaces) != len(sys.Surfaces) {
		t.Fatalf("surface count: got %d, want %d", len(rebuilt.Surfaces), len(sys.Surfaces))
	}
	if rebuilt.FNumber != sys.FNumber || rebuilt.FieldOfView != sys.FieldOfView || rebuilt.RMS != sys.RMS {
		t.Fatalf("scalar state mismatch: %+v", rebuilt)
	}
	if !math.IsInf(rebuilt.Surfaces[0].Radius, 1) || !math.IsInf(rebuilt.Surfaces[0].Thickness, 1) {
		t.Fatal("object surface must come back at infinity")
	}
	if !math.IsInf(rebuilt.Surfaces[3].Radius, 1) {
		t.Fatal("image surface must come back flat")
	}

	for i := 1; i < 3; i++ {
		got, want := rebuilt.Surfaces[i], sys.Surfaces[i]
		if math.Abs(got.Radius-want.Radius) > 1e-9*math.Abs(want.Radius) {
			t.Fatalf("surface %d radius: got %g, want %g", i, got.Radius, want.Radius)
		}
		if got.Thickness != want.Thickness {
			t.Fatalf("surface %d thickness: got %g, want %g", i, got.Thickness, want.Thickness)
		}
		if got.IsStop != want.IsStop {
			t.Fatalf("surface %d stop flag: got %v, want %v", i, got.IsStop, want.IsStop)
		}
	}
	if rebuilt.Surfaces[1].Material == nil || rebuilt.Surfaces[1].Material.Name != sys.Surfaces[1].Material.Name {
		t.Fatal("material did not survive the round trip")
	}
}
