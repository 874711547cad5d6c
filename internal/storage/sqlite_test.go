//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "episodes.db"))
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	want := sampleEpisode("ep-sql")
	if err := s.SaveEpisode(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.GetEpisode(ctx, "ep-sql")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("saved episode not found")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	_, ok, err = s.GetEpisode(ctx, "absent")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if ok {
		t.Fatal("missing episode reported as present")
	}
}

func TestSQLiteStoreUpsertAndList(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "episodes.db"))
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	for _, id := range []string{"b", "a"} {
		if err := s.SaveEpisode(ctx, sampleEpisode(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	updated := sampleEpisode("a")
	updated.TotalReward = 5
	if err := s.SaveEpisode(ctx, updated); err != nil {
		t.Fatalf("resave: %v", err)
	}

	ids, err := s.ListEpisodes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Fatalf("list: got %v", ids)
	}

	got, _, err := s.GetEpisode(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalReward != 5 {
		t.Fatalf("upsert not applied: total reward %f", got.TotalReward)
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "episodes.db"))
	if _, _, err := s.GetEpisode(context.Background(), "x"); err == nil {
		t.Fatal("expected error before init")
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	s := NewSQLiteStore("")
	if err := s.Init(context.Background()); err == nil {
		t.Fatal("expected error for empty path")
	}
}
