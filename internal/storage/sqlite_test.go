package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved := RoundEntry{
		Collected: 12,
		Hits:      4,
		Ticks:     1800,
		Duration:  61500 * time.Millisecond,
		Preset:    "frantic",
		Seed:      42,
		FieldW:    80,
		FieldH:    24,
	}
	id, err := store.SaveRound(saved)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected a positive ID, got %d", id)
	}

	rounds, err := store.AllRounds()
	if err != nil {
		t.Fatalf("AllRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}

	got := rounds[0]
	got.ID, got.CreatedAt = 0, time.Time{}
	if got != saved {
		t.Errorf("round = %+v, expected %+v", got, saved)
	}
	if got := rounds[0].Report(); got.RatioString() != "3.000" || got.Duration != rounds[0].Duration {
		t.Errorf("Report() = %+v, ratio %s, expected 3.000", got, got.RatioString())
	}
}

func TestStoreTopRoundsOrder(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RoundEntry{
		{Collected: 5, Hits: 0},
		{Collected: 20, Hits: 9},
		{Collected: 20, Hits: 2},
		{Collected: 1, Hits: 7},
		{Collected: 8, Hits: 8},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 rounds with limit, got %d", len(top))
	}

	expected := [][2]int{{20, 2}, {20, 9}, {8, 8}}
	for i, e := range expected {
		if top[i].Collected != e[0] || top[i].Hits != e[1] {
			t.Errorf("top[%d] = %d/%d, expected %d/%d", i, top[i].Collected, top[i].Hits, e[0], e[1])
		}
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRound(RoundEntry{Collected: i})
	}

	recent, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Collected != 4 || recent[1].Collected != 3 {
		t.Errorf("unexpected recent rounds: %+v", recent)
	}
}

func TestStoreBestRound(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRound()
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if best != nil {
		t.Errorf("expected no best round in an empty store, got %+v", best)
	}

	store.SaveRound(RoundEntry{Collected: 3, Hits: 1})
	store.SaveRound(RoundEntry{Collected: 9, Hits: 4})

	best, err = store.BestRound()
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if best == nil || best.Collected != 9 {
		t.Errorf("BestRound() = %+v, expected 9 krill", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Rounds != 0 {
		t.Errorf("expected 0 rounds, got %d", stats.Rounds)
	}
	if _, ok := stats.Report().Ratio(); ok {
		t.Error("empty history should have no ratio")
	}

	store.SaveRound(RoundEntry{Collected: 10, Hits: 2, Duration: time.Minute})
	store.SaveRound(RoundEntry{Collected: 4, Hits: 2, Duration: 30 * time.Second})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.BestCollected != 10 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.TotalCollected != 14 || stats.TotalHits != 4 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.TotalPlayed != 90*time.Second {
		t.Errorf("TotalPlayed = %v, expected 1m30s", stats.TotalPlayed)
	}
	if ratio, ok := stats.Report().Ratio(); !ok || ratio != 3.5 {
		t.Errorf("Report().Ratio() = %v, %v, expected 3.5", ratio, ok)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundEntry{Collected: 1})
	store.SaveRound(RoundEntry{Collected: 2})

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.AllRounds()
	if len(rounds) != 0 {
		t.Errorf("expected 0 rounds after clear, got %d", len(rounds))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
