package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/quantum-jumper/internal/sim"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveProgress("local", "challenge", 4); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	level, ok, err := store.LoadProgress("local", "challenge")
	if err != nil || !ok || level != 4 {
		t.Errorf("LoadProgress() = %d, %v, %v; want 4, true, nil", level, ok, err)
	}
}

func TestStoreProgress(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LoadProgress("local", "challenge"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	steps := []struct {
		profile string
		mode    string
		level   int
	}{
		{"local", "challenge", 2},
		{"local", "challenge", 3},
		{"local", "casual", 15},
		{"alice", "challenge", 7},
	}
	for _, s := range steps {
		if err := store.SaveProgress(s.profile, s.mode, s.level); err != nil {
			t.Fatalf("SaveProgress(%v) failed: %v", s, err)
		}
	}

	tests := []struct {
		profile string
		mode    string
		want    int
	}{
		{"local", "challenge", 3},
		{"local", "casual", 15},
		{"alice", "challenge", 7},
	}
	for _, tt := range tests {
		level, ok, err := store.LoadProgress(tt.profile, tt.mode)
		if err != nil || !ok || level != tt.want {
			t.Errorf("LoadProgress(%s, %s) = %d, %v, %v; want %d", tt.profile, tt.mode, level, ok, err, tt.want)
		}
	}

	if err := store.ClearProgress("local", "challenge"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	if _, ok, _ := store.LoadProgress("local", "challenge"); ok {
		t.Error("progress should be gone after ClearProgress")
	}
	if _, ok, _ := store.LoadProgress("local", "casual"); !ok {
		t.Error("other modes should not be affected")
	}
}

func TestStoreTopClears(t *testing.T) {
	store := openTestStore(t)

	clears := []struct {
		mode   string
		level  int
		shards int
		simMS  float64
	}{
		{"challenge", 1, 3, 9000},
		{"challenge", 3, 3, 20000},
		{"challenge", 3, 3, 12000},
		{"challenge", 2, 3, 5000},
		{"casual", 11, 8, 30000},
	}
	for _, c := range clears {
		if _, err := store.SaveClear("local", c.mode, c.level, c.shards, c.simMS); err != nil {
			t.Fatalf("SaveClear() failed: %v", err)
		}
	}

	top, err := store.TopClears("challenge", 3)
	if err != nil {
		t.Fatalf("TopClears() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	want := []struct {
		level int
		simMS float64
	}{{3, 12000}, {3, 20000}, {2, 5000}}
	for i, w := range want {
		if top[i].Level != w.level || top[i].SimMS != w.simMS {
			t.Errorf("top[%d] = level %d %vms, want level %d %vms", i, top[i].Level, top[i].SimMS, w.level, w.simMS)
		}
	}

	casual, _ := store.TopClears("casual", 10)
	if len(casual) != 1 || casual[0].Shards != 8 {
		t.Errorf("casual clears = %+v", casual)
	}

	if err := store.ClearRecords("challenge"); err != nil {
		t.Fatalf("ClearRecords() failed: %v", err)
	}
	if top, _ := store.TopClears("challenge", 10); len(top) != 0 {
		t.Errorf("expected no challenge clears, got %d", len(top))
	}
	if casual, _ := store.TopClears("casual", 10); len(casual) != 1 {
		t.Error("casual clears should not be affected")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("challenge")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.Clears != 0 || empty.HighestLevel != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveClear("local", "challenge", 1, 3, 1000)
	store.SaveClear("local", "challenge", 2, 4, 2000)

	stats, err := store.GetModeStats("challenge")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Clears != 2 || stats.HighestLevel != 2 || stats.TotalShards != 7 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestProfileStore(t *testing.T) {
	store := openTestStore(t)

	alice := store.ForProfile("alice")
	local := store.ForProfile("")
	if local.Profile() != DefaultProfile {
		t.Errorf("empty profile = %q, want %q", local.Profile(), DefaultProfile)
	}

	if err := alice.SaveProgress(sim.ModeCasual, 14); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if level, ok, err := alice.LoadProgress(sim.ModeCasual); err != nil || !ok || level != 14 {
		t.Errorf("alice casual = %d, %v, %v", level, ok, err)
	}
	if _, ok, _ := local.LoadProgress(sim.ModeCasual); ok {
		t.Error("profiles must not share progress")
	}

	if err := alice.SaveClear("casual", 14, 7, 4200); err != nil {
		t.Fatalf("SaveClear() failed: %v", err)
	}
	top, _ := store.TopClears("casual", 1)
	if len(top) != 1 || top[0].Profile != "alice" {
		t.Errorf("clear = %+v", top)
	}
}
