package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avoigt/kapellmeister/internal/game"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nothing saved yet
	loaded, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if loaded != nil {
		t.Error("Expected no save in a fresh database")
	}

	has, err := store.HasSave()
	if err != nil {
		t.Fatalf("HasSave() failed: %v", err)
	}
	if has {
		t.Error("HasSave() should be false in a fresh database")
	}

	state := game.NewGame("Clara")
	state.Stats.Money = 250
	state.Stats.Reputation = 17

	if err := store.SaveGame(state); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	loaded, err = store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a save after SaveGame()")
	}
	if loaded.ComposerName != "Clara" {
		t.Errorf("Expected composer name Clara, got %q", loaded.ComposerName)
	}
	if loaded.Stats.Money != 250 || loaded.Stats.Reputation != 17 {
		t.Errorf("Stats not round-tripped: %+v", loaded.Stats)
	}
	if loaded.CurrentDate.Year != 1820 {
		t.Errorf("Expected year 1820, got %d", loaded.CurrentDate.Year)
	}
}

func TestStoreSaveOverwritesSlot(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	first := game.NewGame("Franz")
	if err := store.SaveGame(first); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	second := game.NewGame("Franz")
	second.Stats.Money = 9999
	if err := store.SaveGame(second); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	loaded, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if loaded == nil || loaded.Stats.Money != 9999 {
		t.Errorf("Save slot was not overwritten: %+v", loaded)
	}
}

func TestStoreCorruptSaveTreatedAsAbsent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.db.Exec(
		"INSERT INTO saves (slot, state) VALUES (1, ?)", "{not json",
	); err != nil {
		t.Fatalf("cannot seed corrupt save: %v", err)
	}

	loaded, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if loaded != nil {
		t.Error("Corrupt save should load as nil, not an error or partial state")
	}
}

func TestStoreClearSave(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveGame(game.NewGame("Fanny")); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.ClearSave(); err != nil {
		t.Fatalf("ClearSave() failed: %v", err)
	}

	has, err := store.HasSave()
	if err != nil {
		t.Fatalf("HasSave() failed: %v", err)
	}
	if has {
		t.Error("Save should be gone after ClearSave()")
	}
}

func TestStorePremiereHistory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	works := []game.CompletedWork{
		{ID: "w1", Title: "Sonata in C major, Op. 1", Form: game.FormPianoSonata,
			Venue: game.VenueSalon, Quality: 45, Earnings: 12, ReputationGained: 4,
			PremiereDate: game.GameDate{Year: 1820, Month: 2, Week: 3}},
		{ID: "w2", Title: "Symphony in D minor, Op. 7", Form: game.FormSymphony,
			Venue: game.VenueConcertHall, Quality: 82, Earnings: 790, ReputationGained: 20,
			PremiereDate: game.GameDate{Year: 1824, Month: 5, Week: 1}},
		{ID: "w3", Title: "Quartet in G major, Op. 4", Form: game.FormStringQuartet,
			Venue: game.VenueSmallHall, Quality: 61, Earnings: 195, ReputationGained: 11,
			PremiereDate: game.GameDate{Year: 1822, Month: 0, Week: 2}, IsRevival: true},
	}
	for _, w := range works {
		if _, err := store.RecordPremiere(w); err != nil {
			t.Fatalf("RecordPremiere() failed: %v", err)
		}
	}

	history, err := store.PremiereHistory(10)
	if err != nil {
		t.Fatalf("PremiereHistory() failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(history))
	}

	// Ordered by quality descending
	if history[0].Quality != 82 || history[1].Quality != 61 || history[2].Quality != 45 {
		t.Errorf("History not ordered by quality: %v", history)
	}
	if !history[1].IsRevival {
		t.Error("Revival flag was not round-tripped")
	}
	if history[0].PremiereDate != "June, Week 1, 1824" {
		t.Errorf("Unexpected premiere date string: %q", history[0].PremiereDate)
	}
}

func TestStorePremiereHistoryLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.RecordPremiere(game.CompletedWork{
			ID: "w", Title: "Work", Form: game.FormLied,
			Venue: game.VenueSalon, Quality: (i + 1) * 10,
		})
	}

	history, err := store.PremiereHistory(3)
	if err != nil {
		t.Fatalf("PremiereHistory() failed: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("Expected 3 records with limit, got %d", len(history))
	}
	if history[0].Quality != 50 || history[1].Quality != 40 || history[2].Quality != 30 {
		t.Errorf("History not in expected order: %v", history)
	}
}

func TestStoreHistorySurvivesReset(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveGame(game.NewGame("Robert"))
	store.RecordPremiere(game.CompletedWork{
		ID: "w1", Title: "Lied", Form: game.FormLied, Venue: game.VenueSalon, Quality: 40,
	})

	if err := store.ClearSave(); err != nil {
		t.Fatalf("ClearSave() failed: %v", err)
	}

	history, err := store.PremiereHistory(10)
	if err != nil {
		t.Fatalf("PremiereHistory() failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("Premiere history should survive a career reset, got %d records", len(history))
	}
}
