package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBalance(t *testing.T) {
	bal := DefaultBalance()

	if bal.Scoring.BaseQualityCap != 75 {
		t.Errorf("BaseQualityCap = %d, want 75", bal.Scoring.BaseQualityCap)
	}
	if bal.Scoring.LuckMin != -10 || bal.Scoring.LuckMax != 8 {
		t.Errorf("luck range = [%d,%d], want [-10,8]", bal.Scoring.LuckMin, bal.Scoring.LuckMax)
	}
	if bal.Events.WeeklyChance != 0.20 {
		t.Errorf("WeeklyChance = %v, want 0.20", bal.Events.WeeklyChance)
	}
	if bal.Publisher.RevivalChance != 0.03 {
		t.Errorf("RevivalChance = %v, want 0.03", bal.Publisher.RevivalChance)
	}
	if bal.Revival.Cost != 50 || bal.Revival.InspirationCost != 20 {
		t.Errorf("revival costs = %d/%d, want 50/20", bal.Revival.Cost, bal.Revival.InspirationCost)
	}
	if bal.Life.OldAgeYear != 1870 {
		t.Errorf("OldAgeYear = %d, want 1870", bal.Life.OldAgeYear)
	}
}

func TestEmbeddedBalanceMatchesDefaults(t *testing.T) {
	bal, err := LoadBalance("")
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}

	want := DefaultBalance()
	if bal.Scoring != want.Scoring {
		t.Errorf("embedded Scoring = %+v, want %+v", bal.Scoring, want.Scoring)
	}
	if bal.Publisher != want.Publisher {
		t.Errorf("embedded Publisher = %+v, want %+v", bal.Publisher, want.Publisher)
	}
	if bal.Life != want.Life {
		t.Errorf("embedded Life = %+v, want %+v", bal.Life, want.Life)
	}
}

func TestLoadBalanceCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance.yaml")
	custom := []byte("scoring:\n  base_quality_cap: 60\n  luck_min: -5\n  luck_max: 5\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("cannot write custom config: %v", err)
	}

	bal, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}
	if bal.Scoring.BaseQualityCap != 60 {
		t.Errorf("BaseQualityCap = %d, want 60 from custom config", bal.Scoring.BaseQualityCap)
	}
	if bal.Scoring.LuckMin != -5 {
		t.Errorf("LuckMin = %d, want -5 from custom config", bal.Scoring.LuckMin)
	}
}

func TestLoadBalanceMissingCustomPath(t *testing.T) {
	if _, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}
