package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedWeaponTable(t *testing.T) {
	if len(Weapons) == 0 {
		t.Fatal("embedded weapon table is empty")
	}
	w, ok := WeaponByName("lightning")
	if !ok {
		t.Fatal("lightning missing from weapon table")
	}
	if !w.Chargeable {
		t.Fatalf("lightning chargeable = false, want true")
	}
	if _, ok := WeaponByName("spoon"); ok {
		t.Fatal("WeaponByName(spoon) found a weapon")
	}
}

func TestParseWeaponsRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "- damage: 10\n  reload: 1\n"},
		{"duplicate", "- name: a\n  reload: 1\n- name: a\n  reload: 1\n"},
		{"zero reload", "- name: a\n  reload: 0\n"},
		{"not a list", "name: a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseWeapons([]byte(tt.doc)); err == nil {
				t.Fatalf("ParseWeapons(%q) succeeded, want error", tt.doc)
			}
		})
	}
}

func TestApplyTuningOverlaysOnlyGivenFields(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	doc := "player:\n  maxLife: 150\nphysics:\n  gravity: 20\n"
	if err := ApplyTuning([]byte(doc)); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	if Player.MaxLife != 150 {
		t.Fatalf("MaxLife = %v, want 150", Player.MaxLife)
	}
	if Physics.Gravity != 20 {
		t.Fatalf("Gravity = %v, want 20", Physics.Gravity)
	}
	if Player.MaxAir != saved.Player.MaxAir {
		t.Fatalf("MaxAir = %v, want untouched %v", Player.MaxAir, saved.Player.MaxAir)
	}
}

func TestApplyTuningLeavesTablesOnError(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	if err := ApplyTuning([]byte("player:\n  maxLife: -1\n")); err == nil {
		t.Fatal("ApplyTuning accepted a negative maxLife")
	}
	if Player.MaxLife != saved.Player.MaxLife {
		t.Fatalf("MaxLife = %v after rejected tuning, want %v", Player.MaxLife, saved.Player.MaxLife)
	}
	if err := ApplyTuning([]byte("player: [")); err == nil {
		t.Fatal("ApplyTuning accepted malformed YAML")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadTuning on a missing file succeeded")
	}
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := WatchTuning(dir)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  maxLife: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "tuning.yaml" {
			t.Fatalf("event for %q, want tuning.yaml", name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no watcher event after writing tuning.yaml")
	}
}
