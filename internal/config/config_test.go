package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, id := range []string{VariantNightwalk, VariantPark} {
		t.Run(id, func(t *testing.T) {
			embedded := DefaultFor(id)
			if !overlay(&embedded, GetDefaultYAML(id)) {
				t.Fatalf("embedded YAML for %s does not parse", id)
			}
			hard := DefaultFor(id)
			hard.Normalize()

			if embedded.Terrain.Width != hard.Terrain.Width {
				t.Errorf("width = %d, expected %d", embedded.Terrain.Width, hard.Terrain.Width)
			}
			if embedded.Scroll.BaseSpeed != hard.Scroll.BaseSpeed {
				t.Errorf("base speed = %f, expected %f", embedded.Scroll.BaseSpeed, hard.Scroll.BaseSpeed)
			}
			if embedded.Hazards.Structure.Spawn.Enabled != hard.Hazards.Structure.Spawn.Enabled {
				t.Error("structure spawn flag differs between embedded and hardcoded")
			}
			if len(embedded.Benefits.Shops) != len(hard.Benefits.Shops) {
				t.Errorf("shops = %d, expected %d", len(embedded.Benefits.Shops), len(hard.Benefits.Shops))
			}
			if embedded.Collectibles.Values["vinyl"] != 175 {
				t.Errorf("vinyl value = %d, expected 175", embedded.Collectibles.Values["vinyl"])
			}
			if len(embedded.Catalog.Universities) != 5 {
				t.Errorf("universities = %d, expected 5", len(embedded.Catalog.Universities))
			}
		})
	}
}

func TestParkDisablesSpawners(t *testing.T) {
	cfg := DefaultParkConfig()
	if cfg.Hazards.Structure.Spawn.Enabled || cfg.Hazards.Agent.Spawn.Enabled {
		t.Error("park variant should not spawn hazards")
	}
	for _, s := range cfg.Benefits.Shops {
		if s.Spawn.Enabled {
			t.Errorf("park variant should not spawn %s shops", s.Kind)
		}
	}
	if !cfg.Terrain.Benches.Enabled {
		t.Error("park variant keeps benches")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "scroll:\n  base_speed: 90\nstates:\n  empower_ms: 4000\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(VariantNightwalk, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scroll.BaseSpeed != 90 {
		t.Errorf("BaseSpeed = %f, expected 90", cfg.Scroll.BaseSpeed)
	}
	if cfg.States.EmpowerMs != 4000 {
		t.Errorf("EmpowerMs = %f, expected 4000", cfg.States.EmpowerMs)
	}
	// Untouched keys keep their defaults
	if cfg.Terrain.Width != 11 || cfg.Meters.Max != 5 {
		t.Errorf("defaults lost: width=%d max=%f", cfg.Terrain.Width, cfg.Meters.Max)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(VariantNightwalk, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("terrain: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, err := Load(VariantNightwalk, bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("Load() error = %v, expected parse failure", err)
	}
}

func TestNormalizeClampsMalformedValues(t *testing.T) {
	cfg := DefaultNightwalkConfig()
	cfg.Terrain.Width = 2
	cfg.Terrain.TileSize = -1
	cfg.Terrain.Lights.MinSpacing = -4
	cfg.Terrain.Benches.Columns = append(cfg.Terrain.Benches.Columns, BenchColumn{Column: 40, Blocks: "up"})
	cfg.Lighting.Floor = 2
	cfg.Meters.Max = -3
	cfg.Hazards.Agent.FlipChance = 7
	cfg.States.MaxTransformations = 0
	cfg.Catalog.University = "Nowhere State"
	cfg.Catalog.Universities = nil

	cfg.Normalize()

	tests := []struct {
		name string
		ok   bool
	}{
		{"width floored", cfg.Terrain.Width == 7},
		{"tile size restored", cfg.Terrain.TileSize == 48},
		{"light spacing floored", cfg.Terrain.Lights.MinSpacing == 1},
		{"out-of-lane benches dropped", len(cfg.Terrain.Benches.Columns) == 1 && cfg.Terrain.Benches.Columns[0].Column == 4},
		{"floor clamped", cfg.Lighting.Floor == 1 && cfg.Lighting.Peak == 1},
		{"meter max restored", cfg.Meters.Max == 5},
		{"flip chance clamped", cfg.Hazards.Agent.FlipChance == 1},
		{"transformations floored", cfg.States.MaxTransformations == 1},
		{"catalog restored", len(cfg.Catalog.Universities) == 5},
		{"unknown university cleared", cfg.Catalog.University == ""},
	}
	for _, tc := range tests {
		if !tc.ok {
			t.Errorf("Normalize(): %s", tc.name)
		}
	}
}

func TestApplyNightwalkPreset(t *testing.T) {
	base := DefaultNightwalkConfig()

	easy := DefaultNightwalkConfig()
	ApplyNightwalkPreset(&easy, DifficultyEasy)
	if easy.Scroll.BaseSpeed >= base.Scroll.BaseSpeed {
		t.Error("easy preset should slow the scroll")
	}
	if easy.States.EmpowerMs <= base.States.EmpowerMs {
		t.Error("easy preset should lengthen the power-up")
	}

	hard := DefaultNightwalkConfig()
	ApplyNightwalkPreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %f, expected 0.7", hard.Difficulty.InitialLevel)
	}

	fixed := DefaultNightwalkConfig()
	ApplyNightwalkPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	none := DefaultNightwalkConfig()
	ApplyNightwalkPreset(&none, ParsePreset("brutal"))
	if none.Scroll.BaseSpeed != base.Scroll.BaseSpeed {
		t.Error("unknown preset should be a no-op")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	})

	tests := []struct {
		name      string
		elapsedMs float64
		level     float64
		speed     float64
		interval  float64
	}{
		{"start", 0, 0, 100, 1000},
		{"halfway", 500, 0.5, 150, 750},
		{"max", 1000, 1, 200, 500},
		{"past max", 5000, 1, 200, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.Level(0, tc.elapsedMs); got != tc.level {
				t.Errorf("Level() = %f, expected %f", got, tc.level)
			}
			if got := dm.Speed(100, 0, tc.elapsedMs); got != tc.speed {
				t.Errorf("Speed() = %f, expected %f", got, tc.speed)
			}
			if got := dm.Interval(1000, 0, tc.elapsedMs); got != tc.interval {
				t.Errorf("Interval() = %f, expected %f", got, tc.interval)
			}
		})
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(3)
	if dm.Level(0, 500) != 1 {
		t.Error("disabled manager should report the clamped initial level")
	}
}

func TestDumpIsLoadable(t *testing.T) {
	cfg := DefaultNightwalkConfig()
	cfg.Catalog.University = "UCLA"
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	loaded, err := Load(VariantNightwalk, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Catalog.University != "UCLA" {
		t.Errorf("University = %q, expected UCLA", loaded.Catalog.University)
	}
}
