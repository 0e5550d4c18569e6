package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatchConfig()) {
		t.Errorf("embedded YAML and DefaultMatchConfig() disagree:\n%+v\nvs\n%+v", cfg, DefaultMatchConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  half_length: 45\nphysics:\n  ball_friction: 0.9\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Rules.HalfLength != 45 {
		t.Errorf("HalfLength = %f, expected 45", cfg.Rules.HalfLength)
	}
	if cfg.Physics.BallFriction != 0.9 {
		t.Errorf("BallFriction = %f, expected 0.9", cfg.Physics.BallFriction)
	}
	// Untouched keys keep their defaults
	if cfg.Field.Width != 40 || cfg.Rules.ShotPower != 20 {
		t.Errorf("defaults lost: width=%f shot_power=%f", cfg.Field.Width, cfg.Rules.ShotPower)
	}
	if len(cfg.Roster.HomeSpawns) != 5 {
		t.Errorf("HomeSpawns len = %d, expected 5", len(cfg.Roster.HomeSpawns))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero width", "field:\n  width: 0\n", "field: width and length"},
		{"friction above one", "physics:\n  ball_friction: 1.5\n", "ball_friction"},
		{"spawn count mismatch", "roster:\n  team_size: 3\n", "home_spawns has 5 entries"},
		{"controlled out of range", "roster:\n  controlled_index: 9\n", "controlled_index 9"},
		{"bad yaml", "field: [\n", "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMatchCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  half_length: 60\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadMatch(path)
	if err != nil {
		t.Fatalf("LoadMatch() failed: %v", err)
	}
	if cfg.Rules.HalfLength != 60 {
		t.Errorf("HalfLength = %f, expected 60", cfg.Rules.HalfLength)
	}
}

func TestLoadMatchMissingCustomPath(t *testing.T) {
	_, err := LoadMatch(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadMatch() with a missing custom path should fail")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %q", err)
	}
}

func TestMarshalParsesBack(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Decision.PursuitHysteresis = 1.5
	cfg.Roster.AwaySpawns[0] = Spawn{X: 1, Z: 22}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("config changed through YAML:\n%+v\nvs\n%+v", back, cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultMatchConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		seconds  int
		expected float64
	}{
		{0, 0.2},
		{300, 0.6},
		{600, 1.0},
		{900, 1.0}, // clamped
	}
	for _, tc := range tests {
		if got := dm.Level(0, tc.seconds); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(0, %d) = %f, expected %f", tc.seconds, got, tc.expected)
		}
	}

	if got := dm.Effort(0.7, 0, 600); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("Effort at max = %f, expected 1.05", got)
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	dm := NewDifficultyManager(DefaultMatchConfig().Difficulty)

	if dm.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := dm.Effort(0.3, 5, 500); got != 0.3 {
		t.Errorf("Effort() = %f, expected base 0.3", got)
	}
}
