package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/cinescroll/pkg/types"
)

func TestDefaultSceneConfig_Valid(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Scroll.Spring.Stiffness != 100 || cfg.Scroll.Spring.Damping != 30 || cfg.Scroll.Spring.RestDelta != 0.001 {
		t.Errorf("unexpected spring defaults: %+v", cfg.Scroll.Spring)
	}
	if cfg.Camera.TargetZ != 12 || cfg.Camera.Smoothing != 0.1 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Camera)
	}
	if len(cfg.Orbits) != 3 {
		t.Fatalf("expected 3 orbits, got %d", len(cfg.Orbits))
	}
	if cfg.Orbits[1].Mode != types.OrbitTilted || math.Abs(cfg.Orbits[1].Tilt-math.Pi/4) > 1e-12 {
		t.Errorf("second orbit should be tilted by pi/4: %+v", cfg.Orbits[1])
	}
	if cfg.Network.Count != 80 {
		t.Errorf("expected 80 particles, got %d", cfg.Network.Count)
	}
}

func TestLoadSceneConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *SceneConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
camera:
  targetZ: 14
network:
  count: 40
  seed: 7
`,
			validate: func(t *testing.T, cfg *SceneConfig) {
				if cfg.Camera.TargetZ != 14 {
					t.Errorf("expected targetZ = 14, got %f", cfg.Camera.TargetZ)
				}
				if cfg.Camera.FOV != 45 {
					t.Errorf("expected default fov = 45, got %f", cfg.Camera.FOV)
				}
				if cfg.Network.Count != 40 || cfg.Network.Seed != 7 {
					t.Errorf("network not decoded: %+v", cfg.Network)
				}
				if cfg.Network.ConnectionDistance != 150 {
					t.Errorf("expected default connection distance, got %f", cfg.Network.ConnectionDistance)
				}
				if len(cfg.Cues) != 7 {
					t.Errorf("expected default cues, got %d", len(cfg.Cues))
				}
			},
		},
		{
			name: "custom cues and orbits",
			yamlContent: `
orbits:
  - mode: vertical
    radius: 3
    speed: 1
    bodyRadius: 0.2
    spinAxis: z
cues:
  - text: HELLO
    scrollStart: 0
    scrollEnd: 0.5
    persistEnd: true
`,
			validate: func(t *testing.T, cfg *SceneConfig) {
				if len(cfg.Orbits) != 1 || cfg.Orbits[0].Mode != types.OrbitVertical {
					t.Errorf("orbits not replaced: %+v", cfg.Orbits)
				}
				if len(cfg.Cues) != 1 || cfg.Cues[0].Text != "HELLO" || !cfg.Cues[0].PersistEnd {
					t.Errorf("cues not replaced: %+v", cfg.Cues)
				}
				if cfg.Cues[0].FontSize != DefaultCueFontSize {
					t.Errorf("cue default font size lost: %v", cfg.Cues[0].FontSize)
				}
			},
		},
		{
			name: "empty cue range rejected",
			yamlContent: `
cues:
  - text: BROKEN
    scrollStart: 0.3
    scrollEnd: 0.3
`,
			wantErr:     true,
			errContains: "scrollEnd",
		},
		{
			name:        "unknown orbit mode",
			yamlContent: "orbits:\n  - mode: spiral\n    radius: 1\n    bodyRadius: 1\n",
			wantErr:     true,
			errContains: "spiral",
		},
		{
			name:        "invalid fov",
			yamlContent: "camera:\n  fov: 190\n",
			wantErr:     true,
			errContains: "fov",
		},
		{
			name:        "invalid spring",
			yamlContent: "scroll:\n  spring:\n    stiffness: 0\n",
			wantErr:     true,
			errContains: "spring",
		},
		{
			name:        "malformed yaml",
			yamlContent: "camera: [1, 2",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadSceneConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSceneConfig_MissingFile(t *testing.T) {
	_, err := LoadSceneConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestParseSceneConfig_EmbeddedDefaultFile(t *testing.T) {
	// 仓库自带的 data/scene.yaml 必须能解析
	cfg, err := LoadSceneConfig(filepath.Join("..", "..", "data", "scene.yaml"))
	if err != nil {
		t.Fatalf("data/scene.yaml should load: %v", err)
	}
	if len(cfg.Cues) != 7 || len(cfg.Orbits) != 3 {
		t.Errorf("unexpected shipped config: %d cues, %d orbits", len(cfg.Cues), len(cfg.Orbits))
	}
}
