package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/crowdviz/internal/gradient"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.View.Width <= 0 || cfg.View.Height <= 0 {
		t.Error("default view must have positive size")
	}
	if len(cfg.Gradients) != len(gradient.Quantities) {
		t.Errorf("got %d gradient specs, want %d", len(cfg.Gradients), len(gradient.Quantities))
	}

	m, err := cfg.Mapper()
	if err != nil {
		t.Fatalf("default config must build a mapper: %v", err)
	}
	for _, q := range gradient.Quantities {
		if _, err := m.Gradient(q); err != nil {
			t.Errorf("quantity %s missing from default mapper: %v", q, err)
		}
	}
}

func TestLoadSave_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crowdviz.yaml")

	cfg := DefaultConfig()
	cfg.View.Width = 250
	spec := cfg.Gradients["pressure"]
	spec.Range.Hi = 7.5
	cfg.Gradients["pressure"] = spec

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.View.Width != 250 {
		t.Errorf("view width = %v, want 250", loaded.View.Width)
	}
	if loaded.Gradients["pressure"].Range.Hi != 7.5 {
		t.Errorf("pressure hi = %v, want 7.5", loaded.Gradients["pressure"].Range.Hi)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crowdviz.yaml")
	partial := "view:\n  x: -10\n  y: -10\n  width: 20\n  height: 20\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.View.X != -10 || cfg.View.Width != 20 {
		t.Errorf("view not applied: %+v", cfg.View)
	}
	if _, ok := cfg.Gradients["speed"]; !ok {
		t.Error("defaults for gradients must survive a partial file")
	}
}

func TestMapper_RejectsBadSpec(t *testing.T) {
	cfg := DefaultConfig()
	spec := cfg.Gradients["speed"]
	spec.Steps = 1
	cfg.Gradients["speed"] = spec

	if _, err := cfg.Mapper(); err == nil {
		t.Error("steps=1 must be rejected")
	}
}
