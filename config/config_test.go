package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsumogiri/shanten/internal/tablegen"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	want := Defaults()
	if cfg != want {
		t.Fatalf("expected %+v got %+v", want, cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shanten.yaml")
	contents := "outputDir: build\nworkers: 4\nconvention: nyanten\nlogLevel: debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: unexpected error %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	want := Config{OutputDir: "build", Workers: 4, Convention: "nyanten", LogLevel: "debug"}
	if cfg != want {
		t.Fatalf("expected %+v got %+v", want, cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHANTEN_OUTPUTDIR", "from-env")
	t.Setenv("SHANTEN_WORKERS", "8")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if cfg.OutputDir != "from-env" {
		t.Fatalf("OutputDir: expected %q got %q", "from-env", cfg.OutputDir)
	}
	if cfg.Workers != 8 {
		t.Fatalf("Workers: expected 8 got %d", cfg.Workers)
	}
}

func TestDistanceConvention(t *testing.T) {
	testcases := []struct {
		name       string
		convention string
		expected   tablegen.Convention
		wantErr    bool
	}{
		{"standard", "standard", tablegen.ConventionStandard, false},
		{"default empty", "", tablegen.ConventionStandard, false},
		{"nyanten", "nyanten", tablegen.ConventionNyanten, false},
		{"unknown", "bogus", 0, true},
	}

	for _, tc := range testcases {
		cfg := Config{Convention: tc.convention}
		got, err := cfg.DistanceConvention()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got none", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.expected {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.expected, got)
		}
	}
}
