package hashconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.Bind != "127.0.0.1" || d.Port != 2025 || d.ComputeThreads != 1 || d.AsyncThreads != 1 {
		t.Fatalf("Default() = %+v, unexpected zero-config values", d)
	}
}

func TestLoadFileFillsGapsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "port: 9090\ncache_size: 4096\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	base := Server{Bind: "0.0.0.0", Port: 2025, ComputeThreads: 4, AsyncThreads: 2}
	merged, err := LoadFile(path, base)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if merged.Bind != "0.0.0.0" {
		t.Errorf("Bind = %q, want base value preserved since file left it unset", merged.Bind)
	}
	if merged.Port != 9090 {
		t.Errorf("Port = %d, want file override 9090", merged.Port)
	}
	if merged.ComputeThreads != 4 {
		t.Errorf("ComputeThreads = %d, want base value preserved", merged.ComputeThreads)
	}
	if merged.CacheSize != 4096 {
		t.Errorf("CacheSize = %d, want file override 4096", merged.CacheSize)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"), Default())
	if err == nil {
		t.Fatal("expected an error loading a missing config file")
	}
}
