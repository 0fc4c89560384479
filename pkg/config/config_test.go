package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConfig struct {
	Port int `yaml:"port"`
}

func (c *validatedConfig) Validate() error {
	if c.Port <= 0 {
		return errors.New("port is required")
	}
	return nil
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, "name: ansuz\nport: 9000\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "ansuz" || cfg.Port != 9000 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "expanded")
	path := writeTemp(t, "name: ${CONFIG_TEST_NAME}\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "expanded" {
		t.Errorf("name = %q, want expanded", cfg.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Fatal("Load of missing file should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTemp(t, "name: [unclosed\n")

	var cfg testConfig
	if err := Load(path, &cfg); err == nil {
		t.Fatal("Load of invalid YAML should fail")
	}
}

func TestLoadRunsValidation(t *testing.T) {
	path := writeTemp(t, "port: 0\n")

	var cfg validatedConfig
	if err := Load(path, &cfg); err == nil {
		t.Fatal("Load should surface validation failure")
	}
}

func TestLoadIfPresentMissingFile(t *testing.T) {
	cfg := validatedConfig{Port: 8080}
	if err := LoadIfPresent(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err != nil {
		t.Fatalf("LoadIfPresent: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want untouched 8080", cfg.Port)
	}
}

func TestLoadIfPresentValidatesDefaults(t *testing.T) {
	cfg := validatedConfig{Port: 0}
	if err := LoadIfPresent(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Fatal("LoadIfPresent should validate compiled-in defaults")
	}
}

func TestLoadIfPresentReadsExistingFile(t *testing.T) {
	path := writeTemp(t, "port: 9999\n")

	cfg := validatedConfig{Port: 8080}
	if err := LoadIfPresent(path, &cfg); err != nil {
		t.Fatalf("LoadIfPresent: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Port)
	}
}
