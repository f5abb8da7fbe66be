package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Forecast.Window != 3 || c.Forecast.Horizon != 6 || c.Forecast.HistoryRows != 10 {
		t.Fatalf("unexpected forecast defaults: %+v", c.Forecast)
	}
	if c.Source.Type != "synthetic" {
		t.Fatalf("expected synthetic source default, got %s", c.Source.Type)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: test
forecast:
  window: 5
  horizon: 12
source:
  type: csv
  path: data.csv
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Forecast.Window != 5 || c.Forecast.Horizon != 12 {
		t.Fatalf("overrides not applied: %+v", c.Forecast)
	}
	if c.Source.Type != "csv" || c.Source.Path != "data.csv" {
		t.Fatalf("source overrides not applied: %+v", c.Source)
	}
}

func TestValidateRejectsBadWindow(t *testing.T) {
	path := writeConfig(t, "environment: test\nforecast:\n  window: 0\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "window") {
		t.Fatalf("expected window validation error, got %v", err)
	}
}

func TestValidateRejectsNegativeHorizon(t *testing.T) {
	path := writeConfig(t, "environment: test\nforecast:\n  horizon: -1\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "horizon") {
		t.Fatalf("expected horizon validation error, got %v", err)
	}
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	path := writeConfig(t, "environment: test\nsource:\n  type: excel\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "source.type") {
		t.Fatalf("expected source.type validation error, got %v", err)
	}
}

func TestValidateCSVRequiresPath(t *testing.T) {
	path := writeConfig(t, "environment: test\nsource:\n  type: csv\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "source.path") {
		t.Fatalf("expected source.path validation error, got %v", err)
	}
}

func TestLoadWithEnvOverridesDataPath(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	t.Setenv("TRENDCAST_DATA", "/tmp/demand.csv")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Source.Type != "csv" || c.Source.Path != "/tmp/demand.csv" {
		t.Fatalf("env override not applied: %+v", c.Source)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
