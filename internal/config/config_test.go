package config

import "testing"

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()
	if cfg.Database.Dialect != "sqlite" {
		t.Errorf("default dialect = %q, want sqlite", cfg.Database.Dialect)
	}
	if cfg.Database.Path != "database/mlb_history.db" {
		t.Errorf("default path = %q, want database/mlb_history.db", cfg.Database.Path)
	}
	if cfg.DataDir != "data" {
		t.Errorf("default data dir = %q, want data", cfg.DataDir)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("default listen = %q, want :8080", cfg.Listen)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ALMANAC_DB_PATH", "/tmp/test.db")
	t.Setenv("ALMANAC_DATA_DIR", "/tmp/data")
	t.Setenv("ALMANAC_LISTEN", ":9090")

	cfg := GetConfig()
	LoadEnv(cfg)

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("path = %q, want /tmp/test.db", cfg.Database.Path)
	}
	if cfg.DataDir != "/tmp/data" {
		t.Errorf("data dir = %q, want /tmp/data", cfg.DataDir)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("listen = %q, want :9090", cfg.Listen)
	}
}
