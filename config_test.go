package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("QUICKCAL_LISTEN", "")
	t.Setenv("QUICKCAL_DB_PATH", "")
	t.Setenv("QUICKCAL_API_URL", "")

	config, err := LoadConfig("", "", "", "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Listen != ":3001" {
		t.Errorf("Listen = %q, want :3001", config.Listen)
	}
	if config.APIURL != "http://localhost:3001" {
		t.Errorf("APIURL = %q", config.APIURL)
	}
	if !strings.HasSuffix(config.DBPath, filepath.Join(".local", "share", "quickcal", "events.db")) {
		t.Errorf("DBPath = %q", config.DBPath)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("QUICKCAL_LISTEN", "")
	t.Setenv("QUICKCAL_DB_PATH", "")
	t.Setenv("QUICKCAL_API_URL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen: \":9000\"\ndb_path: /tmp/cal.db\napi_url: http://cal.local:9000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	config, err := LoadConfig(path, "", "", "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Listen != ":9000" || config.DBPath != "/tmp/cal.db" || config.APIURL != "http://cal.local:9000" {
		t.Errorf("config = %+v", config)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: \":1111\"\napi_url: http://file:1111\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	// env beats file
	t.Setenv("QUICKCAL_LISTEN", ":2222")
	t.Setenv("QUICKCAL_DB_PATH", "")
	t.Setenv("QUICKCAL_API_URL", "")

	config, err := LoadConfig(path, "", "", "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Listen != ":2222" {
		t.Errorf("env did not override file: Listen = %q", config.Listen)
	}
	if config.APIURL != "http://file:1111" {
		t.Errorf("file value lost: APIURL = %q", config.APIURL)
	}

	// flag beats env
	config, err = LoadConfig(path, ":3333", "", "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Listen != ":3333" {
		t.Errorf("flag did not override env: Listen = %q", config.Listen)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), "", "", ""); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
