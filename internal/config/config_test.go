package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\njwtSecret: secret\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Fatalf("expected memory backend default, got %s", cfg.StorageBackend)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" || cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Fatalf("expected openai defaults, got %s %s", cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}
	if cfg.ChatRateLimitPerMinute != 30 {
		t.Fatalf("expected default chat rate limit, got %d", cfg.ChatRateLimitPerMinute)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\njwtSecret: secret\nopenaiModel: gpt-4o\n")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("env should override file, got %s", cfg.OpenAIModel)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env should set log level, got %s", cfg.LogLevel)
	}
}

func TestLoadRejectsIncompleteBackends(t *testing.T) {
	cases := map[string]string{
		"missing port":        "jwtSecret: secret\n",
		"missing jwt secret":  "port: \"8080\"\n",
		"redis without addr":  "port: \"8080\"\njwtSecret: secret\nstorageBackend: redis\n",
		"postgres without db": "port: \"8080\"\njwtSecret: secret\nstorageBackend: postgres\n",
		"unknown backend":     "port: \"8080\"\njwtSecret: secret\nstorageBackend: sqlite\n",
	}
	for name, body := range cases {
		path := writeConfig(t, body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestParseSessionTTL(t *testing.T) {
	if ttl, err := ParseSessionTTL(""); err != nil || ttl != 0 {
		t.Fatalf("empty ttl should be zero, got %v %v", ttl, err)
	}
	if _, err := ParseSessionTTL("not-a-duration"); err == nil {
		t.Fatalf("expected error for malformed ttl")
	}
}
