package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("addr mismatch: got=%s", cfg.HTTP.Addr)
	}
	if cfg.Store.Driver != StoreMemory || cfg.AI.Provider != AIProviderMock {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AI.Timeout != 60*time.Second || cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected ai defaults: %+v", cfg.AI)
	}
	if cfg.DB.MigrationsDir != "db/migrations" || cfg.Mongo.Database != "lexiq" {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.DB, cfg.Mongo)
	}
}

func TestLoadFrom_ReadsPrefixedVars(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"LEXIQ_HTTP_ADDR":            ":9090",
		"LEXIQ_HTTP_ALLOWED_ORIGINS": "https://app.lexiq.in,http://localhost:3000",
		"LEXIQ_STORE_DRIVER":         "Mongo",
		"LEXIQ_MONGO_URI":            "mongodb://localhost:27017",
		"LEXIQ_AI_PROVIDER":          "openai",
		"LEXIQ_OPENAI_API_KEY":       "sk-test",
		"LEXIQ_AI_TIMEOUT":           "15s",
		"LEXIQ_LOG_DEVELOPMENT":      "true",
	})
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || len(cfg.HTTP.AllowedOrigins) != 2 {
		t.Fatalf("unexpected http config: %+v", cfg.HTTP)
	}
	if cfg.Store.Driver != StoreMongo || cfg.OpenAI.APIKey != "sk-test" || cfg.AI.Timeout != 15*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Log.Development {
		t.Fatalf("expected development logging")
	}
}

func TestValidate_RejectsInconsistentCombinations(t *testing.T) {
	cases := map[string]map[string]string{
		"postgres without dsn": {"LEXIQ_STORE_DRIVER": "postgres"},
		"mongo without uri":    {"LEXIQ_STORE_DRIVER": "mongo"},
		"unknown store":        {"LEXIQ_STORE_DRIVER": "redis"},
		"openai without key":   {"LEXIQ_AI_PROVIDER": "openai"},
		"unknown provider":     {"LEXIQ_AI_PROVIDER": "gemini"},
		"short jwt secret":     {"LEXIQ_JWT_SECRET": "short"},
	}
	for name, vars := range cases {
		if _, err := LoadFrom(vars); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	_, err := LoadFrom(map[string]string{"LEXIQ_STORE_DRIVER": "postgres", "LEXIQ_AI_PROVIDER": "openai"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "LEXIQ_DB_DSN") || !strings.Contains(err.Error(), "LEXIQ_OPENAI_API_KEY") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}
