package configparser

import (
	"testing"
	"time"
)

type testConfig struct {
	Name string `env:"TESTCFG_NAME" default:"fallback"`

	Nested struct {
		Port    int           `env:"TESTCFG_PORT" default:"8080"`
		Timeout time.Duration `env:"TESTCFG_TIMEOUT" default:"15m"`
		Debug   bool          `env:"TESTCFG_DEBUG" default:"false"`
	}
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &testConfig{}
	if err := ParseEnv(cfg); err != nil {
		t.Fatalf("ParseEnv error: %v", err)
	}

	if cfg.Name != "fallback" {
		t.Errorf("Name = %q, want %q", cfg.Name, "fallback")
	}
	if cfg.Nested.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Nested.Port)
	}
	if cfg.Nested.Timeout != 15*time.Minute {
		t.Errorf("Timeout = %v, want 15m", cfg.Nested.Timeout)
	}
}

func TestParseEnv_EnvOverridesDefault(t *testing.T) {
	t.Setenv("TESTCFG_NAME", "from-env")
	t.Setenv("TESTCFG_PORT", "9090")
	t.Setenv("TESTCFG_DEBUG", "true")

	cfg := &testConfig{}
	if err := ParseEnv(cfg); err != nil {
		t.Fatalf("ParseEnv error: %v", err)
	}

	if cfg.Name != "from-env" {
		t.Errorf("Name = %q, want %q", cfg.Name, "from-env")
	}
	if cfg.Nested.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Nested.Port)
	}
	if !cfg.Nested.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("TESTCFG_PORT", "not-a-number")

	cfg := &testConfig{}
	if err := ParseEnv(cfg); err == nil {
		t.Fatal("expected error for invalid integer")
	}
}

func TestParseEnv_RequiresStructPointer(t *testing.T) {
	if err := ParseEnv(testConfig{}); err == nil {
		t.Fatal("expected error for non-pointer config")
	}
}
