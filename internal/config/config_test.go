package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/panicit/internal/logging"
	"github.com/eugenenazirov/panicit/internal/storage"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvExit, EnvSilent, EnvExitCode, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panicit.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.LogFormat != defaultLogFormat {
		t.Fatalf("expected default log format %s, got %s", defaultLogFormat, cfg.LogFormat)
	}
	if cfg.Defaults.Exit != nil || cfg.Defaults.Silent != nil || cfg.Defaults.ExitCode != nil {
		t.Fatalf("expected no default overrides, got %+v", cfg.Defaults)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvExit, "false")
	t.Setenv(EnvSilent, "1")
	t.Setenv(EnvExitCode, "3")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Defaults.Exit == nil || *cfg.Defaults.Exit {
		t.Fatalf("expected exit=false from env, got %v", cfg.Defaults.Exit)
	}
	if cfg.Defaults.Silent == nil || !*cfg.Defaults.Silent {
		t.Fatalf("expected silent=true from env, got %v", cfg.Defaults.Silent)
	}
	if cfg.Defaults.ExitCode != "3" {
		t.Fatalf("expected raw exit code 3, got %#v", cfg.Defaults.ExitCode)
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json log format, got %s", cfg.LogFormat)
	}
}

func TestLoadIgnoresInvalidEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSilent, "maybe")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Defaults.Silent != nil {
		t.Fatalf("expected invalid bool to be ignored, got %v", *cfg.Defaults.Silent)
	}
}

func TestLoadYAMLOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvExitCode, "3")
	t.Setenv(EnvSilent, "true")

	path := writeConfig(t, "exit: false\nexit_code: 4\nlog_format: json\n")

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Defaults.ExitCode != 4 {
		t.Fatalf("expected YAML exit code 4, got %#v", cfg.Defaults.ExitCode)
	}
	if cfg.Defaults.Exit == nil || *cfg.Defaults.Exit {
		t.Fatalf("expected exit=false from YAML, got %v", cfg.Defaults.Exit)
	}
	if cfg.Defaults.Silent == nil || !*cfg.Defaults.Silent {
		t.Fatalf("expected env silent to survive when YAML omits it")
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json log format, got %s", cfg.LogFormat)
	}
}

func TestLoadYAMLPassesInvalidExitCodeThrough(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "exit_code: nope\n")

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	store := storage.NewMemoryStore()
	store.SetDefaults(storage.Partial{ExitCode: 9})
	store.SetDefaults(cfg.Defaults)
	if got := store.GetDefaults().ExitCode; got != storage.FallbackExitCode {
		t.Fatalf("expected store to normalise invalid exit code, got %d", got)
	}
}

func TestLoadCLIOverridesEverything(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvExitCode, "3")
	path := writeConfig(t, "exit_code: 4\nsilent: false\n")

	code := "5"
	silent := true
	format := logging.FormatConsole
	cfg, err := Load(&CLIOverrides{
		ConfigFile: path,
		ExitCode:   &code,
		Silent:     &silent,
		LogFormat:  &format,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Defaults.ExitCode != "5" {
		t.Fatalf("expected CLI exit code 5, got %#v", cfg.Defaults.ExitCode)
	}
	if cfg.Defaults.Silent == nil || !*cfg.Defaults.Silent {
		t.Fatalf("expected CLI silent=true")
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, "exit: [unterminated\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("unknown log format", func(t *testing.T) {
		format := "xml"
		if _, err := Load(&CLIOverrides{LogFormat: &format}); !errors.Is(err, logging.ErrUnknownLogFormat) {
			t.Fatalf("expected ErrUnknownLogFormat, got %v", err)
		}
	})
}
