package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/actionbind/internal/action/policy"
	"github.com/dshills/actionbind/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	for _, ctx := range []policy.Context{
		policy.CommandNullTarget, policy.CommandActionNotFound,
		policy.EventNullTarget, policy.EventActionNotFound,
	} {
		if cfg.Behaviour(ctx) != policy.Default {
			t.Errorf("Behaviour(%v) = %v, want Default", ctx, cfg.Behaviour(ctx))
		}
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
logLevel = "debug"
designMode = true
enableMetrics = true

[behaviours]
commandNullTarget = "enable"
commandNotFound = "disable"
eventNullTarget = "throw"
`)

	cfg, err := config.ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML returned error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.DesignMode || !cfg.EnableMetrics {
		t.Error("expected designMode and enableMetrics set")
	}
	if cfg.CommandNullTarget != policy.Enable {
		t.Errorf("CommandNullTarget = %v, want Enable", cfg.CommandNullTarget)
	}
	if cfg.CommandNotFound != policy.Disable {
		t.Errorf("CommandNotFound = %v, want Disable", cfg.CommandNotFound)
	}
	if cfg.EventNullTarget != policy.Throw {
		t.Errorf("EventNullTarget = %v, want Throw", cfg.EventNullTarget)
	}
	// Keys not present keep the Default behaviour.
	if cfg.EventNotFound != policy.Default {
		t.Errorf("EventNotFound = %v, want Default", cfg.EventNotFound)
	}
}

func TestParseTOMLRejectsBadBehaviour(t *testing.T) {
	_, err := config.ParseTOML([]byte("[behaviours]\ncommandNullTarget = \"explode\"\n"))
	if err == nil {
		t.Fatal("expected error for unknown behaviour")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actionbind.toml")
	if err := os.WriteFile(path, []byte("logLevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadTOML(path)
	if err != nil {
		t.Fatalf("LoadTOML returned error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadTOMLMissingFile(t *testing.T) {
	_, err := config.LoadTOML(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ACTIONBIND_LOG_LEVEL", "error")
	t.Setenv("ACTIONBIND_DESIGN_MODE", "true")
	t.Setenv("ACTIONBIND_ENABLE_METRICS", "1")

	cfg := config.ApplyEnv(config.Default())

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if !cfg.DesignMode {
		t.Error("expected DesignMode set from env")
	}
	if !cfg.EnableMetrics {
		t.Error("expected EnableMetrics set from env")
	}
}

func TestApplyEnvIgnoresBadBool(t *testing.T) {
	t.Setenv("ACTIONBIND_DESIGN_MODE", "maybe")

	cfg := config.ApplyEnv(config.Default())
	if cfg.DesignMode {
		t.Error("unparseable bool must leave the setting unchanged")
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"logLevel": "debug",
		"designMode": true,
		"behaviours": {
			"commandNullTarget": "enable",
			"eventNotFound": "disable"
		}
	}`)

	cfg, err := config.ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}

	if cfg.LogLevel != "debug" || !cfg.DesignMode {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.CommandNullTarget != policy.Enable {
		t.Errorf("CommandNullTarget = %v, want Enable", cfg.CommandNullTarget)
	}
	if cfg.EventNotFound != policy.Disable {
		t.Errorf("EventNotFound = %v, want Disable", cfg.EventNotFound)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := config.ParseJSON([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.CommandNullTarget = policy.Disable
	cfg.EventNullTarget = policy.Throw
	cfg.DesignMode = true
	cfg.LogLevel = "warn"

	out, err := config.ExportJSON(cfg)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("export produced invalid json: %s", out)
	}

	back, err := config.ParseJSON(out)
	if err != nil {
		t.Fatalf("ParseJSON returned error: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed the config: %+v != %+v", back, cfg)
	}
}

func TestDecodeSpec(t *testing.T) {
	spec, err := config.DecodeSpec([]byte(`{
		"method": "Save",
		"nullTarget": "disable",
		"actionNotFound": "throw"
	}`))
	if err != nil {
		t.Fatalf("DecodeSpec returned error: %v", err)
	}

	if spec.Method != "Save" {
		t.Errorf("Method = %q, want Save", spec.Method)
	}
	if spec.NullTarget != policy.Disable {
		t.Errorf("NullTarget = %v, want Disable", spec.NullTarget)
	}
	if spec.NotFound != policy.Throw {
		t.Errorf("NotFound = %v, want Throw", spec.NotFound)
	}
}

func TestDecodeSpecDefaults(t *testing.T) {
	spec, err := config.DecodeSpec([]byte(`{"method": "Save"}`))
	if err != nil {
		t.Fatalf("DecodeSpec returned error: %v", err)
	}
	if spec.NullTarget != policy.Default || spec.NotFound != policy.Default {
		t.Errorf("behaviours = (%v, %v), want Default", spec.NullTarget, spec.NotFound)
	}
}

func TestDecodeSpecRequiresMethod(t *testing.T) {
	_, err := config.DecodeSpec([]byte(`{"nullTarget": "enable"}`))
	if err == nil {
		t.Fatal("expected error for specifier with no method")
	}
}

func TestDecodeSpecs(t *testing.T) {
	specs, err := config.DecodeSpecs([]byte(`[
		{"method": "Save"},
		{"method": "Close", "nullTarget": "enable"}
	]`))
	if err != nil {
		t.Fatalf("DecodeSpecs returned error: %v", err)
	}

	if len(specs) != 2 {
		t.Fatalf("len = %d, want 2", len(specs))
	}
	if specs[0].Method != "Save" || specs[1].Method != "Close" {
		t.Errorf("specs = %+v", specs)
	}
	if specs[1].NullTarget != policy.Enable {
		t.Errorf("NullTarget = %v, want Enable", specs[1].NullTarget)
	}
}

func TestDecodeSpecsRejectsObject(t *testing.T) {
	_, err := config.DecodeSpecs([]byte(`{"method": "Save"}`))
	if err == nil {
		t.Fatal("expected error for non-array specifier list")
	}
}
