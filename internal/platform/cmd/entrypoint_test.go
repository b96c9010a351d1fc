package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	BaseDir string `env:"CMD_TEST_BASE_DIR" envDefault:"."`
	Palette string `env:"CMD_TEST_PALETTE" envDefault:"kindlmann"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("TAVERNSTATS_CMD_TEST_BASE_DIR", "/env/base")
	t.Setenv("TAVERNSTATS_CMD_TEST_PALETTE", "blackbody")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.BaseDir, "base-dir", cfgRef.BaseDir, "base dir")
	fs.StringVar(&cfgRef.Palette, "palette", cfgRef.Palette, "palette")

	if err := ParseArgs(fs, []string{"-base-dir", "/flag/base"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.BaseDir != "/flag/base" {
		t.Fatalf("expected flag value for base dir, got %q", cfgRef.BaseDir)
	}
	if cfgRef.Palette != "blackbody" {
		t.Fatalf("expected env default palette, got %q", cfgRef.Palette)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target to be rejected")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceRosterReport, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("TAVERNSTATS_OTEL_ENDPOINT", "")
	want := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceRosterReport, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
