package app

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"

	"lifeloop/internal/engine"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cfg, fs
}

func TestEngineConfigFromFlags(t *testing.T) {
	cfg, fs := parse(t, "-w", "40", "-rules", "highlife", "-mode", "stamp", "-seed", "9")
	ec, err := cfg.EngineConfig(fs)
	if err != nil {
		t.Fatalf("engine config: %v", err)
	}
	if ec.Width != 40 || ec.Height != 120 || ec.Rules != "highlife" || ec.Mode != engine.Stamp || ec.Seed != 9 {
		t.Fatalf("unexpected config %+v", ec)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("width: 70\nheight: 50\ntps: 12\nrules: /2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, fs := parse(t, "-config", path, "-tps", "5")
	ec, err := cfg.EngineConfig(fs)
	if err != nil {
		t.Fatalf("engine config: %v", err)
	}
	if ec.Width != 70 || ec.Height != 50 || ec.Rules != "/2" {
		t.Fatalf("file values lost: %+v", ec)
	}
	if ec.TPS != 5 {
		t.Fatalf("tps = %d, flag should win", ec.TPS)
	}
}

func TestEngineConfigRejectsBadValues(t *testing.T) {
	cfg, fs := parse(t, "-mode", "sideways")
	if _, err := cfg.EngineConfig(fs); err == nil {
		t.Fatal("bad mode accepted")
	}
	cfg, fs = parse(t, "-seed", "4294967296")
	if _, err := cfg.EngineConfig(fs); err == nil {
		t.Fatal("seed past 32 bits accepted")
	}
	cfg, fs = parse(t, "-seed", "4294967295")
	if ec, err := cfg.EngineConfig(fs); err != nil || ec.Seed != math.MaxUint32 {
		t.Fatalf("max seed: %+v, %v", ec, err)
	}
	cfg, fs = parse(t, "-scale", "0")
	if _, err := cfg.EngineConfig(fs); err == nil {
		t.Fatal("zero scale accepted")
	}
}
