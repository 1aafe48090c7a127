package config

import (
	"flag"
	"io"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil, Default("Quad"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Title != "Quad" || cfg.Width != 800 || cfg.Verbose {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestParseFlagsBeatFile(t *testing.T) {
	path := writeConfig(t, `{"width": 1024, "height": 768, "texture": "file.png"}`)

	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-width", "320", "-v"}, Default("Cube"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 320 {
		t.Errorf("Expected flag width, got %d", cfg.Width)
	}
	if cfg.Height != 768 {
		t.Errorf("Expected file height, got %d", cfg.Height)
	}
	if cfg.TexturePath != "file.png" {
		t.Errorf("Expected file texture, got %q", cfg.TexturePath)
	}
	if !cfg.Verbose {
		t.Error("Expected -v to enable verbose")
	}
}

func TestParseExtraFlags(t *testing.T) {
	fs := newFlagSet()
	bpp := fs.Int("bpp", 24, "")

	if _, err := Parse(fs, []string{"-bpp", "16"}, Default("Gradient")); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *bpp != 16 {
		t.Errorf("Expected demo flag parsed, got %d", *bpp)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(newFlagSet(), []string{"-nope"}, Default("x")); err == nil {
		t.Error("Expected error for unknown flag")
	}
	if _, err := Parse(newFlagSet(), []string{"-config", "/does/not/exist.json"}, Default("x")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
