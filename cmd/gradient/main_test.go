package main

import (
	"flag"
	"io"
	"testing"

	"github.com/go-theft-auto/glworks/internal/config"
)

func TestRegisterFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	sf := registerFlags(fs)

	if _, err := config.Parse(fs, nil, config.Default("Gradient")); err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if sf.bpp != 32 {
		t.Errorf("Expected 32 bpp by default, got %d", sf.bpp)
	}
	if sf.width != 640 || sf.height != 480 {
		t.Errorf("Expected 640x480 surface, got %dx%d", sf.width, sf.height)
	}
	if sf.out != "" {
		t.Errorf("Expected no output path, got %q", sf.out)
	}
}

func TestRegisterFlagsOverride(t *testing.T) {
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	sf := registerFlags(fs)

	args := []string{"-bpp", "16", "-dib-width", "320", "-out", "g.png"}
	if _, err := config.Parse(fs, args, config.Default("Gradient")); err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if sf.bpp != 16 || sf.width != 320 || sf.height != 480 || sf.out != "g.png" {
		t.Errorf("Unexpected flags %+v", *sf)
	}
}
