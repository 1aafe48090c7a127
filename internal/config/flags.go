package config

import "flag"

// Parse registers the common demo flags on fs, parses args, loads the
// -config file over base when one is given, and applies the flags.
// Demo-specific flags must be registered on fs before calling Parse.
func Parse(fs *flag.FlagSet, args []string, base Config) (Config, error) {
	configFile := fs.String("config", "", "Path to a JSON config file")
	width := fs.Int("width", 0, "Window width (default: config or 800)")
	height := fs.Int("height", 0, "Window height (default: config or 600)")
	spin := fs.Float64("spin", 0, "Spin speed in degrees per second (default: config or 90)")
	tex := fs.String("texture", "", "Texture image (.bmp, .tga, .png, .jpg, .webp)")
	snapshot := fs.String("snapshot", "", "Save the first frame to this file (.png, .bmp, .webp)")
	verbose := fs.Bool("v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := base
	if *configFile != "" {
		var err error
		cfg, err = Load(*configFile, base)
		if err != nil {
			return Config{}, err
		}
	}

	cfg.Resolve(Flags{
		Width:    *width,
		Height:   *height,
		Spin:     *spin,
		Texture:  *tex,
		Snapshot: *snapshot,
		Verbose:  *verbose,
	})
	return cfg, nil
}
