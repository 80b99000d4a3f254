package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagShowAxis = flag.Bool("axis", false, "Draw the x-axis indicator segment")
	flagHalfA    = flag.Float64("a", 0, "Cuboid half-extent along x")
	flagHalfB    = flag.Float64("b", 0, "Cuboid half-extent along y")
	flagHalfC    = flag.Float64("c", 0, "Cuboid half-extent along z")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagShowAxis {
		cfg.Cuboid.ShowAxis = true
	}
	if *flagHalfA > 0 {
		cfg.Cuboid.HalfA = float32(*flagHalfA)
	}
	if *flagHalfB > 0 {
		cfg.Cuboid.HalfB = float32(*flagHalfB)
	}
	if *flagHalfC > 0 {
		cfg.Cuboid.HalfC = float32(*flagHalfC)
	}
}
