// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cuboid   CuboidConfig   `yaml:"cuboid"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// CuboidConfig holds the demo shape's half-extents.
type CuboidConfig struct {
	HalfA    float32 `yaml:"half_a"`
	HalfB    float32 `yaml:"half_b"`
	HalfC    float32 `yaml:"half_c"`
	ShowAxis bool    `yaml:"show_axis"`
}

// CameraConfig holds camera placement and input tuning.
type CameraConfig struct {
	Origin          [3]float32 `yaml:"origin"`
	DragSensitivity float32    `yaml:"drag_sensitivity"`
	ZoomSensitivity float32    `yaml:"zoom_sensitivity"`
	MinZoom         float32    `yaml:"min_zoom"`
	MaxZoom         float32    `yaml:"max_zoom"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Cuboid: CuboidConfig{
			HalfA:    50,
			HalfB:    100,
			HalfC:    100,
			ShowAxis: false,
		},
		Camera: CameraConfig{
			Origin:          [3]float32{200, 150, 0},
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
			MinZoom:         0.2,
			MaxZoom:         5.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
