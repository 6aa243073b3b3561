package config

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultConfigFile = "orbitfx.yaml"

	Version = "0.3.0"
)

// window constants
const (
	DefaultWidth  = 480
	DefaultHeight = 800
	DefaultTPS    = 60
	DefaultTitle  = "orbitfx"
)

// scene constants
const (
	DefaultScene = "orbit"
	DefaultSeed  = 1500

	// DefaultMaxDeltaMs caps a single frame delta so a stalled host cannot
	// teleport figures along their orbits.
	DefaultMaxDeltaMs = 250
)
