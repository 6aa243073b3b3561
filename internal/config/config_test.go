package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultScene, cfg.Scene.Name)
	assert.Equal(t, int64(DefaultSeed), cfg.Scene.Seed)
	assert.NotNil(t, cfg.Scene.Params)
	assert.NoError(t, cfg.Validate())
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		err     error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "no config file found - uses default",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "valid config file",
			content: ptr(`logging:
  level: debug
  format: json
window:
  width: 320
  height: 240
scene:
  name: rings
  seed: 7
  max_delta_ms: 100
  params:
    dots_per_ring: 24
    ring_step: 0.002
    bidirectional: false
`),
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, 320, cfg.Window.Width)
				assert.Equal(t, DefaultTPS, cfg.Window.TPS)
				assert.Equal(t, "rings", cfg.Scene.Name)
				assert.Equal(t, int64(7), cfg.Scene.Seed)
				assert.Equal(t, 100, cfg.Scene.MaxDeltaMs)
				assert.Equal(t, "24", cfg.Scene.Params["dots_per_ring"])
				assert.Equal(t, "0.002", cfg.Scene.Params["ring_step"])
				assert.Contains(t, []string{"false", "0"}, cfg.Scene.Params["bidirectional"])
			},
		},
		{
			name:    "invalid yaml",
			content: ptr("scene: [unterminated\n"),
			err:     ErrFailedToParseConfig,
		},
		{
			name:    "invalid structure for unmarshal",
			content: ptr("window: \"not a map\"\n"),
			err:     ErrFailedToParseConfig,
		},
		{
			name:    "fails validation",
			content: ptr("window:\n  width: -5\n"),
			err:     ErrInvalidConfig,
		},
		{
			name:    "unsupported log format",
			content: ptr("logging:\n  format: xml\n"),
			err:     ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFile)
			if tt.content != nil {
				path = writeFile(t, *tt.content)
			}

			cfg, err := Load(path)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_Load_Unreadable(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrFailedToReadConfig)
}

func Test_ApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.ApplyOverrides([]string{"Count=30", " base_speed = 0.5 "}))
	assert.Equal(t, "30", cfg.Scene.Params["count"])
	assert.Equal(t, "0.5", cfg.Scene.Params["base_speed"])

	assert.ErrorIs(t, cfg.ApplyOverrides([]string{"novalue"}), ErrInvalidOverride)
	assert.ErrorIs(t, cfg.ApplyOverrides([]string{"=3"}), ErrInvalidOverride)
}

func Test_SceneOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene.Params["w"] = "100"

	opts := cfg.SceneOptions()
	assert.Equal(t, "100", opts["w"])
	assert.Equal(t, "800", opts["h"])
	assert.Equal(t, "1500", opts["seed"])

	opts["extra"] = "1"
	_, leaked := cfg.Scene.Params["extra"]
	assert.False(t, leaked, "SceneOptions must return a copy")

	cfg.Scene.Seed = 0
	_, ok := cfg.SceneOptions()["seed"]
	assert.False(t, ok)
}

func Test_MarshalLoadsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene.Name = "figures"
	cfg.Scene.Params["count"] = "9"

	data, err := cfg.Marshal()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "scene")

	loaded, err := Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func Test_Watch(t *testing.T) {
	path := writeFile(t, "scene:\n  name: orbit\n")

	errs := make(chan error, 8)
	updates, err := Watch(path, func(err error) { errs <- err })
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("scene:\n  name: rings\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-updates:
			if cfg.Scene.Name == "rings" {
				return
			}
		case <-deadline:
			t.Fatal("expected reloaded config after write")
		}
	}
}

func Test_Watch_MissingFile(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.ErrorIs(t, err, ErrFailedToReadConfig)
}

func ptr(s string) *string { return &s }
