// Package config loads the settings for the triangle example from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/glcore"
)

// Config is the full example configuration.
type Config struct {
	LogLevel string  `toml:"log_level"`
	Window   Window  `toml:"window"`
	Shaders  Shaders `toml:"shaders"`
	Render   Render  `toml:"render"`
}

// Window holds the window and context settings.
type Window struct {
	Title             string `toml:"title"`
	Width             int    `toml:"width"`
	Height            int    `toml:"height"`
	GLMajor           int    `toml:"gl_major"`
	GLMinor           int    `toml:"gl_minor"`
	ForwardCompatible bool   `toml:"forward_compatible"`
	Debug             bool   `toml:"debug"`
	VSync             bool   `toml:"vsync"`
}

// Shaders holds the shader source paths.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// Watch rebuilds the program whenever either file changes.
	Watch bool `toml:"watch"`
}

// Render holds drawing settings.
type Render struct {
	ClearColor [4]float32 `toml:"clear_color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	c := glcore.DefaultClearColor
	return Config{
		LogLevel: "info",
		Window: Window{
			Title:             "Hello Window",
			Width:             800,
			Height:            600,
			GLMajor:           4,
			GLMinor:           1,
			ForwardCompatible: runtime.GOOS == "darwin",
			VSync:             true,
		},
		Shaders: Shaders{
			Vertex:   filepath.Join("shaders", "vert_shader.glsl"),
			Fragment: filepath.Join("shaders", "frag_shader.glsl"),
		},
		Render: Render{ClearColor: [4]float32{c.R, c.G, c.B, c.A}},
	}
}

// Load reads the file at path over Default. Unknown keys are rejected.
// Shader paths have ~ expanded and are resolved against the file's
// directory.
func Load(path string) (Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config path: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.resolvePaths(filepath.Dir(path)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads TOML from r over Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("decode config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) error {
	for _, p := range []*string{&c.Shaders.Vertex, &c.Shaders.Fragment} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("shader path %q: %w", *p, err)
		}
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(base, expanded)
		}
		*p = expanded
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		return fmt.Errorf("gl version %d.%d below 3.3", c.Window.GLMajor, c.Window.GLMinor)
	}
	if c.Shaders.Vertex == "" {
		return errors.New("shaders.vertex is empty")
	}
	if c.Shaders.Fragment == "" {
		return errors.New("shaders.fragment is empty")
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("render.clear_color[%d] = %v outside [0, 1]", i, v)
		}
	}
	return nil
}

// ClearColor returns the background color.
func (c Config) ClearColor() glcore.Color {
	v := c.Render.ClearColor
	return glcore.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// ParseLevel converts a level name (debug, info, warn, error) to a
// slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
