// Example opens a window and draws one triangle through glcore.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Shaders are read from example/shaders unless -config, -vert or -frag say
// otherwise. Press F5 to rebuild the program from disk, Escape to quit.
// With watch = true in the config the program is rebuilt on every save.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/glcore"
	"github.com/go-theft-auto/glcore/backend/opengl"
	"github.com/go-theft-auto/glcore/config"
	"github.com/go-theft-auto/glcore/shaderwatch"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file")
	vertPath := flag.String("vert", "", "vertex shader path (overrides config)")
	fragPath := flag.String("frag", "", "fragment shader path (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *vertPath != "" {
		cfg.Shaders.Vertex = *vertPath
	}
	if *fragPath != "" {
		cfg.Shaders.Fragment = *fragPath
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glcore.SetLogger(log)

	window, err := opengl.OpenWindow(windowConfig(cfg.Window))
	if err != nil {
		return err
	}
	defer window.Close()

	src, err := glcore.LoadShaderSources(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	scene, err := glcore.NewScene(window.Driver(), glcore.TriangleVertices, src,
		glcore.WithClearColor(cfg.ClearColor()))
	if err != nil {
		return err
	}
	defer scene.Delete()

	opts := []glcore.RunOption{
		glcore.WithReloadFunc(func() (glcore.ShaderSources, error) {
			return glcore.LoadShaderSources(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		}),
	}
	if cfg.Shaders.Watch {
		w, err := shaderwatch.New(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			return err
		}
		defer w.Close()
		opts = append(opts, glcore.WithReloadChannel(w.Reloads()))
	}

	return glcore.Run(window, scene, opts...)
}

// loadConfig reads path, or falls back to the defaults with shader paths
// next to this example.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	cfg.Shaders.Vertex = filepath.Join("example", cfg.Shaders.Vertex)
	cfg.Shaders.Fragment = filepath.Join("example", cfg.Shaders.Fragment)
	return cfg, nil
}

func windowConfig(w config.Window) opengl.WindowConfig {
	return opengl.WindowConfig{
		Title:             w.Title,
		Width:             w.Width,
		Height:            w.Height,
		Major:             w.GLMajor,
		Minor:             w.GLMinor,
		ForwardCompatible: w.ForwardCompatible,
		Debug:             w.Debug,
		VSync:             w.VSync,
	}
}
