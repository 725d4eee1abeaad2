// Command gen renders the triangle in a few configurations, captures
// framebuffer pixels, and saves JPEG screenshots and thumbnails to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/glcore"
	"github.com/go-theft-auto/glcore/backend/opengl"
)

const thumbWidth = 200

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	src    glcore.ShaderSources
	opts   []glcore.SceneOption
	reload *glcore.ShaderSources // rebuilt before capture when set
	frames int                   // frames to render (0 = default 2)
}

func run() error {
	cfg := opengl.DefaultWindowConfig()
	cfg.Title = "screenshot-gen"
	cfg.Hidden = true
	cfg.VSync = false

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	// Paths are relative to the repository root.
	shots, err := buildScreenshots(".")
	if err != nil {
		return err
	}
	for _, s := range shots {
		w, h, err := capture(window, s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, w, h)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(window *opengl.Window, s screenshot, outDir string) (int, int, error) {
	// Fresh scene per screenshot to avoid state leaking between captures.
	scene, err := glcore.NewScene(window.Driver(), glcore.TriangleVertices, s.src, s.opts...)
	if err != nil {
		return 0, 0, err
	}
	defer scene.Delete()

	if s.reload != nil {
		if err := scene.Reload(*s.reload); err != nil {
			return 0, 0, err
		}
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	if err := glcore.Run(window, scene, glcore.WithFrameLimit(frames)); err != nil {
		return 0, 0, err
	}

	// The front buffer holds the last frame after the swap; draw once more
	// into the back buffer to read it.
	scene.Draw()
	width, height := window.FramebufferSize()
	img := opengl.ReadPixels(width, height)

	if err := writeJPEG(filepath.Join(outDir, s.name+".jpg"), img); err != nil {
		return 0, 0, err
	}
	if err := writeJPEG(filepath.Join(outDir, s.name+"_thumb.jpg"), thumbnail(img, thumbWidth)); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// thumbnail scales img to width, keeping the aspect ratio.
func thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all screenshots to generate, with
// shader sources read from under root.
func buildScreenshots(root string) ([]screenshot, error) {
	base, err := glcore.LoadShaderSources(
		filepath.Join(root, "example", "shaders", "vert_shader.glsl"),
		filepath.Join(root, "example", "shaders", "frag_shader.glsl"),
	)
	if err != nil {
		return nil, err
	}
	varying, err := glcore.LoadShaderSources(
		filepath.Join(root, "doc", "gen", "shaders", "varying_vert.glsl"),
		filepath.Join(root, "doc", "gen", "shaders", "varying_frag.glsl"),
	)
	if err != nil {
		return nil, err
	}
	return []screenshot{
		{name: "triangle", src: base},
		{
			name: "triangle_dark",
			src:  base,
			opts: []glcore.SceneOption{glcore.WithClearColor(glcore.Color{R: 0.05, G: 0.05, B: 0.08, A: 1})},
		},
		{name: "triangle_reloaded", src: base, reload: &varying},
	}, nil
}
