package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glcore"
)

// WindowConfig holds the window and context settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int

	// Requested context version. The core profile is always used.
	Major, Minor int

	ForwardCompatible bool
	Debug             bool
	VSync             bool
	Hidden            bool
}

// DefaultWindowConfig returns an 800x600 vsynced 4.1 core window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:             "Hello Window",
		Width:             800,
		Height:            600,
		Major:             4,
		Minor:             1,
		ForwardCompatible: runtime.GOOS == "darwin",
		VSync:             true,
	}
}

// Window is a GLFW window with a current GL context. It implements
// glcore.Surface. Create, use and close it on the main thread.
type Window struct {
	window *glfw.Window
	events []glcore.Event
	quit   bool
}

var _ glcore.Surface = (*Window)(nil)

// OpenWindow initializes GLFW, creates the window, makes its context
// current and loads the GL function pointers through GLFW.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(cfg.ForwardCompatible))
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(cfg.Debug))
	glfw.WindowHint(glfw.Visible, glfwBool(!cfg.Hidden))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: window}
	window.SetKeyCallback(w.keyCallback)

	glcore.Logger().Info("context created",
		"version", Version(),
		"glsl", ShadingLanguageVersion(),
		"width", cfg.Width,
		"height", cfg.Height,
	)
	return w, nil
}

// Driver returns the driver for the window's context.
func (w *Window) Driver() glcore.Driver { return Driver{} }

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// PollEvent processes pending window events and returns the next one.
// Closing the window or pressing Escape yields glcore.EventQuit; F5 yields
// glcore.EventReload.
func (w *Window) PollEvent() (glcore.Event, bool) {
	if len(w.events) == 0 {
		glfw.PollEvents()
		if w.window.ShouldClose() && !w.quit {
			w.quit = true
			w.events = append(w.events, glcore.Event{Kind: glcore.EventQuit})
		}
	}
	if len(w.events) == 0 {
		return glcore.Event{}, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev, true
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		win.SetShouldClose(true)
	case glfw.KeyF5:
		w.events = append(w.events, glcore.Event{Kind: glcore.EventReload})
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
