// Package shaderwatch reloads shader sources when their files change on
// disk.
//
// A Watcher only reads files. It never touches the GL context, so its
// output is meant to be fed to glcore.Run with glcore.WithReloadChannel,
// where the program is rebuilt on the render thread.
package shaderwatch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/go-theft-auto/glcore"
)

// Watcher publishes a fresh glcore.ShaderSources each time the vertex or
// fragment file is written, created or renamed into place.
type Watcher struct {
	vert, frag string

	fs      *fsnotify.Watcher
	reloads chan glcore.ShaderSources
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New starts watching the two shader files. Their parent directories are
// watched rather than the files themselves, so editors that save by
// renaming a temp file over the original are still seen.
func New(vertPath, fragPath string) (*Watcher, error) {
	vert, err := filepath.Abs(vertPath)
	if err != nil {
		return nil, fmt.Errorf("vertex path: %w", err)
	}
	frag, err := filepath.Abs(fragPath)
	if err != nil {
		return nil, fmt.Errorf("fragment path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, dir := range dirs(vert, frag) {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		vert:    vert,
		frag:    frag,
		fs:      fw,
		reloads: make(chan glcore.ShaderSources, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	glcore.Logger().Debug("watching shaders", "vertex", vert, "fragment", frag)
	return w, nil
}

// Reloads returns the channel of reloaded sources. Only the latest
// unconsumed value is kept. The channel is closed by Close.
func (w *Watcher) Reloads() <-chan glcore.ShaderSources { return w.reloads }

// Close stops the watcher and closes the Reloads channel. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.reloads)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.load(ev.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			glcore.Logger().Warn("shader watcher error", "err", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(ev.Name)
	return name == w.vert || name == w.frag
}

func (w *Watcher) load(changed string) {
	src, err := glcore.LoadShaderSources(w.vert, w.frag)
	if err != nil {
		// A save in progress can leave the file briefly missing. The
		// next write event retries.
		if errors.Is(err, glcore.ErrMissingSource) {
			glcore.Logger().Debug("shader source not ready", "path", changed, "err", err)
		} else {
			glcore.Logger().Warn("shader reload failed", "path", changed, "err", err)
		}
		return
	}
	glcore.Logger().Info("shader source changed", "path", changed)
	w.publish(src)
}

// publish replaces any pending value with src.
func (w *Watcher) publish(src glcore.ShaderSources) {
	for {
		select {
		case w.reloads <- src:
			return
		default:
		}
		select {
		case <-w.reloads:
		default:
		}
	}
}

func dirs(paths ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range paths {
		d := filepath.Dir(p)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
