package glcore

// EventKind is the closed set of events a Surface reports.
type EventKind int

const (
	// EventQuit asks the loop to stop.
	EventQuit EventKind = iota + 1
	// EventReload asks the loop to rebuild the shader program.
	EventReload
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Event is a window event.
type Event struct {
	Kind EventKind
}

// Surface is the window side of the render loop.
type Surface interface {
	// PollEvent returns the next pending event without blocking.
	// ok is false once no events are pending.
	PollEvent() (ev Event, ok bool)
	// SwapBuffers presents the frame just drawn.
	SwapBuffers()
}

// Run draws scene once per frame until the surface reports EventQuit or the
// frame limit is reached. Shader reload failures are logged and the loop
// keeps the previous program.
func Run(surface Surface, scene *Scene, opts ...RunOption) error {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	for frame := 0; o.frameLimit == 0 || frame < o.frameLimit; frame++ {
		for {
			ev, ok := surface.PollEvent()
			if !ok {
				break
			}
			switch ev.Kind {
			case EventQuit:
				Logger().Debug("quit event", "frames", frame)
				return nil
			case EventReload:
				if o.reloadFunc == nil {
					continue
				}
				src, err := o.reloadFunc()
				if err != nil {
					Logger().Warn("shader reload failed", "err", err)
					continue
				}
				reload(scene, src)
			}
		}

		if o.reloads != nil {
			select {
			case src, ok := <-o.reloads:
				if ok {
					reload(scene, src)
				} else {
					o.reloads = nil
				}
			default:
			}
		}

		scene.Draw()
		surface.SwapBuffers()
	}
	return nil
}

func reload(scene *Scene, src ShaderSources) {
	if err := scene.Reload(src); err != nil {
		Logger().Warn("shader reload failed", "err", err)
	}
}
