// Package app wires the areaselect components together and runs the
// terminal event loop.
package app

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/config"
	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/interaction"
	"github.com/dshills/areaselect/internal/logging"
	"github.com/dshills/areaselect/internal/renderer/backend"
	"github.com/dshills/areaselect/internal/selection"
	"github.com/dshills/areaselect/internal/store"
	"github.com/dshills/areaselect/internal/surface"
)

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Nil uses config.Default().
	Config *config.Config

	// ConfigPath enables live reload of the file when not empty.
	ConfigPath string

	// Backend is the display. Required.
	Backend backend.Backend

	// Override is applied to every reloaded configuration before it takes
	// effect, so command-line settings survive edits to the file.
	Override func(*config.Config)

	// Logger receives application logs.
	Logger zerolog.Logger
}

// Application owns every component and implements interaction.Coordinator.
type Application struct {
	opts    Options
	cfg     *config.Config
	logger  zerolog.Logger
	backend backend.Backend

	bus         event.Bus
	pub         *event.Publisher
	area        *surface.Area
	doc         *surface.Document
	keys        *store.KeyStore
	pointer     *store.PointerStore
	scroll      *store.ScrollStore
	selection   *selection.Set
	selector    *selection.Selector
	mover       *selection.Mover
	interaction *interaction.Interaction

	input  *mouseTranslator
	view   *view
	reload *reloader

	running atomic.Bool
}

// New creates an Application. No terminal state is touched until Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	mods, err := cfg.MultiSelectKeys()
	if err != nil {
		return nil, &InitError{Component: "keys", Err: err}
	}

	app := &Application{
		opts:    opts,
		cfg:     cfg,
		logger:  logging.Component(opts.Logger, "app"),
		backend: opts.Backend,
		input:   &mouseTranslator{},
	}

	busLog := logging.Component(opts.Logger, "bus")
	app.bus = event.NewBus(event.WithBusPanicHandler(func(ev any, sub event.Subscription, recovered any, stack []byte) {
		busLog.Error().
			Str("topic", sub.Topic().String()).
			Str("subscription", sub.ID()).
			Interface("panic", recovered).
			Bytes("stack", stack).
			Msg("handler panicked")
	}))
	app.pub = event.NewPublisher(app.bus, "app")

	app.area = surface.NewArea(areaBounds(cfg.Area))
	for _, el := range layoutElements(cfg.Area.Items, app.area.Bounds().W) {
		app.area.AddElement(el)
	}
	app.doc = surface.NewDocument(app.area)

	storeLog := store.WithLogger(logging.Component(opts.Logger, "store"))
	app.keys = store.NewKeyStore(mods)
	app.pointer = store.NewPointerStore(app.doc, app.bus, storeLog)
	app.scroll = store.NewScrollStore(app.area, app.bus, storeLog)

	selLog := logging.Component(opts.Logger, "selection")
	app.selection = selection.NewSet(app.bus, selLog)
	app.selector = selection.NewSelector(app.bus, app.area, app.selection, app.pointer, app.keys, selLog)
	app.mover = selection.NewMover(app.bus, app.selection, selLog)

	app.interaction = interaction.New(app.area, app.doc, app,
		interaction.WithStopForMove(cfg.Interaction.StopForMove),
		interaction.WithLogger(logging.Component(opts.Logger, "interaction")),
	)

	app.view = newView(app)
	return app, nil
}

// Bus returns the event bus.
func (app *Application) Bus() event.Bus { return app.bus }

// Keys returns the key-modifier store.
func (app *Application) Keys() interaction.KeyModifiers { return app.keys }

// Selection returns the selected set.
func (app *Application) Selection() interaction.Membership { return app.selection }

// Run initializes the backend and processes events until the user quits,
// ctx is cancelled or Shutdown is called.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.start(ctx); err != nil {
		return err
	}
	defer app.stop()

	stopAfter := context.AfterFunc(ctx, app.Shutdown)
	defer stopAfter()

	for {
		ev := app.backend.PollEvent()
		if err := app.HandleEvent(ctx, ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info().Msg("quit")
				return nil
			}
			return err
		}
		app.view.render()
	}
}

// Shutdown asks a running event loop to exit. It is safe to call from any
// goroutine.
func (app *Application) Shutdown() {
	app.backend.PostInterrupt(quitRequest{})
}

func (app *Application) start(ctx context.Context) error {
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.backend.EnableMouse()

	if app.opts.ConfigPath != "" {
		r, err := startReloader(app.opts.ConfigPath, app.backend, app.logger)
		if err != nil {
			// Live reload is optional.
			app.logger.Warn().Err(err).Str("path", app.opts.ConfigPath).Msg("config watch disabled")
		} else {
			app.reload = r
		}
	}

	app.scroll.Init()
	app.interaction.Init(ctx)
	app.logger.Info().
		Int("items", len(app.area.Elements())).
		Bool("stop_for_move", app.cfg.Interaction.StopForMove).
		Msg("started")
	app.view.render()
	return nil
}

func (app *Application) stop() {
	if app.reload != nil {
		app.reload.close()
		app.reload = nil
	}
	app.interaction.Stop()
	app.scroll.Stop()
	app.backend.DisableMouse()
	app.backend.Shutdown()
}

// HandleEvent processes one backend event. It returns ErrQuit when the
// application should exit.
func (app *Application) HandleEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		for _, pe := range app.input.translate(ev) {
			app.doc.Dispatch(pe)
		}
		return nil
	case backend.EventResize:
		app.backend.Clear()
		return nil
	case backend.EventInterrupt:
		return app.handleInterrupt(ctx, ev.Data)
	default:
		return nil
	}
}

func (app *Application) handleKey(ev backend.Event) error {
	switch {
	case ev.Key == backend.KeyEscape, ev.Key == backend.KeyCtrlC:
		return ErrQuit
	case ev.Key == backend.KeyRune && (ev.Rune == 'q' || ev.Rune == 'Q'):
		return ErrQuit
	case ev.Key == backend.KeyRune && ev.Rune == 'a':
		for _, el := range app.area.Elements() {
			app.selection.Add(context.Background(), el)
		}
	case ev.Key == backend.KeyUp:
		app.scroll.ScrollBy(context.Background(), nil, pointerDelta(0, -1))
	case ev.Key == backend.KeyDown:
		app.scroll.ScrollBy(context.Background(), nil, pointerDelta(0, 1))
	}
	return nil
}

func (app *Application) handleInterrupt(ctx context.Context, data any) error {
	switch msg := data.(type) {
	case quitRequest:
		return ErrQuit
	case reloadResult:
		if msg.err != nil {
			app.logger.Warn().Err(msg.err).Msg("config reload failed")
			return nil
		}
		if app.opts.Override != nil {
			app.opts.Override(msg.cfg)
		}
		app.applyConfig(ctx, msg.path, msg.cfg)
	}
	return nil
}

// applyConfig applies the settings that can change while running.
func (app *Application) applyConfig(ctx context.Context, path string, cfg *config.Config) {
	mods, err := cfg.MultiSelectKeys()
	if err != nil {
		app.logger.Warn().Err(err).Msg("config reload rejected")
		return
	}
	app.cfg.Interaction = cfg.Interaction
	app.cfg.Keys = cfg.Keys
	app.keys.SetMultiSelectKeys(mods)
	app.interaction.SetStopForMove(cfg.Interaction.StopForMove)

	app.logger.Info().
		Str("path", path).
		Bool("stop_for_move", cfg.Interaction.StopForMove).
		Stringer("multi_select", app.keys.MultiSelectKeys()).
		Msg("config reloaded")
	err = event.Emit(ctx, app.pub, events.ConfigReloadedKey, events.ConfigReloaded{
		Path:        path,
		StopForMove: cfg.Interaction.StopForMove,
		MultiSelect: app.keys.MultiSelectKeys(),
	})
	if err != nil {
		app.logger.Error().Err(err).Msg("publish config reload")
	}
}

type quitRequest struct{}
