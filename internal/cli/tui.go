package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/pomodesk/internal/config"
	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/display"
	"github.com/sandeepkv93/pomodesk/internal/notify"
	"github.com/sandeepkv93/pomodesk/internal/quotes"
	"github.com/sandeepkv93/pomodesk/internal/scheduler"
	"github.com/sandeepkv93/pomodesk/internal/timer"
	"github.com/sandeepkv93/pomodesk/internal/update"
)

func runTUI(ctx context.Context, opts *options) error {
	loader, cfg, err := opts.loader()
	if err != nil {
		return err
	}
	stopDebug, err := startDebug(opts, cfg)
	if err != nil {
		return err
	}
	defer stopDebug()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	loop := scheduler.NewLoop(cfg.SchedulerBuffer)
	defer loop.Stop()

	dispatcher := notify.NewDispatcher(
		notify.BeeepSound{},
		notify.BeeepNotifier{},
		notify.LoadPermission(store),
		update.NotifyOptions(cfg),
	)
	engine := timer.New(loop, store,
		timer.WithCompleter(dispatcher),
		timer.WithTickInterval(cfg.TickInterval),
		timer.WithDefaults(timerDefaults(cfg)),
	)
	defer engine.Close()

	rotator := quotes.New(loop,
		quotes.WithInterval(cfg.QuoteInterval),
		quotes.WithFade(cfg.QuoteFade),
	)
	defer rotator.Stop()
	sync := display.NewSynchronizer(engine, store, rotator)
	defer sync.Close()

	model := update.NewModel(update.Deps{
		Engine:        engine,
		Sync:          sync,
		Rotator:       rotator,
		Dispatcher:    dispatcher,
		Store:         store,
		Fires:         loop.C(),
		AskPermission: cfg.Notifications,
	})
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	loader.Watch(func(c config.Config) {
		program.Send(update.ConfigChangedMsg{Config: c})
	})

	debug.Log("cli: starting tui (db=%s)", cfg.DBPath)
	_, err = program.Run()
	debug.Log("cli: tui exited, %d scheduler fires queued", loop.Fired())
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("pomodesk failed: %w", err)
	}
	return nil
}

// startDebug opens the debug log when the flag or the debug config key asks
// for it.
func startDebug(opts *options, cfg config.Config) (func(), error) {
	if !opts.debug && !cfg.Debug {
		return func() {}, nil
	}
	if err := debug.SetOutput(cfg.DebugLog); err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	return func() { _ = debug.Close() }, nil
}

func timerDefaults(cfg config.Config) timer.Settings {
	return timer.Settings{
		WorkMinutes:        cfg.Defaults.WorkMinutes,
		BreakMinutes:       cfg.Defaults.BreakMinutes,
		LongBreakMinutes:   cfg.Defaults.LongBreakMinutes,
		SessionsBeforeLong: cfg.Defaults.SessionsBeforeLong,
	}
}
