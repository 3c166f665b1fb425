package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/xagcl/internal/config"
	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/internal/service"
	"github.com/MKhiriev/xagcl/internal/tui"
	"github.com/MKhiriev/xagcl/models"
)

// App runs one acquisition per process.
type App struct {
	acquisition service.AcquisitionService
	view        *tui.View
	clipboard   Clipboard

	selection   models.Selection
	idleTimeout time.Duration

	states []State
	logger *logger.Logger
}

// NewApp wires the services and the view. The clipboard is only used when
// cfg.App.CopyPassword is set.
func NewApp(services *service.ClientServices, view *tui.View, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || services.Acquisition == nil {
		return nil, errors.New("client app: acquisition service is required")
	}
	if view == nil {
		return nil, errors.New("client app: view is required")
	}

	app := &App{
		acquisition: services.Acquisition,
		view:        view,
		selection:   cfg.Selection,
		idleTimeout: cfg.Runtime.IdleTimeout,
		logger:      logger,
	}
	if cfg.App.CopyPassword {
		app.clipboard = systemClipboard{}
	}

	return app, nil
}

// Run implements [Client]. Only a configuration error is returned; every
// other failure is reported on the console, followed by the idle wait.
func (a *App) Run(ctx context.Context) error {
	a.transition(StateInit)

	if err := a.acquisition.Authorize(ctx); err != nil {
		a.view.Failure(err)
		a.logger.Error().Err(err).Msg("cannot start")
		return fmt.Errorf("authorize: %w", err)
	}
	a.transition(StateTokenLoaded)

	a.acquire(ctx)

	a.idle(ctx)
	a.transition(StateExit)
	return nil
}

func (a *App) acquire(ctx context.Context) {
	stock, err := a.acquisition.Stock(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	a.transition(StateStockFetched)

	a.view.Settings(a.selection)
	a.view.Stock(stock)

	a.transition(StateGenerationRequested)
	result, err := a.acquisition.Generate(ctx, a.selection)
	if err != nil {
		a.fail(err)
		return
	}

	a.renderResult(result)
}

// renderResult reports the outcome and persists a generated account.
func (a *App) renderResult(result models.GenerationResult) {
	if result.Rejected != nil {
		a.view.Rejection(*result.Rejected)
		a.transition(StateFailed)
		return
	}

	account := *result.Generated
	a.view.Account(account)
	a.transition(StateSucceeded)

	if err := a.acquisition.Save(account); err != nil {
		a.view.Warning("Could not save the account", err)
		a.logger.Warn().Err(err).Msg("account not persisted")
	}

	if a.clipboard != nil {
		if err := a.clipboard.WriteAll(account.Password); err != nil {
			a.view.Warning("Could not copy the password", err)
			a.logger.Warn().Err(err).Msg("clipboard write failed")
			return
		}
		a.view.Notice("Password copied to clipboard")
	}
}

func (a *App) fail(err error) {
	a.view.Failure(err)
	a.transition(StateFailed)
	a.logger.Error().Err(err).Msg("acquisition failed")
}

// idle holds the console open for idleTimeout or until ctx is cancelled.
func (a *App) idle(ctx context.Context) {
	a.transition(StateIdling)
	a.view.Pause()

	if a.idleTimeout <= 0 {
		return
	}

	timer := time.NewTimer(a.idleTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		a.logger.Debug().Msg("interrupted while idling")
	case <-timer.C:
	}
}

func (a *App) transition(next State) {
	a.states = append(a.states, next)
	a.logger.Debug().Stringer("state", next).Msg("state changed")
}

// States returns the sequence of states this run went through.
func (a *App) States() []State {
	return append([]State(nil), a.states...)
}
