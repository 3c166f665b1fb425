package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/xagcl/internal/config"
	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/internal/mock"
	"github.com/MKhiriev/xagcl/internal/service"
	"github.com/MKhiriev/xagcl/internal/tui"
	"github.com/MKhiriev/xagcl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

type testApp struct {
	app    *App
	svc    *mock.MockAcquisitionService
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestApp(t *testing.T, selection models.Selection) testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAcquisitionService(ctrl)

	var out, errOut bytes.Buffer
	cfg := &config.ClientConfig{Selection: selection}

	app, err := NewApp(&service.ClientServices{Acquisition: svc}, tui.New(&out, &errOut), cfg, logger.Nop())
	require.NoError(t, err)

	return testApp{app: app, svc: svc, out: &out, errOut: &errOut}
}

var (
	standard = models.Selection{Type: models.AccountTypeStandard}
	stock    = models.StockSnapshot{Total: 10, Plus: 3, Normal: 7}
	account  = models.GeneratedAccount{Email: "a@b.com", Password: "p", Username: "u", Type: models.AccountTypeStandard}
)

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, tui.New(&bytes.Buffer{}, &bytes.Buffer{}), &config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	services := &service.ClientServices{Acquisition: mock.NewMockAcquisitionService(ctrl)}
	_, err = NewApp(services, nil, &config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_ClipboardOnlyWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.ClientServices{Acquisition: mock.NewMockAcquisitionService(ctrl)}
	view := tui.New(&bytes.Buffer{}, &bytes.Buffer{})

	off, err := NewApp(services, view, &config.ClientConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, off.clipboard)

	on, err := NewApp(services, view, &config.ClientConfig{App: config.ClientApp{CopyPassword: true}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, on.clipboard)
}

func TestRun_Success(t *testing.T) {
	ta := newTestApp(t, standard)
	ctx := context.Background()

	gomock.InOrder(
		ta.svc.EXPECT().Authorize(ctx).Return(nil),
		ta.svc.EXPECT().Stock(ctx).Return(stock, nil),
		ta.svc.EXPECT().Generate(ctx, standard).Return(models.NewGenerated(account), nil),
		ta.svc.EXPECT().Save(account).Return(nil),
	)

	require.NoError(t, ta.app.Run(ctx))

	assert.Contains(t, ta.out.String(), "✔  Account created!")
	assert.Contains(t, ta.out.String(), "Email: a@b.com")
	assert.Contains(t, ta.out.String(), "Press ctrl+c to exit")
	assert.Empty(t, ta.errOut.String())
	assert.Equal(t, []State{
		StateInit, StateTokenLoaded, StateStockFetched, StateGenerationRequested,
		StateSucceeded, StateIdling, StateExit,
	}, ta.app.States())
}

func TestRun_Rejected(t *testing.T) {
	ta := newTestApp(t, standard)

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(stock, nil)
	ta.svc.EXPECT().Generate(gomock.Any(), standard).Return(models.NewRejected("out of stock"), nil)
	// Save must not be called.

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.errOut.String(), "✘ Failed to generate an account: out of stock")
	assert.NotContains(t, ta.out.String(), "Account created")
	assert.Equal(t, []State{
		StateInit, StateTokenLoaded, StateStockFetched, StateGenerationRequested,
		StateFailed, StateIdling, StateExit,
	}, ta.app.States())
}

func TestRun_ConfigErrorIsFatal(t *testing.T) {
	ta := newTestApp(t, standard)

	cfgErr := fmt.Errorf("%w: %w", service.ErrConfig, config.ErrTokenMissing)
	ta.svc.EXPECT().Authorize(gomock.Any()).Return(cfgErr)
	// No Stock or Generate calls: nothing reaches the network.

	err := ta.app.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrTokenMissing)
	assert.Contains(t, ta.errOut.String(), "you need to put your token in config.json")
	assert.NotContains(t, ta.out.String(), "Press ctrl+c")
	assert.Equal(t, []State{StateInit}, ta.app.States())
}

func TestRun_StockFailureSkipsGeneration(t *testing.T) {
	ta := newTestApp(t, standard)

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(models.StockSnapshot{}, fmt.Errorf("%w: connection refused", service.ErrNetwork))

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.errOut.String(), "✘ Error: network error: connection refused")
	assert.NotContains(t, ta.out.String(), "? Settings")
	assert.Equal(t, []State{StateInit, StateTokenLoaded, StateFailed, StateIdling, StateExit}, ta.app.States())
}

func TestRun_GenerateError(t *testing.T) {
	ta := newTestApp(t, standard)

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(stock, nil)
	ta.svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.GenerationResult{}, fmt.Errorf("%w: unexpected end of JSON input", service.ErrParse))

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.errOut.String(), "✘ Error: parse error")
	assert.Contains(t, ta.out.String(), "? Stock:")
	assert.Equal(t, StateFailed, ta.app.States()[4])
}

func TestRun_UsesSelection(t *testing.T) {
	selection := models.Selection{Type: models.AccountTypeOnDemand, TestMode: true}
	ta := newTestApp(t, selection)

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(stock, nil)
	ta.svc.EXPECT().Generate(gomock.Any(), selection).Return(models.NewRejected("no"), nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.out.String(), "Account type: xbox_demand")
	assert.Contains(t, ta.out.String(), "Test mode: true")
}

func TestRun_SaveFailureIsWarning(t *testing.T) {
	ta := newTestApp(t, standard)

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(stock, nil)
	ta.svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.NewGenerated(account), nil)
	ta.svc.EXPECT().Save(account).Return(fmt.Errorf("%w: permission denied", service.ErrPersist))

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.out.String(), "✔  Account created!")
	assert.Contains(t, ta.errOut.String(), "⚠ Could not save the account")
	assert.NotContains(t, ta.errOut.String(), "✘")
	assert.Contains(t, ta.app.States(), StateSucceeded)
}

func TestRun_CopiesPassword(t *testing.T) {
	ta := newTestApp(t, standard)
	cb := &fakeClipboard{}
	ta.app.clipboard = cb

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(stock, nil)
	ta.svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.NewGenerated(account), nil)
	ta.svc.EXPECT().Save(account).Return(nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, "p", cb.text)
	assert.Contains(t, ta.out.String(), "Password copied to clipboard")
}

func TestRun_ClipboardFailureIsWarning(t *testing.T) {
	ta := newTestApp(t, standard)
	ta.app.clipboard = &fakeClipboard{err: errors.New("no clipboard utilities available")}

	ta.svc.EXPECT().Authorize(gomock.Any()).Return(nil)
	ta.svc.EXPECT().Stock(gomock.Any()).Return(stock, nil)
	ta.svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.NewGenerated(account), nil)
	ta.svc.EXPECT().Save(account).Return(nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.errOut.String(), "⚠ Could not copy the password: no clipboard utilities available")
}

// ── idle ─────────────────────────────────────────────────────────────────────

func TestIdle_WaitsForTimeout(t *testing.T) {
	ta := newTestApp(t, standard)
	ta.app.idleTimeout = 50 * time.Millisecond

	started := time.Now()
	ta.app.idle(context.Background())

	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
	assert.Equal(t, []State{StateIdling}, ta.app.States())
}

func TestIdle_InterruptReturnsImmediately(t *testing.T) {
	ta := newTestApp(t, standard)
	ta.app.idleTimeout = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	done := make(chan struct{})
	go func() {
		ta.app.idle(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("idle did not return after cancellation")
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "token_loaded", StateTokenLoaded.String())
	assert.Equal(t, "exit", StateExit.String())
	assert.Equal(t, "unknown", State(99).String())
}
