package cli

import (
	"bufio"
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/avoganov/ancora/internal/client/config"
	"github.com/avoganov/ancora/internal/client/remote"
	"github.com/avoganov/ancora/internal/client/services"
	"github.com/avoganov/ancora/internal/client/session"
	"github.com/avoganov/ancora/internal/client/store"
	syncx "github.com/avoganov/ancora/internal/client/sync"
	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/logging"
	"github.com/avoganov/ancora/internal/timex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
	// ModeDisabled means no identity is configured; everything stays local.
	ModeDisabled Mode = "disabled"
)

type App struct {
	config *config.Config
	store  *store.Store
	remote *remote.GRPCRemote
	engine *syncx.Engine

	exposures services.ExposureService
	sessions  services.SessionService
	streaks   services.StreakService
	settings  services.SettingsService
	checkins  services.CheckInService
	urges     services.UrgeService
	export    services.ExportService
	completer *session.Completer

	clock  timex.Clock
	logger logging.Logger
	reader *bufio.Reader
	Mode   Mode
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NopLogger{}
	clock := timex.SystemClock{}

	st, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	rem, err := remote.New(c.ServerEndpointAddr, logger)
	if err != nil {
		return nil, err
	}
	rem.SetAccessToken(c.AccessToken)

	tables := []syncx.Table{
		st.Exposures, st.Sessions, st.Streaks, st.Settings, st.CheckIns, st.Urges,
	}
	engine := syncx.NewEngine(rem, tables, logger)

	sessionSvc := services.NewSessionService(st.Sessions, clock)
	checkinSvc := services.NewCheckInService(st.CheckIns, clock)
	streakSvc := services.NewStreakService(st.Streaks, clock)

	app := &App{
		config:    c,
		store:     st,
		remote:    rem,
		engine:    engine,
		exposures: services.NewExposureService(st.Exposures, engine, clock),
		sessions:  sessionSvc,
		streaks:   streakSvc,
		settings:  services.NewSettingsService(st.Settings, clock),
		checkins:  checkinSvc,
		urges:     services.NewUrgeService(st.Urges, clock),
		export: services.NewExportService(
			st.Exposures, st.Sessions, st.Streaks, st.Settings, st.CheckIns, st.Urges, clock,
		),
		completer: session.NewCompleter(sessionSvc, checkinSvc, streakSvc, st.Exposures, clock),
		clock:     clock,
		logger:    logger,
		reader:    bufio.NewReader(os.Stdin),
		Mode:      ModeOffline,
	}

	if c.UserID == "" {
		app.Mode = ModeDisabled
	}

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		a.engine.Stop()
		_ = a.remote.Close()
		_ = a.store.Close()
	}()
	a.Root(ctx)
}

// StartOnlineStatusWatcher probes the server on an interval and starts or
// stops the sync engine as connectivity comes and goes. It does nothing
// when no identity is configured.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	if a.Mode == ModeDisabled {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.remote.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.engine.Stop()
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					if err := a.engine.Start(ctx, a.config.UserID); err != nil &&
						!errors.Is(err, common.ErrEngineRunning) {
						log.Printf("sync start failed: %s\n", err.Error())
						continue
					}
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
