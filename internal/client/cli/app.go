package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/brewkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/config"
	"github.com/dmitrijs2005/brewkeeper/internal/client/guard"
	"github.com/dmitrijs2005/brewkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
	"github.com/dmitrijs2005/brewkeeper/internal/client/session"
	"github.com/dmitrijs2005/brewkeeper/internal/filex"
	"github.com/dmitrijs2005/brewkeeper/internal/logging"
	"github.com/dmitrijs2005/brewkeeper/internal/obs"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger

	auth      *services.AuthService
	recipes   *services.RecipeService
	equipment *services.EquipmentService
	admin     *services.AdminService

	guard      *guard.Guard
	adminGuard *guard.AdminGuard
	router     *routes.Recorder
	metrics    *obs.Metrics

	reader *bufio.Reader
	out    io.Writer

	modeMu sync.RWMutex
	mode   Mode

	closers []func() error
}

// NewApp opens the session backend and builds the API client and services
// for cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	repo, closeRepo, err := openSessionRepository(ctx, cfg)
	if err != nil {
		log.Error(ctx, "error opening session storage", "backend", cfg.SessionBackend, "error", err)
		return nil, err
	}
	store := session.NewStore(repo)

	metrics := obs.NewMetrics()
	if err := buildinfo.Register(metrics.Registry()); err != nil {
		_ = closeRepo()
		return nil, err
	}

	api, err := client.NewHTTPClient(cfg.APIBaseURL,
		client.WithTokenSource(store),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RequestsPerSecond, cfg.RequestBurst),
		client.WithTransport(metrics.InstrumentRoundTripper(http.DefaultTransport)),
		client.WithLogger(log),
	)
	if err != nil {
		_ = closeRepo()
		return nil, err
	}

	a := newApp(api, store, log)
	a.config = cfg
	a.metrics = metrics
	a.closers = append(a.closers, closeRepo)
	if s, ok := log.(interface{ Sync() error }); ok {
		a.closers = append(a.closers, s.Sync)
	}
	return a, nil
}

// newApp assembles services, guards and the router over api and store.
func newApp(api client.Client, store *session.Store, log logging.Logger) *App {
	auth := services.NewAuthService(api, store, log)
	router := &routes.Recorder{}
	g := guard.New(auth, router)

	return &App{
		log:        log,
		auth:       auth,
		recipes:    services.NewRecipeService(api, auth),
		equipment:  services.NewEquipmentService(api, auth),
		admin:      services.NewAdminService(api, auth),
		guard:      g,
		adminGuard: guard.NewAdmin(g, auth),
		router:     router,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

func openSessionRepository(ctx context.Context, cfg *config.Config) (metadata.Repository, func() error, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		rdb, err := metadata.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewRedisRepository(rdb, cfg.RedisKey), rdb.Close, nil
	case config.SessionBackendSQLite, "":
		path, err := filex.EnsureParentDir(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		db, err := client.InitDatabase(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewSQLiteRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// Run starts the optional metrics listener and the REPL, and releases the
// session storage when the REPL exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	if a.config != nil && a.config.MetricsAddr != "" && a.metrics != nil {
		go func() {
			if err := a.metrics.Serve(ctx, a.config.MetricsAddr); err != nil {
				a.log.Error(ctx, "metrics listener stopped", "error", err)
			}
		}()
	}

	a.Root(ctx)
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current().Authenticated()
}

func (a *App) isAdmin() bool {
	return a.auth.Current().IsAdmin
}

// StartOnlineStatusWatcher pings the API every interval and flips the mode
// between online and offline. It returns when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := a.auth.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
