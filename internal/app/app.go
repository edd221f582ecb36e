package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/auth"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/orderlog"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type outbound struct {
	storage port.SnapshotStorage
	sqlDB   *storage.SQLDB
	placer  port.OrderPlacerCloser
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	outbound   outbound
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, config config.Config) *App {
	app := &App{ctx: ctx, cfg: config}

	app.initLogger()
	app.initStorage()
	app.initOrderPlacer()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	switch app.cfg.Storage.Driver {
	case config.StorageMemory:
		app.outbound.storage = storage.NewMemoryStorage()
	case config.StorageSQL:
		db, err := storage.NewSQLDB(app.ctx, app.cfg.Storage.SQLDB)
		if err != nil {
			app.fallDown(op, err)
		}
		app.outbound.sqlDB = &db
		app.outbound.storage = storage.NewSQLStorage(db)
	default:
		s, err := storage.NewDirStorage(app.cfg.Storage.Dir)
		if err != nil {
			app.fallDown(op, err)
		}
		app.outbound.storage = s
	}

	slog.Info("snapshot storage is ready", "op", op, "driver", app.cfg.Storage.Driver)
}

func (app *App) initOrderPlacer() {
	const op = "App.initOrderPlacer"

	if !app.cfg.Broker.Enabled() {
		slog.Warn("no seed brokers configured, orders are only logged", "op", op)
		app.outbound.placer = orderlog.New(slog.Default())
		return
	}

	srOpts := []sr.ClientOpt{sr.URLs(app.cfg.Broker.SchemaRegistryURLs...)}
	if tlsFiles := app.cfg.Broker.TLS; tlsFiles.Enabled() {
		tlsCfg, err := adapter.LoadTLSConfig(tlsFiles.CA, tlsFiles.Cert, tlsFiles.Key)
		if err != nil {
			app.fallDown(op, err)
		}
		srOpts = append(srOpts, sr.DialTLSConfig(tlsCfg))
	}

	srClient, err := sr.NewClient(srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	orderSerde, err := schema.NewSerdeOrderV1(
		app.ctx,
		schema.SubjectOpt(schema.ValueSubject(app.cfg.Broker.Topics.Orders)),
		schema.SchemaIdentifierOpt(schema.NewRegistryIdentifier(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	emitter, err := kafka.NewOrdersEmitter(kafka.OrdersEmitterConfig{
		SeedBrokers: app.cfg.Broker.SeedBrokers,
		Topic:       app.cfg.Broker.Topics.Orders,
		Serde:       orderSerde,
	})
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.placer = emitter
}

func (app *App) initCoreService() {
	app.service = service.New(
		catalog.Default(),
		app.outbound.storage,
		auth.New(auth.WithCost(app.cfg.Auth.BcryptCost)),
		app.outbound.placer,
	)
}

func (app *App) initInboundAdapters() {
	handler := httphandler.NewRouter(app.service, httphandler.SessionConfig{
		CookieName: app.cfg.Session.CookieName,
		MaxAge:     app.cfg.Session.MaxAge,
		Secure:     app.cfg.Session.Secure,
	})
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, handler, app.cfg.RequestTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.evictIdleSessions()

	slog.Info("application is running")
}

func (app *App) evictIdleSessions() {
	ttl := app.cfg.Session.IdleTTL
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-app.ctx.Done():
			return
		case <-ticker.C:
			app.service.EvictIdle(ttl)
		}
	}
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.placer.Close()
	if app.outbound.sqlDB != nil {
		app.outbound.sqlDB.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
