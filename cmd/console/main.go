package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/auth"
	"github.com/Rohitwaghmare7/veltro-console/internal/boot"
	"github.com/Rohitwaghmare7/veltro-console/internal/config"
	"github.com/Rohitwaghmare7/veltro-console/internal/handlers"
	"github.com/Rohitwaghmare7/veltro-console/internal/localstate"
	"github.com/Rohitwaghmare7/veltro-console/internal/logger"
	"github.com/Rohitwaghmare7/veltro-console/internal/mediatoken"
	"github.com/Rohitwaghmare7/veltro-console/internal/oauthflow"
	"github.com/Rohitwaghmare7/veltro-console/internal/realtime"
	"github.com/Rohitwaghmare7/veltro-console/internal/server"
	"github.com/Rohitwaghmare7/veltro-console/internal/session"
	"github.com/Rohitwaghmare7/veltro-console/internal/version"
)

func provideConfig() (config.Config, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return logger.L
}

func provideAPIClient(log *slog.Logger, rt *boot.RuntimeConfig, sessions *session.Store) (*api.Client, error) {
	return api.NewClient(log, rt.APIBaseURL, rt.APITimeout, sessions)
}

func provideLocalState(log *slog.Logger, rt *boot.RuntimeConfig) (*localstate.Store, error) {
	return localstate.Open(log, rt.StatePath)
}

func provideMediaTokenService(log *slog.Logger, rt *boot.RuntimeConfig) *mediatoken.Service {
	return mediatoken.NewService(log, rt.MediaAPIKey, rt.MediaAPISecret, rt.MediaTokenTTL)
}

func provideOAuthFlow(log *slog.Logger, cfg config.Config, client *api.Client) *oauthflow.Service {
	return oauthflow.NewService(log, cfg.OAuth, client)
}

func provideRealtimeChannel(log *slog.Logger, rt *boot.RuntimeConfig, sessions *session.Store) *realtime.Channel {
	ch := realtime.NewChannel(log, rt.RealtimeURL, realtime.NewHub())
	sessions.OnClear(ch.Disconnect)
	return ch
}

func main() {
	fx.New(
		fx.Provide(
			provideConfig,
			boot.ProvideRuntimeConfig,
			provideLogger,

			session.NewStore,
			provideLocalState,
			provideAPIClient,

			auth.NewService,
			provideRealtimeChannel,
			provideMediaTokenService,
			provideOAuthFlow,

			provideServerHandler(handlers.NewHealthHandler),
			provideServerHandler(handlers.NewMediaTokenHandler),
			provideServerHandler(handlers.NewOAuthHandler),

			provideServer,
		),
		fx.Invoke(
			restoreSession,
			startServer,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
	).Run()
}

func provideServerHandler(fn any) any {
	return fx.Annotate(
		fn,
		fx.As(new(server.Handler)),
		fx.ResultTags(`group:"server_handlers"`),
	)
}

func provideServer(log *slog.Logger, rt *boot.RuntimeConfig, params serverParams) *server.Server {
	return server.NewServer(log, rt.ServerAddr, params.Handlers...)
}

type serverParams struct {
	fx.In
	Handlers []server.Handler `group:"server_handlers"`
}

func restoreSession(authService *auth.Service, logger *slog.Logger) {
	if authService.Restore() {
		logger.Info("cached session restored")
	}
}

func startServer(
	lc fx.Lifecycle,
	logger *slog.Logger,
	srv *server.Server,
	shutdowner fx.Shutdowner,
	channel *realtime.Channel,
) {
	fmt.Printf("Starting Veltro Console %s\n", version.GetInfo())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil { // block until server is stopped
					logger.Error("server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			channel.Disconnect()
			if err := srv.Stop(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stop: %w", err)
			}
			return nil
		},
	})
}
