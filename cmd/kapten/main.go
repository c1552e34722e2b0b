package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adhiwira/kapten/internal/pkg/config"
	"github.com/adhiwira/kapten/internal/pkg/database"
	"github.com/adhiwira/kapten/internal/pkg/health"
	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/middleware"
	"github.com/adhiwira/kapten/internal/pkg/models"
	natspkg "github.com/adhiwira/kapten/internal/pkg/nats"
	"github.com/adhiwira/kapten/internal/pkg/retry"
	"github.com/adhiwira/kapten/internal/pkg/server"
	wspkg "github.com/adhiwira/kapten/internal/pkg/websocket"
	"github.com/adhiwira/kapten/services/captain"
	gatewayhttp "github.com/adhiwira/kapten/services/captain/gateway/http"
	gatewaynats "github.com/adhiwira/kapten/services/captain/gateway/nats"
	gatewayws "github.com/adhiwira/kapten/services/captain/gateway/ws"
	"github.com/adhiwira/kapten/services/captain/geo"
	"github.com/adhiwira/kapten/services/captain/handler"
	wsHandler "github.com/adhiwira/kapten/services/captain/handler/websocket"
	"github.com/adhiwira/kapten/services/captain/repository"
	"github.com/adhiwira/kapten/services/captain/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", configs.App.Name),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Infrastructure may come up after us; retry connections with backoff.
	connectRetrier := retry.NewWithDefaults()

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = connectRetrier.Execute(context.Background(), func(ctx context.Context) error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// NATS is optional. When configured, presence events ride the bus
	// instead of a dedicated WebSocket to the dispatch backend.
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		err = connectRetrier.Execute(context.Background(), func(ctx context.Context) error {
			var connErr error
			natsClient, connErr = natspkg.NewClient(configs.NATS.URL)
			return connErr
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsClient.Close()
	}

	presenceStore := repository.NewPresenceStore(redisClient)
	historyRepo := repository.NewTripHistoryRepo(postgresClient.GetDB())

	factory := newSessionFactory(configs, natsClient, presenceStore, historyRepo)

	// Health checks
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	// WebSocket session handling
	manager := wspkg.NewManager(configs.JWT)
	wsManager := wsHandler.NewWebSocketManager(manager, factory)

	h := handler.NewHandler(wsManager, healthService, redisClient, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})
	if natsClient != nil {
		shutdownManager.Register("nats", func(ctx context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = shutdownManager.Shutdown(shutdownCtx)
}

// newSessionFactory builds the per-captain engine wiring: dispatch REST
// gateway, presence channel, location source, and the lifecycle usecase.
func newSessionFactory(
	configs *models.Config,
	natsClient *natspkg.Client,
	presenceStore captain.PresenceStore,
	historyRepo captain.TripHistoryRepo,
) wsHandler.SessionFactory {
	return func(captainID, token string) (*wsHandler.Session, error) {
		dispatchGW := gatewayhttp.NewDispatchClient(configs.Dispatch, token)

		var presenceGW captain.PresenceGW
		if natsClient != nil {
			presenceGW = gatewaynats.NewPresenceChannel(captainID, natsClient)
		} else {
			presenceGW = gatewayws.NewPresenceChannel(configs.Dispatch)
		}

		source := geo.NewSource(configs.Geo)

		uc := usecase.NewCaptainUC(
			captainID,
			token,
			configs,
			dispatchGW,
			presenceGW,
			source,
			usecase.WithPresenceStore(presenceStore),
			usecase.WithTripHistory(historyRepo),
		)

		return &wsHandler.Session{
			Facade:   uc,
			Reporter: source,
		}, nil
	}
}
