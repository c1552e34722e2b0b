package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adhiwira/kapten/internal/pkg/database"
	"github.com/adhiwira/kapten/internal/pkg/health"
	"github.com/adhiwira/kapten/internal/pkg/middleware"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain/handler/websocket"
)

// wsConnectLimit caps connection attempts per client to keep reconnect
// storms off the session factory.
const (
	wsConnectLimit  = 30
	wsConnectPeriod = time.Minute
)

// Handler coordinates all protocol handlers for the captain service
type Handler struct {
	wsManager     *websocket.WebSocketManager
	healthService *health.HealthService
	redisClient   *database.RedisClient
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	wsManager *websocket.WebSocketManager,
	healthService *health.HealthService,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		wsManager:     wsManager,
		healthService: healthService,
		redisClient:   redisClient,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestContextMiddleware(h.cfg.App.Name))
	e.Use(middleware.LoggerMiddleware())

	health.RegisterHealthEndpoints(e, h.cfg.App.Name)
	health.RegisterEnhancedHealthEndpoints(e, h.cfg.App.Name, h.cfg.App.Version, h.healthService)

	// Captain sessions authenticate inside the upgrade handshake, so no
	// extra JWT middleware on the route itself.
	e.GET("/ws", h.wsManager.HandleWebSocket,
		middleware.IPRateLimiter(wsConnectLimit, wsConnectPeriod, h.redisClient.GetClient()))
}
