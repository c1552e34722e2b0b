package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
	pkgws "github.com/adhiwira/kapten/internal/pkg/websocket"
	"github.com/adhiwira/kapten/services/captain"
)

// LocationReporter receives device coordinates relayed by a connected client
type LocationReporter interface {
	Report(coord models.Coordinate)
}

// Session bundles the per-captain engine with its location intake
type Session struct {
	Facade   captain.Facade
	Reporter LocationReporter
}

// SessionFactory builds a session for an authenticated captain. The token is
// the raw bearer token presented on connect; the factory forwards it to the
// dispatch and presence gateways.
type SessionFactory func(captainID, token string) (*Session, error)

// WebSocketManager extends the base WebSocket manager for captain sessions
type WebSocketManager struct {
	manager *pkgws.Manager
	factory SessionFactory
}

// NewWebSocketManager creates a new WebSocket manager for captain sessions
func NewWebSocketManager(manager *pkgws.Manager, factory SessionFactory) *WebSocketManager {
	return &WebSocketManager{
		manager: manager,
		factory: factory,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (m *WebSocketManager) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	m.manager.AddClient(client)
	defer m.manager.RemoveClient(client.CaptainID)

	session, err := m.factory(client.CaptainID, client.Token)
	if err != nil {
		logger.Error("Failed to create captain session",
			logger.String("captain_id", client.CaptainID),
			logger.Err(err))
		return m.manager.SendErrorMessage(ws, constants.ErrorInternalError, "Failed to start session")
	}
	defer session.Facade.Close()

	// Push the initial state and every subsequent change to the client.
	done := make(chan struct{})
	defer close(done)
	go m.snapshotLoop(client, session.Facade, done)

	if err := m.manager.SendMessage(ws, constants.EventSnapshot, session.Facade.Snapshot()); err != nil {
		logger.Warn("Failed to send initial snapshot",
			logger.String("captain_id", client.CaptainID),
			logger.Err(err))
	}

	return m.messageLoop(client, session)
}

// snapshotLoop forwards engine snapshots to the client until the
// connection goes away
func (m *WebSocketManager) snapshotLoop(client *models.WebSocketClient, facade captain.Facade, done <-chan struct{}) {
	updates := facade.Subscribe()
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return
			}
			m.manager.NotifyClient(client.CaptainID, constants.EventSnapshot, snap)
		case <-done:
			return
		}
	}
}

// messageLoop handles incoming WebSocket messages
func (m *WebSocketManager) messageLoop(client *models.WebSocketClient, session *Session) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("captain_id", client.CaptainID),
					logger.Err(err))
			}
			return err
		}

		if err := m.handleMessage(client, session, msg); err != nil {
			logger.Warn("Error handling message",
				logger.String("captain_id", client.CaptainID),
				logger.Err(err))
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (m *WebSocketManager) handleMessage(client *models.WebSocketClient, session *Session, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventGoOnline:
		return m.handleGoOnline(client, session)
	case constants.EventGoOffline:
		return m.handleGoOffline(client, session)
	case constants.EventAcceptOffer:
		return m.handleAcceptOffer(client, session, wsMsg.Data)
	case constants.EventReachedPickup:
		return m.handleReachedPickup(client, session, wsMsg.Data)
	case constants.EventStartTrip:
		return m.handleStartTrip(client, session, wsMsg.Data)
	case constants.EventCompleteTrip:
		return m.handleCompleteTrip(client, session, wsMsg.Data)
	case constants.EventCancelTrip:
		return m.handleCancelTrip(client, session, wsMsg.Data)
	case constants.EventRefresh:
		return m.handleRefresh(client, session)
	case constants.EventLocationUpdate:
		return m.handleLocationUpdate(client, session, wsMsg.Data)
	case constants.EventPing:
		return m.manager.SendMessage(client.Conn, constants.EventPong, nil)
	default:
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
