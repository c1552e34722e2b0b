package gateway_ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
	"github.com/gorilla/websocket"
)

// PresenceChannel is the persistent push connection to the dispatch
// backend. Connection failures are reported to the caller once and never
// thrown into consumers; the engine keeps functioning on the poller alone.
type PresenceChannel struct {
	mu        sync.Mutex
	wsURL     string
	dialer    *websocket.Dialer
	conn      *websocket.Conn
	connected bool
	closed    bool

	// writeMu serializes writes; gorilla connections allow one writer
	writeMu sync.Mutex

	events chan models.PresenceEvent
}

var _ captain.PresenceGW = (*PresenceChannel)(nil)

// NewPresenceChannel creates a presence channel for the configured
// dispatch WebSocket endpoint
func NewPresenceChannel(cfg models.DispatchConfig) *PresenceChannel {
	return &PresenceChannel{
		wsURL:  cfg.WebSocketURL,
		dialer: websocket.DefaultDialer,
		events: make(chan models.PresenceEvent, 32),
	}
}

// Connect dials the dispatch backend. Calling Connect while already
// connected is an idempotent no-op. Reconnection policy is caller-driven.
func (p *PresenceChannel) Connect(ctx context.Context, authToken string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("presence channel is closed")
	}
	if p.connected {
		return nil
	}

	header := http.Header{}
	if authToken != "" {
		header.Set("Authorization", "Bearer "+authToken)
	}

	conn, _, err := p.dialer.DialContext(ctx, p.wsURL, header)
	if err != nil {
		return fmt.Errorf("%w: dialing presence channel: %v", captain.ErrTransientNetwork, err)
	}

	p.conn = conn
	p.connected = true

	go p.readLoop(conn)
	return nil
}

// EmitLocation pushes the captain's position to the dispatch backend
func (p *PresenceChannel) EmitLocation(ctx context.Context, coord models.Coordinate) error {
	p.mu.Lock()
	conn := p.conn
	connected := p.connected
	p.mu.Unlock()

	if !connected || conn == nil {
		return fmt.Errorf("%w: presence channel not connected", captain.ErrTransientNetwork)
	}

	data, err := json.Marshal(coord)
	if err != nil {
		return fmt.Errorf("failed to marshal coordinate: %w", err)
	}

	msg := models.WSMessage{
		Event: constants.EventLocationUpdate,
		Data:  data,
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("%w: writing location update: %v", captain.ErrTransientNetwork, err)
	}
	return nil
}

// Events returns the stream of push events. The channel stays open across
// reconnects.
func (p *PresenceChannel) Events() <-chan models.PresenceEvent {
	return p.events
}

// Close tears the connection down permanently
func (p *PresenceChannel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.connected = false
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// readLoop decodes push messages until the connection drops. Errors are
// logged, never propagated into calling code.
func (p *PresenceChannel) readLoop(conn *websocket.Conn) {
	defer func() {
		p.mu.Lock()
		if p.conn == conn {
			p.connected = false
			p.conn = nil
		}
		p.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Presence channel read failed", logger.Err(err))
			}
			return
		}

		event, ok := p.decodeEvent(msg)
		if !ok {
			continue
		}

		select {
		case p.events <- event:
		default:
			logger.Warn("Presence event dropped, consumer lagging",
				logger.String("event", msg.Event))
		}
	}
}

// decodeEvent maps a wire message onto a presence event
func (p *PresenceChannel) decodeEvent(msg models.WSMessage) (models.PresenceEvent, bool) {
	switch msg.Event {
	case constants.EventOfferAssigned:
		var offer models.TripOffer
		if err := json.Unmarshal(msg.Data, &offer); err != nil {
			logger.Warn("Invalid offer payload on presence channel", logger.Err(err))
			return models.PresenceEvent{}, false
		}
		return models.PresenceEvent{
			Type:  models.PresenceEventOfferAssigned,
			Offer: &offer,
		}, true

	case constants.EventOfferCancelled:
		var payload models.OfferCancelledPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			logger.Warn("Invalid cancellation payload on presence channel", logger.Err(err))
			return models.PresenceEvent{}, false
		}
		return models.PresenceEvent{
			Type:    models.PresenceEventOfferCancelled,
			OfferID: payload.ID,
		}, true

	case constants.EventStatsUpdated:
		var stats models.CaptainStats
		if err := json.Unmarshal(msg.Data, &stats); err != nil {
			logger.Warn("Invalid stats payload on presence channel", logger.Err(err))
			return models.PresenceEvent{}, false
		}
		return models.PresenceEvent{
			Type:  models.PresenceEventStatsUpdated,
			Stats: &stats,
		}, true

	case constants.EventPing:
		// Keepalive only, nothing to surface.
		return models.PresenceEvent{}, false

	default:
		logger.Debug("Ignoring unknown presence event",
			logger.String("event", msg.Event))
		return models.PresenceEvent{}, false
	}
}
