package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
	natspkg "github.com/adhiwira/kapten/internal/pkg/nats"
	"github.com/adhiwira/kapten/services/captain"
	"github.com/nats-io/nats.go"
)

// PresenceChannel is a bus-based presence channel for deployments where the
// engine runs next to the dispatch message broker instead of dialing out
// over WebSocket.
type PresenceChannel struct {
	mu        sync.Mutex
	captainID string
	client    *natspkg.Client
	subs      []*nats.Subscription
	connected bool
	closed    bool

	events chan models.PresenceEvent
}

var _ captain.PresenceGW = (*PresenceChannel)(nil)

// NewPresenceChannel creates a presence channel on an existing NATS client
func NewPresenceChannel(captainID string, client *natspkg.Client) *PresenceChannel {
	return &PresenceChannel{
		captainID: captainID,
		client:    client,
		events:    make(chan models.PresenceEvent, 32),
	}
}

// Connect subscribes to this captain's dispatch subjects. Duplicate calls
// while subscribed are idempotent no-ops. The auth token is unused; broker
// deployments authenticate at the connection level.
func (p *PresenceChannel) Connect(ctx context.Context, authToken string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("presence channel is closed")
	}
	if p.connected {
		return nil
	}

	subjects := map[string]models.PresenceEventType{
		fmt.Sprintf(constants.SubjectOfferAssigned, p.captainID):  models.PresenceEventOfferAssigned,
		fmt.Sprintf(constants.SubjectOfferCancelled, p.captainID): models.PresenceEventOfferCancelled,
		fmt.Sprintf(constants.SubjectStatsUpdated, p.captainID):   models.PresenceEventStatsUpdated,
	}

	for subject, eventType := range subjects {
		evType := eventType
		sub, err := p.client.Subscribe(subject, func(msg *nats.Msg) {
			p.handleMessage(evType, msg.Data)
		})
		if err != nil {
			p.unsubscribeLocked()
			return fmt.Errorf("%w: subscribing presence subjects: %v", captain.ErrTransientNetwork, err)
		}
		p.subs = append(p.subs, sub)
	}

	p.connected = true
	return nil
}

// EmitLocation publishes the captain's position on the location subject
func (p *PresenceChannel) EmitLocation(ctx context.Context, coord models.Coordinate) error {
	p.mu.Lock()
	connected := p.connected
	p.mu.Unlock()

	if !connected {
		return fmt.Errorf("%w: presence channel not connected", captain.ErrTransientNetwork)
	}

	payload, err := json.Marshal(models.CaptainLocationUpdate{
		CaptainID: p.captainID,
		Location:  coord,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	if err := p.client.Publish(constants.SubjectLocationUpdate, payload); err != nil {
		return fmt.Errorf("%w: publishing location update: %v", captain.ErrTransientNetwork, err)
	}
	return nil
}

// Events returns the stream of push events
func (p *PresenceChannel) Events() <-chan models.PresenceEvent {
	return p.events
}

// Close drops the subject subscriptions. The shared NATS client itself is
// owned by the caller and stays open.
func (p *PresenceChannel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.unsubscribeLocked()
	return nil
}

func (p *PresenceChannel) unsubscribeLocked() {
	for _, sub := range p.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Debug("Failed to unsubscribe presence subject", logger.Err(err))
		}
	}
	p.subs = nil
	p.connected = false
}

// handleMessage decodes a bus message and forwards it to consumers
func (p *PresenceChannel) handleMessage(eventType models.PresenceEventType, data []byte) {
	event := models.PresenceEvent{Type: eventType}

	switch eventType {
	case models.PresenceEventOfferAssigned:
		var offer models.TripOffer
		if err := json.Unmarshal(data, &offer); err != nil {
			logger.Warn("Invalid offer payload on presence subject", logger.Err(err))
			return
		}
		event.Offer = &offer

	case models.PresenceEventOfferCancelled:
		var payload models.OfferCancelledPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Warn("Invalid cancellation payload on presence subject", logger.Err(err))
			return
		}
		event.OfferID = payload.ID

	case models.PresenceEventStatsUpdated:
		var stats models.CaptainStats
		if err := json.Unmarshal(data, &stats); err != nil {
			logger.Warn("Invalid stats payload on presence subject", logger.Err(err))
			return
		}
		event.Stats = &stats
	}

	select {
	case p.events <- event:
	default:
		logger.Warn("Presence event dropped, consumer lagging",
			logger.String("event", string(eventType)))
	}
}
