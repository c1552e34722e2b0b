package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
)

const commandTimeout = 30 * time.Second

type acceptOfferRequest struct {
	OfferID string `json:"offer_id"`
}

type tripRequest struct {
	TripID string `json:"trip_id"`
}

type startTripRequest struct {
	TripID string `json:"trip_id"`
	OTP    string `json:"otp"`
}

type cancelTripRequest struct {
	TripID string `json:"trip_id"`
	Reason string `json:"reason"`
}

type locationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (m *WebSocketManager) handleGoOnline(client *models.WebSocketClient, session *Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.GoOnline(ctx); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleGoOffline(client *models.WebSocketClient, session *Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.GoOffline(ctx); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleAcceptOffer(client *models.WebSocketClient, session *Session, data json.RawMessage) error {
	var req acceptOfferRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid accept payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.Accept(ctx, req.OfferID); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleReachedPickup(client *models.WebSocketClient, session *Session, data json.RawMessage) error {
	var req tripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid trip payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.ReachedPickup(ctx, req.TripID); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleStartTrip(client *models.WebSocketClient, session *Session, data json.RawMessage) error {
	var req startTripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid trip payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.StartTrip(ctx, req.TripID, req.OTP); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleCompleteTrip(client *models.WebSocketClient, session *Session, data json.RawMessage) error {
	var req tripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid trip payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.Complete(ctx, req.TripID); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleCancelTrip(client *models.WebSocketClient, session *Session, data json.RawMessage) error {
	var req cancelTripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid cancel payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.Cancel(ctx, req.TripID, req.Reason); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleRefresh(client *models.WebSocketClient, session *Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := session.Facade.Refresh(ctx); err != nil {
		return m.sendCommandError(client, err)
	}
	return nil
}

func (m *WebSocketManager) handleLocationUpdate(client *models.WebSocketClient, session *Session, data json.RawMessage) error {
	var req locationUpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid location payload")
	}

	session.Reporter.Report(models.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	return nil
}

// sendCommandError maps engine errors to WebSocket error codes
func (m *WebSocketManager) sendCommandError(client *models.WebSocketClient, err error) error {
	code := constants.ErrorInternalError
	switch {
	case errors.Is(err, captain.ErrInvalidOTP):
		code = constants.ErrorInvalidOTP
	case errors.Is(err, captain.ErrStaleReference), errors.Is(err, captain.ErrOfferNotFound):
		code = constants.ErrorStaleReference
	case errors.Is(err, captain.ErrActiveTripExists):
		code = constants.ErrorActiveTripExists
	case errors.Is(err, captain.ErrNoActiveTrip):
		code = constants.ErrorNoActiveTrip
	case errors.Is(err, captain.ErrInvalidTransition):
		code = constants.ErrorValidationFailed
	case errors.Is(err, captain.ErrCommandRejected):
		code = constants.ErrorCommandRejected
	case errors.Is(err, captain.ErrTransientNetwork):
		code = constants.ErrorTransient
	case errors.Is(err, captain.ErrInvalidLocation):
		code = constants.ErrorInvalidLocation
	case errors.Is(err, captain.ErrSessionClosed):
		code = constants.ErrorSessionClosed
	}

	return m.manager.SendErrorMessage(client.Conn, code, err.Error())
}
