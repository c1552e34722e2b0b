package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents a connected captain session
type WebSocketClient struct {
	CaptainID string
	Token     string
	Conn      *websocket.Conn
}

// WebSocketClaims are the JWT claims carried by a captain session token
type WebSocketClaims struct {
	CaptainID string `json:"captain_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
