package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/models"
	pkgws "github.com/adhiwira/kapten/internal/pkg/websocket"
	"github.com/adhiwira/kapten/services/captain"
	"github.com/adhiwira/kapten/services/captain/mocks"
)

const testJWTSecret = "test-secret"

// fakeReporter records coordinates relayed from the client
type fakeReporter struct {
	mu     sync.Mutex
	coords []models.Coordinate
}

func (r *fakeReporter) Report(coord models.Coordinate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coords = append(r.coords, coord)
}

func (r *fakeReporter) last() (models.Coordinate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.coords) == 0 {
		return models.Coordinate{}, false
	}
	return r.coords[len(r.coords)-1], true
}

type wsTestEnv struct {
	facade   *mocks.MockFacade
	reporter *fakeReporter
	conn     *gorillaws.Conn
}

// newWSTestEnv spins up the full stack: echo server, JWT-authenticated
// upgrade, session factory, and a connected client.
func newWSTestEnv(t *testing.T) *wsTestEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	facade := mocks.NewMockFacade(ctrl)
	reporter := &fakeReporter{}

	// Engine plumbing used by every connection.
	updates := make(chan captain.Snapshot)
	facade.EXPECT().Subscribe().Return((<-chan captain.Snapshot)(updates)).AnyTimes()
	facade.EXPECT().Snapshot().Return(captain.Snapshot{Online: false}).AnyTimes()
	facade.EXPECT().Close().AnyTimes()

	factory := func(captainID, token string) (*Session, error) {
		assert.Equal(t, "captain-1", captainID)
		assert.NotEmpty(t, token)
		return &Session{Facade: facade, Reporter: reporter}, nil
	}

	manager := pkgws.NewManager(models.JWTConfig{Secret: testJWTSecret})
	wsManager := NewWebSocketManager(manager, factory)

	e := echo.New()
	e.GET("/ws", wsManager.HandleWebSocket)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	conn := dialWS(t, srv, signTestToken(t, "captain-1"))
	return &wsTestEnv{facade: facade, reporter: reporter, conn: conn}
}

func signTestToken(t *testing.T, captainID string) string {
	t.Helper()
	claims := &models.WebSocketClaims{
		CaptainID: captainID,
		Role:      "captain",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func dialWS(t *testing.T, srv *httptest.Server, token string) *gorillaws.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := gorillaws.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		if resp != nil {
			t.Fatalf("dial failed with status %d: %v", resp.StatusCode, err)
		}
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func (env *wsTestEnv) send(t *testing.T, event string, payload interface{}) {
	t.Helper()
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		data = raw
	}
	require.NoError(t, env.conn.WriteJSON(models.WSMessage{Event: event, Data: data}))
}

func (env *wsTestEnv) read(t *testing.T) models.WSMessage {
	t.Helper()
	env.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg models.WSMessage
	require.NoError(t, env.conn.ReadJSON(&msg))
	return msg
}

func (env *wsTestEnv) readError(t *testing.T) models.WSErrorMessage {
	t.Helper()
	msg := env.read(t)
	require.Equal(t, constants.EventError, msg.Event)
	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	return wsErr
}

func TestHandleWebSocket_RejectsMissingToken(t *testing.T) {
	manager := pkgws.NewManager(models.JWTConfig{Secret: testJWTSecret})
	wsManager := NewWebSocketManager(manager, func(string, string) (*Session, error) {
		t.Fatal("factory should not run for unauthenticated clients")
		return nil, nil
	})

	e := echo.New()
	e.GET("/ws", wsManager.HandleWebSocket)
	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := gorillaws.DefaultDialer.Dial(wsURL, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWebSocket_RejectsForgedToken(t *testing.T) {
	manager := pkgws.NewManager(models.JWTConfig{Secret: testJWTSecret})
	wsManager := NewWebSocketManager(manager, func(string, string) (*Session, error) {
		t.Fatal("factory should not run for unauthenticated clients")
		return nil, nil
	})

	e := echo.New()
	e.GET("/ws", wsManager.HandleWebSocket)
	srv := httptest.NewServer(e)
	defer srv.Close()

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.WebSocketClaims{CaptainID: "captain-1"}).
		SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+forged)
	_, resp, dialErr := gorillaws.DefaultDialer.Dial(wsURL, header)

	require.Error(t, dialErr)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWebSocket_SendsInitialSnapshot(t *testing.T) {
	env := newWSTestEnv(t)

	msg := env.read(t)

	assert.Equal(t, constants.EventSnapshot, msg.Event)
	var snap captain.Snapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	assert.False(t, snap.Online)
}

func TestHandleMessage_GoOnline(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t) // initial snapshot

	done := make(chan struct{})
	env.facade.EXPECT().GoOnline(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(done)
		return nil
	})

	env.send(t, constants.EventGoOnline, nil)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected GoOnline to be invoked")
	}
}

func TestHandleMessage_AcceptOfferForwardsID(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t)

	done := make(chan struct{})
	env.facade.EXPECT().Accept(gomock.Any(), "offer-1").DoAndReturn(func(context.Context, string) error {
		close(done)
		return nil
	})

	env.send(t, constants.EventAcceptOffer, acceptOfferRequest{OfferID: "offer-1"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected Accept to be invoked")
	}
}

func TestHandleMessage_StartTripForwardsOTP(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t)

	done := make(chan struct{})
	env.facade.EXPECT().StartTrip(gomock.Any(), "trip-1", "4321").DoAndReturn(func(context.Context, string, string) error {
		close(done)
		return nil
	})

	env.send(t, constants.EventStartTrip, startTripRequest{TripID: "trip-1", OTP: "4321"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected StartTrip to be invoked")
	}
}

func TestHandleMessage_CommandErrorsMapToCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"invalid otp", captain.ErrInvalidOTP, constants.ErrorInvalidOTP},
		{"stale reference", captain.ErrStaleReference, constants.ErrorStaleReference},
		{"unknown offer", captain.ErrOfferNotFound, constants.ErrorStaleReference},
		{"active trip exists", captain.ErrActiveTripExists, constants.ErrorActiveTripExists},
		{"no active trip", captain.ErrNoActiveTrip, constants.ErrorNoActiveTrip},
		{"invalid transition", captain.ErrInvalidTransition, constants.ErrorValidationFailed},
		{"command rejected", captain.ErrCommandRejected, constants.ErrorCommandRejected},
		{"transient network", captain.ErrTransientNetwork, constants.ErrorTransient},
		{"session closed", captain.ErrSessionClosed, constants.ErrorSessionClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newWSTestEnv(t)
			env.read(t)

			env.facade.EXPECT().Accept(gomock.Any(), "offer-1").Return(tt.err)

			env.send(t, constants.EventAcceptOffer, acceptOfferRequest{OfferID: "offer-1"})

			wsErr := env.readError(t)
			assert.Equal(t, tt.wantCode, wsErr.Code)
		})
	}
}

func TestHandleMessage_LocationUpdateFeedsReporter(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t)

	env.send(t, constants.EventLocationUpdate, locationUpdateRequest{
		Latitude:  -6.2088,
		Longitude: 106.8456,
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if coord, ok := env.reporter.last(); ok {
			assert.Equal(t, -6.2088, coord.Latitude)
			assert.Equal(t, 106.8456, coord.Longitude)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("expected the location to reach the reporter")
}

func TestHandleMessage_PingPong(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t)

	env.send(t, constants.EventPing, nil)

	msg := env.read(t)
	assert.Equal(t, constants.EventPong, msg.Event)
}

func TestHandleMessage_MalformedJSON(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t)

	require.NoError(t, env.conn.WriteMessage(gorillaws.TextMessage, []byte("{not json")))

	wsErr := env.readError(t)
	assert.Equal(t, constants.ErrorInvalidFormat, wsErr.Code)
}

func TestHandleMessage_UnknownEvent(t *testing.T) {
	env := newWSTestEnv(t)
	env.read(t)

	env.send(t, "teleport", nil)

	wsErr := env.readError(t)
	assert.Equal(t, constants.ErrorInvalidFormat, wsErr.Code)
}

func TestHandleWebSocket_SessionFactoryFailure(t *testing.T) {
	manager := pkgws.NewManager(models.JWTConfig{Secret: testJWTSecret})
	wsManager := NewWebSocketManager(manager, func(string, string) (*Session, error) {
		return nil, assert.AnError
	})

	e := echo.New()
	e.GET("/ws", wsManager.HandleWebSocket)
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn := dialWS(t, srv, signTestToken(t, "captain-1"))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, constants.EventError, msg.Event)

	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	assert.Equal(t, constants.ErrorInternalError, wsErr.Code)
}
