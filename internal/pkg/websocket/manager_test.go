package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/models"
)

// upgradedConn spins up a throwaway server, upgrades one connection and
// hands back its server side. The client side drains frames so writes
// never block on a full buffer.
func upgradedConn(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conns := make(chan *websocket.Conn, 1)
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		conns <- conn
		<-done
	}))
	t.Cleanup(func() {
		close(done)
		srv.Close()
	})

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	go func() {
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case conn := <-conns:
		t.Cleanup(func() { conn.Close() })
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server-side connection")
		return nil
	}
}

func TestSendMessage_SerializesConcurrentWriters(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})
	conn := upgradedConn(t)

	// The snapshot loop and command replies write from different
	// goroutines; none of these writes may collide on the connection.
	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				var err error
				if w%2 == 0 {
					err = m.SendMessage(conn, constants.EventSnapshot, map[string]bool{"online": true})
				} else {
					err = m.SendErrorMessage(conn, constants.ErrorTransient, "dispatch unreachable")
				}
				if err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestSendMessage_NilConnectionIsNoOp(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})
	assert.NoError(t, m.SendMessage(nil, constants.EventSnapshot, nil))
}
