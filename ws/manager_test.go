package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func dialTestServer(t *testing.T, mgr *Manager) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		mgr.Subscribe(conn)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	// the server registers the subscription just after the handshake
	deadline := time.Now().Add(2 * time.Second)
	for mgr.Count() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func TestBroadcastReachesSubscriber(t *testing.T) {
	mgr := NewManager()
	conn := dialTestServer(t, mgr)

	payload := []byte(`{"type":"book_created"}`)
	mgr.Broadcast(payload)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(msg) != string(payload) {
		t.Fatalf("got %q, want %q", msg, payload)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	mgr := NewManager()
	conn := dialTestServer(t, mgr)

	if mgr.Count() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", mgr.Count())
	}

	// grab the registered server-side connection and drop it
	mgr.mu.RLock()
	var serverConn *websocket.Conn
	for c := range mgr.subs {
		serverConn = c
	}
	mgr.mu.RUnlock()

	mgr.Unsubscribe(serverConn)
	if mgr.Count() != 0 {
		t.Fatalf("expected 0 subscribers after unsubscribe, got %d", mgr.Count())
	}

	// broadcasting to nobody must not panic
	mgr.Broadcast([]byte("x"))

	_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected closed connection, got a message")
	}
}

func TestBroadcastDropsDeadConnections(t *testing.T) {
	mgr := NewManager()
	conn := dialTestServer(t, mgr)

	// closing the client side makes the server-side write fail eventually
	_ = conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for mgr.Count() > 0 {
		mgr.Broadcast([]byte("ping"))
		if time.Now().After(deadline) {
			t.Fatalf("dead connection was never dropped")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
