package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_DeliversToSubscriber(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(nil)
	router := gin.New()
	NewHandler(hub, nil, nil).RegisterRoutes(router)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dial(t, srv, "username=alice")
	require.Eventually(t, func() bool { return hub.IsOnline("alice") }, time.Second, 10*time.Millisecond)

	hub.Notify(EventReservationCreated, map[string]int{"reservation_id": 7}, "alice", "alice", "nobody")

	var got Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, EventReservationCreated, got.Type)
	assert.Equal(t, float64(7), got.Payload.(map[string]any)["reservation_id"])
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(nil)
	router := gin.New()
	NewHandler(hub, nil, nil).RegisterRoutes(router)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dial(t, srv, "username=bob")
	require.Eventually(t, func() bool { return hub.IsOnline("bob") }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.OnlineCount())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return !hub.IsOnline("bob") }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.OnlineCount())
}

func TestSubscribe_RequiresUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewHub(nil), nil, nil).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/notifications", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, func() { hub.Notify(EventReviewCreated, nil, "alice") })
}
