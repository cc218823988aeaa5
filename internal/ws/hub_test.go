package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidgomes/haxball-clone/internal/dependencies/clock"
	"github.com/davidgomes/haxball-clone/internal/metrics"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/services/match"
	"github.com/davidgomes/haxball-clone/internal/storage/memory"
	"github.com/davidgomes/haxball-clone/internal/testutil"
)

func startHub(t *testing.T) (*Hub, *metrics.Metrics, string) {
	t.Helper()

	m := metrics.New()
	hub := NewHub(testutil.NopLogger(), m)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	return hub, m, wsURL
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub, m, url := startHub(t)

	conn1 := dial(t, url)
	conn2 := dial(t, url)

	require.Eventually(t, func() bool {
		return promtestutil.ToFloat64(m.WSConnections) == 2
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte(`{"msg":"kickoff"}`))

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"msg":"kickoff"}`, string(data))
	}
}

func TestHubDropsDisconnectedClient(t *testing.T) {
	_, m, url := startHub(t)

	conn := dial(t, url)

	require.Eventually(t, func() bool {
		return promtestutil.ToFloat64(m.WSConnections) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return promtestutil.ToFloat64(m.WSConnections) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestHubEnforcesPerIPCap(t *testing.T) {
	hub, m, url := startHub(t)
	hub.maxPerIP = 1

	dial(t, url)

	require.Eventually(t, func() bool {
		return promtestutil.ToFloat64(m.WSConnections) == 1
	}, time.Second, 10*time.Millisecond)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestBroadcasterPushesSnapshots(t *testing.T) {
	hub, m, url := startHub(t)

	guard := &sync.RWMutex{}
	matchService := match.New(memory.New(), model.DefaultField(), clock.New(), guard, testutil.NopLogger())
	broadcaster := NewBroadcaster(hub, matchService, 10*time.Millisecond, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go broadcaster.Run(ctx)

	conn := dial(t, url)

	require.Eventually(t, func() bool {
		return promtestutil.ToFloat64(m.WSConnections) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var snap struct {
		Ball struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"ball"`
		Players []any `json:"players"`
	}
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, 400.0, snap.Ball.X)
	assert.Equal(t, 300.0, snap.Ball.Y)
	assert.Empty(t, snap.Players)
}
