package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUDPListener(t *testing.T) (net.PacketConn, string) {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, conn.LocalAddr().String()
}

func readPacket(t *testing.T, conn net.PacketConn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	n, _, err := conn.ReadFrom(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func TestClient_CountLineFormat(t *testing.T) {
	listener, addr := newUDPListener(t)

	client, err := NewClient(Config{
		Enabled: true,
		Address: addr,
		Prefix:  "hr3_admin",
	})
	require.NoError(t, err)
	defer client.Close()
	require.True(t, client.Enabled())

	client.Count("http.request", 1, map[string]string{"method": "GET", "status": "200"})

	line := readPacket(t, listener)
	assert.Equal(t, "hr3_admin.http.request:1|c|#method:GET,status:200", line)
}

func TestClient_TimingAndGauge(t *testing.T) {
	listener, addr := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	defer client.Close()

	client.Timing("http.duration", 250*time.Millisecond, nil)
	assert.Equal(t, "http.duration:250|ms", readPacket(t, listener))

	client.Gauge("analytics.queue_depth", 12, nil)
	assert.Equal(t, "analytics.queue_depth:12|g", readPacket(t, listener))
}

func TestClient_GlobalTagsMergeWithLocal(t *testing.T) {
	listener, addr := newUDPListener(t)

	client, err := NewClient(Config{
		Enabled:    true,
		Address:    addr,
		GlobalTags: map[string]string{"service": "hr3-admin", "env": "test"},
	})
	require.NoError(t, err)
	defer client.Close()

	// Local tags win on collision; output is sorted by key.
	client.Count("beacon.accepted", 1, map[string]string{"env": "local"})
	assert.Equal(t, "beacon.accepted:1|c|#env:local,service:hr3-admin", readPacket(t, listener))
}

func TestClient_MetricNameSanitised(t *testing.T) {
	listener, addr := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr, Prefix: ".hr3_admin."})
	require.NoError(t, err)
	defer client.Close()

	client.Count("http/request done.", 1, nil)
	assert.Equal(t, "hr3_admin.http_request_done:1|c", readPacket(t, listener))
}

func TestNewClient_DisabledWithoutAddress(t *testing.T) {
	client, err := NewClient(Config{Enabled: true, Address: "   "})
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	// Emission on a disabled client is a no-op.
	client.Count("anything", 1, nil)
	assert.NoError(t, client.Close())
}

func TestClient_NilReceiverIsSafe(t *testing.T) {
	var client *Client
	client.Count("x", 1, nil)
	client.Gauge("x", 1, nil)
	client.Timing("x", time.Second, nil)
	assert.False(t, client.Enabled())
	assert.NoError(t, client.Close())
}

func TestClient_ClosedClientStopsEmitting(t *testing.T) {
	listener, addr := newUDPListener(t)

	client, err := NewClient(Config{Enabled: true, Address: addr})
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.False(t, client.Enabled())
	client.Count("after.close", 1, nil)

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	buf := make([]byte, 64)
	_, _, readErr := listener.ReadFrom(buf)
	assert.Error(t, readErr, "no packet should arrive after Close")
}
