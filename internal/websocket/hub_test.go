package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func fakeClient(id string, buf int) *Client {
	return &Client{ID: id, Send: make(chan []byte, buf)}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHub_PublishReachesAllClients(t *testing.T) {
	hub, _ := startHub(t)

	a, b := fakeClient("a", 4), fakeClient("b", 4)
	require.True(t, hub.Join(a))
	require.True(t, hub.Join(b))
	assert.Equal(t, 2, hub.ClientCount())

	hub.Publish(ActionMessageCreated, map[string]string{"text": "Hello world"})

	for _, c := range []*Client{a, b} {
		var msg struct {
			Action  string            `json:"action"`
			Payload map[string]string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(receive(t, c), &msg))
		assert.Equal(t, ActionMessageCreated, msg.Action)
		assert.Equal(t, "Hello world", msg.Payload["text"])
	}
}

func TestHub_LeaveClosesSend(t *testing.T) {
	hub, _ := startHub(t)

	c := fakeClient("a", 1)
	require.True(t, hub.Join(c))
	hub.Leave(c)

	_, ok := <-c.Send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())

	// Leaving twice is harmless.
	hub.Leave(c)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub, _ := startHub(t)

	slow := fakeClient("slow", 0)
	require.True(t, hub.Join(slow))

	hub.Publish(ActionMessageCreated, "x")

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub, cancel := startHub(t)

	c := fakeClient("a", 1)
	require.True(t, hub.Join(c))

	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-c.Send:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	assert.False(t, hub.Join(fakeClient("late", 1)))
	hub.Leave(c)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestEncode(t *testing.T) {
	data, err := Encode("ping", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"ping","payload":null}`, string(data))
}
