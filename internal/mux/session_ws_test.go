package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"modernblackjack-server/pkg/playable"
)

type wsMessage struct {
	Key     string                 `json:"key"`
	Value   string                 `json:"value"`
	Context string                 `json:"context"`
	Data    map[string]interface{} `json:"data"`
}

// readUntilKey drains websocket messages until one arrives with the given key
func readUntilKey(t *testing.T, conn *websocket.Conn, key string) wsMessage {
	t.Helper()

	deadline := time.Now().Add(time.Second * 5)
	_ = conn.SetReadDeadline(deadline)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("could not read %q message: %v", key, err)
		}

		if msg.Key == key {
			return msg
		}
	}
}

func TestSessionWebSocket(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created sessionResponse
	assertPost(t, ts, "/session", nil, &created, 201)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/session/" + created.ID + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer conn.Close()
	defer resp.Body.Close()

	// the current game state arrives on connect
	msg := readUntilKey(t, conn, "game")
	a.Equal("blackjack", msg.Value)
	a.Equal("idle", msg.Data["phase"])
	a.Equal(float64(100), msg.Data["playerChips"])

	// the client shows up in the session
	var got sessionResponse
	assertGet(t, ts, "/session/"+created.ID, &got, 200)
	a.Equal(1, got.Clients)

	// a rejected bet comes back as an error with the caller's context
	a.NoError(conn.WriteJSON(&playable.PayloadIn{
		Action:         "bet",
		Context:        "ctx-1",
		AdditionalData: playable.AdditionalData{"amount": float64(1)},
	}))

	msg = readUntilKey(t, conn, "error")
	a.Equal("minimum bet is 5", msg.Value)
	a.Equal("ctx-1", msg.Context)

	// a valid bet is acknowledged and the deal plays out
	a.NoError(conn.WriteJSON(&playable.PayloadIn{
		Action:         "bet",
		Context:        "ctx-2",
		AdditionalData: playable.AdditionalData{"amount": float64(10)},
	}))

	msg = readUntilKey(t, conn, "status")
	a.Equal("OK", msg.Value)
	a.Equal("ctx-2", msg.Context)

	deadline := time.Now().Add(time.Second * 10)
	_ = conn.SetReadDeadline(deadline)
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("could not read state update: %v", err)
		}

		if msg.Key != "game" {
			continue
		}

		if busy, _ := msg.Data["busy"].(bool); busy {
			continue
		}

		phase, _ := msg.Data["phase"].(string)
		if phase == "player-turn" || phase == "round-over" {
			return
		}
	}
}
