package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// Event is pushed to websocket clients when the renderer changes state.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied to the client
		a.log.Debug("couldn't make websocket", "err", err)
		return
	}

	send := make(chan []byte, 16)
	a.wsMu.Lock()
	a.wsClients[ws] = send
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMu.Unlock()

	go a.websocketWriter(ws, send)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	a.wsMu.Lock()
	if ch, ok := a.wsClients[ws]; ok {
		close(ch)
		delete(a.wsClients, ws)
	}
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMu.Unlock()
}

// websocketWriter is the only goroutine writing to ws. It sends a stats
// snapshot every two seconds and forwards broadcast events in between.
func (a *Api) websocketWriter(ws *websocket.Conn, send <-chan []byte) {
	pingTicker := time.NewTicker(2 * time.Second)
	defer func() {
		pingTicker.Stop()
		err := ws.Close()
		if err != nil {
			a.log.Debug("could not close websocket", "err", err)
			return
		}
	}()
	timeout := 10 * time.Second

	write := func(packet []byte) bool {
		err := ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			a.log.Warn("could not set write deadline", "err", err)
			return false
		}
		return ws.WriteMessage(websocket.TextMessage, packet) == nil
	}

	if !write(a.statsPacket()) {
		return
	}
	for {
		select {
		case packet, ok := <-send:
			if !ok || !write(packet) {
				return
			}
		case <-pingTicker.C:
			if !write(a.statsPacket()) {
				return
			}
		}
	}
}

func (a *Api) statsPacket() []byte {
	packet, err := json.Marshal(Event{Event: "stats", Data: a.Stats.Snapshot()})
	if err != nil {
		panic(fmt.Sprintf("stats are not serialisable: %s", err))
	}
	return packet
}

// Broadcast queues an event for every connected client without blocking;
// clients that are too far behind miss it. A nil Api is a no-op.
func (a *Api) Broadcast(event string, data any) {
	if a == nil {
		return
	}
	packet, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		a.log.Warn("could not encode event "+event, "err", err)
		return
	}

	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	for _, send := range a.wsClients {
		select {
		case send <- packet:
		default:
		}
	}
}
