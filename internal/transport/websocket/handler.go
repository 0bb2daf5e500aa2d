package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/connect4-engine/internal/service/analysis"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// Handler streams move analyses over a socket: each inbound text message is
// one analysis.Request, answered by a candidate message per root column and a
// closing result or error message.
type Handler struct {
	Service  *analysis.Service
	Upgrader websocket.Upgrader
}

func NewHandler(svc *analysis.Service, allowedOrigins []string) *Handler {
	return &Handler{
		Service: svc,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(r, NewClient(conn))
}

func (h *Handler) handleConnection(r *http.Request, client *Client) {
	done := make(chan struct{})
	defer func() {
		close(done)
		client.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	go client.keepAlive(done)

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}
		client.conn.SetReadDeadline(time.Now().Add(pongWait))

		var req analysis.Request
		if err := json.Unmarshal(data, &req); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			if client.SendError("invalid request format") != nil {
				return
			}
			continue
		}

		if err := h.stream(r, client, req); err != nil {
			log.Printf("[WS] Write failed: %v", err)
			return
		}
	}
}

// stream runs one analysis; the returned error is a write failure only.
func (h *Handler) stream(r *http.Request, client *Client, req analysis.Request) error {
	var writeErr error
	result, err := h.Service.Stream(r.Context(), req, func(c bot.CandidateScore) {
		if writeErr == nil {
			writeErr = client.Send(candidateMessage(c))
		}
	})
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		return client.SendError(err.Error())
	}
	return client.Send(ResultMessage{Type: "result", Analysis: result})
}
