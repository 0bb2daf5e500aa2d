package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

type CandidateMessage struct {
	Type   string `json:"type"`
	Column int    `json:"column"`
	Score  int    `json:"score"`
	Nodes  int64  `json:"nodes"`
}

type ResultMessage struct {
	Type     string           `json:"type"`
	Analysis *domain.Analysis `json:"analysis"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func candidateMessage(c bot.CandidateScore) CandidateMessage {
	return CandidateMessage{Type: "candidate", Column: c.Column, Score: c.Score, Nodes: c.Nodes}
}

// Client serializes writes to one socket; conn.WriteJSON is not safe for
// concurrent use.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Send(message any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) SendError(message string) error {
	return c.Send(ErrorMessage{Type: "error", Message: message})
}

// keepAlive pings until done is closed or a ping fails.
func (c *Client) keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
