package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/seenimoa/multibagger/pkg/models"
	"github.com/seenimoa/multibagger/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS origins are not applied to WebSocket upgrades
	},
}

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	sendBuffer = 16
)

// WebSocket message types.
const (
	MsgAnalyze  = "analyze"  // client -> server, data: AnalyzeRequest
	MsgAnalysis = "analysis" // server -> client, data: AnalysisResult
	MsgPing     = "ping"
	MsgPong     = "pong"
	MsgError    = "error" // server -> client, data: ErrorBody
)

// WSMessage is a message sent over a WebSocket connection.
type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// wsInbound is a client message whose payload is decoded per type.
type wsInbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// wsConn is one client connection. Only the read pump sends on send,
// and it closes send when it exits. The write pump closes done when it
// stops writing.
type wsConn struct {
	conn *websocket.Conn
	send chan WSMessage
	done chan struct{}
	log  zerolog.Logger
}

// queue hands msg to the write pump. It reports false once the write
// pump has stopped.
func (c *wsConn) queue(msg WSMessage) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	}
}

// handleWebSocket upgrades the request and serves analyses over the
// connection until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &wsConn{
		conn: conn,
		send: make(chan WSMessage, sendBuffer),
		done: make(chan struct{}),
		log:  s.log.With().Str("conn_id", uuid.NewString()).Logger(),
	}
	c.log.Debug().Str("remote", r.RemoteAddr).Msg("websocket connected")

	go c.writePump()
	go c.readPump(s)
}

// reply answers one inbound message.
func (s *Server) reply(in wsInbound) WSMessage {
	switch in.Type {
	case MsgPing:
		return WSMessage{Type: MsgPong}
	case MsgAnalyze:
		var req models.AnalyzeRequest
		if len(in.Data) > 0 {
			if err := json.Unmarshal(in.Data, &req); err != nil {
				return WSMessage{Type: MsgError, Data: ErrorBody{Error: analysisFailed}}
			}
		}
		if utils.IsBlank(req.CompanyName) {
			return WSMessage{Type: MsgError, Data: ErrorBody{Error: "companyName is required"}}
		}
		return WSMessage{Type: MsgAnalysis, Data: s.gen.Generate(req.CompanyName, req.Sector)}
	default:
		return WSMessage{Type: MsgError, Data: ErrorBody{Error: "unknown message type: " + in.Type}}
	}
}

// readPump reads client messages and queues the replies.
func (c *wsConn) readPump(s *Server) {
	defer func() {
		close(c.send)
		c.log.Debug().Msg("websocket disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		reply := WSMessage{Type: MsgError, Data: ErrorBody{Error: "invalid message"}}
		var in wsInbound
		if err := json.Unmarshal(message, &in); err == nil {
			reply = s.reply(in)
		}
		if !c.queue(reply) {
			return
		}
	}
}

// writePump writes queued replies and keeps the connection alive with
// pings. It owns closing the underlying connection.
func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.Warn().Err(err).Msg("websocket write failed")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
