package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

// Timing constants mirror Conduit's internal/web/websocket/client.go;
// a tokenize request/response round trip is tiny, so there's no need
// to deviate from those defaults.
const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 64 * 1024
	wsSendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleTokenizeWS upgrades to a WebSocket and tokenizes one whole
// message per frame it receives, streaming back the resulting token
// stream as JSON. As in Conduit's Client.ReadPump/WritePump split, a
// read loop runs in its own goroutine and every write — both the
// tokenize response and the periodic ping — goes through a single
// writer goroutine's select loop over an outbound channel and the
// ping ticker, since gorilla/websocket allows at most one goroutine to
// write to a connection at a time.
func handleTokenizeWS(opts tokenizer.Options, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		send := make(chan []byte, wsSendBuffer)
		done := make(chan struct{})

		go wsWritePump(conn, send, done)
		wsReadPump(conn, opts, send, done, logger)
	}
}

// wsReadPump reads whole-message frames, tokenizes each, and hands the
// JSON-encoded response to the writer goroutine via send. It owns the
// connection's lifetime: returning closes done (stopping the writer)
// and the connection itself.
func wsReadPump(conn *websocket.Conn, opts tokenizer.Options, send chan<- []byte, done chan struct{}, logger *zap.Logger) {
	defer close(done)
	defer conn.Close()

	conn.SetReadLimit(wsMaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		toks := tokenizer.Parse(string(msg), opts)
		payload, err := json.Marshal(tokenizeResponse{Tokens: toks})
		if err != nil {
			logger.Warn("failed to marshal tokenize response", zap.Error(err))
			continue
		}

		select {
		case send <- payload:
		case <-done:
			return
		}
	}
}

// wsWritePump is the connection's sole writer, mirroring Conduit's
// WritePump: every outbound frame, whether a tokenize response or a
// keepalive ping, is written from this one goroutine.
func wsWritePump(conn *websocket.Conn, send <-chan []byte, done chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return

		case payload := <-send:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
