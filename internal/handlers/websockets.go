package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"temperature_converter/internal/converter"
	"temperature_converter/internal/metrics"
	"temperature_converter/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope types sent to the client.
const (
	wsTypeRender  = "render"
	wsTypeHistory = "history"
	wsTypeError   = "error"
)

const (
	errInvalidMessage = "invalid message: expected {\"type\":...,\"value\":...}"
	errRecordHistory  = "failed to record conversion"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsRequest is one client action. Type is a session event type or "history".
type wsRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type inbound struct {
	req wsRequest
	err error
}

// Upgrader for HTTP -> WebSocket.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *Handler) pongWait() time.Duration {
	return h.pingPeriod * 10 / 9
}

// wsConnect runs one interactive session. This goroutine owns the session
// state and is the only writer on the connection; the reader goroutine only
// decodes client messages.
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	metrics.SessionsActive.Inc()
	defer metrics.SessionsActive.Dec()

	// Configure read limits and pong handler to extend read deadline.
	pongWait := h.pongWait()
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	events := make(chan inbound)
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, events, stop)

	ping := time.NewTicker(h.pingPeriod)
	defer ping.Stop()

	ctx := c.Request.Context()
	state := session.New()

	if err := h.writeEnvelope(conn, wsEnvelope{Type: wsTypeRender, Data: session.Render{State: state}}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}
	if err := h.sendHistory(ctx, conn); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case in, ok := <-events:
			if !ok {
				return
			}
			next, err := h.dispatch(ctx, conn, state, in)
			if err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
			state = next
		}
	}
}

// startReader decodes client messages until the connection fails, then
// closes events.
func (h *Handler) startReader(conn *websocket.Conn, events chan<- inbound, stop <-chan struct{}) {
	defer close(events)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		var in inbound
		in.err = json.Unmarshal(data, &in.req)
		select {
		case events <- in:
		case <-stop:
			return
		}
	}
}

// dispatch applies one client message to the session and writes the reply.
// A conversion the session reports is appended to the shared history before
// it is rendered. Only write failures are returned.
func (h *Handler) dispatch(ctx context.Context, conn *websocket.Conn, state session.State, in inbound) (session.State, error) {
	if in.err != nil {
		return state, h.writeError(conn, errInvalidMessage)
	}
	if in.req.Type == wsTypeHistory {
		return state, h.sendHistory(ctx, conn)
	}

	ev := session.Event{Type: session.EventType(in.req.Type), Value: in.req.Value}
	next, render, err := session.Reduce(state, ev)
	if err != nil {
		if h.log != nil {
			h.log.Debugw("ws_event_rejected", "err", err, "type", in.req.Type)
		}
		return state, h.writeError(conn, err.Error())
	}

	if ev.Type == session.EventConvert {
		if render.Record == nil {
			h.services.RejectInput()
		} else {
			conv, err := h.services.Record(ctx, converter.Result{Record: *render.Record, Display: next.Output})
			if err != nil {
				if h.log != nil {
					h.log.Errorw("ws_history_append_failed", "err", err)
				}
				return state, h.writeError(conn, errRecordHistory)
			}
			render.Record = &conv.Record
		}
	}

	return next, h.writeEnvelope(conn, wsEnvelope{Type: wsTypeRender, Data: render})
}

// sendHistory writes the whole history. A failed lookup is reported to the
// client and the session stays open.
func (h *Handler) sendHistory(ctx context.Context, conn *websocket.Conn) error {
	records, err := h.services.All(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_history_list_failed", "err", err)
		}
		return h.writeError(conn, errLoadHistory)
	}
	return h.writeEnvelope(conn, wsEnvelope{Type: wsTypeHistory, Data: newHistoryEntries(records)})
}

func (h *Handler) writeError(conn *websocket.Conn, msg string) error {
	return h.writeEnvelope(conn, wsEnvelope{Type: wsTypeError, Error: msg})
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
