// Package wsfeed streams engine frame snapshots to websocket subscribers.
package wsfeed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tweenbox/internal/domain/stage"
)

// Frame is one broadcast snapshot of the stage.
type Frame struct {
	T       int64             `json:"t"`
	FrameID uint64            `json:"frame_id"`
	Nodes   []stage.NodeState `json:"nodes"`
}

// subscription represents a subscriber's connection.
type subscription struct {
	id   string
	conn *websocket.Conn
}

// Feed manages websocket subscriptions and frame broadcasting.
// Broadcast must be called from a single goroutine; websocket
// connections allow only one concurrent writer.
type Feed struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription
	writeTimeout  time.Duration
	upgrader      websocket.Upgrader
	closed        bool
}

// New creates a feed with the given per-subscriber write timeout.
func New(writeTimeout time.Duration) *Feed {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Feed{
		subscriptions: make(map[string]*subscription),
		writeTimeout:  writeTimeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades the request and registers the connection as a
// subscriber. A reader goroutine drains the connection so closes are
// noticed and the subscription removed.
func (f *Feed) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zlog.Debug().Msgf("websocket upgrade failed: %v", err)
		return
	}

	id, ok := f.subscribe(conn)
	if !ok {
		conn.Close()
		return
	}
	zlog.Info().Msgf("feed subscriber connected: id=%s remote=%s", id, conn.RemoteAddr())

	go func() {
		defer func() {
			f.unsubscribe(id)
			conn.Close()
			zlog.Info().Msgf("feed subscriber disconnected: id=%s", id)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// subscribe adds a connection and returns the subscription ID.
func (f *Feed) subscribe(conn *websocket.Conn) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return "", false
	}

	id := uuid.New().String()
	f.subscriptions[id] = &subscription{
		id:   id,
		conn: conn,
	}
	return id, true
}

// unsubscribe removes a subscription.
func (f *Feed) unsubscribe(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subscriptions, id)
}

// Broadcast sends the frame to all subscribers. The frame is marshaled
// once; write errors are left to the reader goroutine to clean up on
// its next read failure.
func (f *Feed) Broadcast(frame Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		zlog.Error().Msgf("failed to marshal frame: %v", err)
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, sub := range f.subscriptions {
		sub.conn.SetWriteDeadline(time.Now().Add(f.writeTimeout))
		if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			zlog.Debug().Msgf("failed to write frame: id=%s err=%v", sub.id, err)
		}
	}
}

// SubscriberCount returns the number of connected subscribers.
func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscriptions)
}

// Close closes all subscriber connections and rejects new ones.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true

	for id, sub := range f.subscriptions {
		sub.conn.SetWriteDeadline(time.Now().Add(f.writeTimeout))
		sub.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutting down"))
		sub.conn.Close()
		delete(f.subscriptions, id)
	}
}
