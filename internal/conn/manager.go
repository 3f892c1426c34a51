// Package conn owns the single live event connection to a game room. It
// never touches the Session directly: everything it learns is submitted to
// the dispatcher as actions.
package conn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/misteriogame/misterio-client/internal/session"
	"github.com/misteriogame/misterio-client/internal/wire"
)

// Dispatcher is the store's dispatch surface; the manager only submits
// actions through it.
type Dispatcher interface {
	Dispatch(session.Action)
}

// Transport is one open event channel. Read blocks for the next frame.
type Transport interface {
	Read(ctx context.Context) ([]byte, error)
	Close() error
}

// DialFunc opens a Transport. Injectable so tests can fake the wire.
type DialFunc func(ctx context.Context, url string) (Transport, error)

type wsTransport struct {
	conn *websocket.Conn
}

func (t *wsTransport) Read(ctx context.Context) ([]byte, error) {
	_, data, err := t.conn.Read(ctx)
	return data, err
}

func (t *wsTransport) Close() error {
	return t.conn.Close(websocket.StatusNormalClosure, "bye")
}

func dialWebsocket(ctx context.Context, url string) (Transport, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &wsTransport{conn: c}, nil
}

type liveConn struct {
	id        string
	transport Transport
	cancel    context.CancelFunc
}

// Manager holds at most one live connection at a time. It is an explicitly
// owned handle, not a process-wide singleton, so independent sessions can
// coexist in one process.
type Manager struct {
	baseURL    string
	dispatcher Dispatcher
	dial       DialFunc
	log        *zap.Logger

	mu      sync.Mutex
	current *liveConn
}

func NewManager(baseURL string, d Dispatcher, log *zap.Logger) *Manager {
	return &Manager{
		baseURL:    baseURL,
		dispatcher: d,
		dial:       dialWebsocket,
		log:        log,
	}
}

// NewManagerWithDial is for tests that fake the transport.
func NewManagerWithDial(baseURL string, d Dispatcher, dial DialFunc, log *zap.Logger) *Manager {
	m := NewManager(baseURL, d, log)
	m.dial = dial
	return m
}

// Connect opens the event channel for (roomID, playerID). Any existing
// connection is torn down synchronously before the new dial, so there is
// never more than one live connection and never a leak across repeated
// calls.
func (m *Manager) Connect(ctx context.Context, roomID string, playerID int) error {
	m.mu.Lock()
	if m.current != nil {
		m.teardownLocked()
	}

	url := fmt.Sprintf("%s/ws/game/%s?player=%d", m.baseURL, roomID, playerID)
	transport, err := m.dial(ctx, url)
	if err != nil {
		m.mu.Unlock()
		m.log.Error("dial failed", zap.String("room", roomID), zap.Error(err))
		m.dispatcher.Dispatch(session.ConnectionLost{})
		return fmt.Errorf("connecting to room %s: %w", roomID, err)
	}

	readCtx, cancel := context.WithCancel(context.Background())
	lc := &liveConn{
		id:        uuid.NewString(),
		transport: transport,
		cancel:    cancel,
	}
	m.current = lc
	m.mu.Unlock()

	m.dispatcher.Dispatch(session.ConnectionEstablished{RoomID: roomID, PlayerID: playerID})
	m.log.Info("connected", zap.String("room", roomID), zap.Int("player", playerID), zap.String("conn", lc.id))

	go m.readLoop(readCtx, lc)
	return nil
}

// Disconnect is idempotent: with no live connection it is a no-op.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	m.teardownLocked()
	m.mu.Unlock()

	m.dispatcher.Dispatch(session.ConnectionLost{})
}

func (m *Manager) teardownLocked() {
	m.current.cancel()
	if err := m.current.transport.Close(); err != nil {
		m.log.Debug("close failed", zap.Error(err))
	}
	m.current = nil
}

func (m *Manager) readLoop(ctx context.Context, lc *liveConn) {
	for {
		data, err := lc.transport.Read(ctx)
		if err != nil {
			if m.dropIfCurrent(lc) {
				// No auto-retry: the drop is surfaced passively and the
				// caller decides whether to reconnect.
				if !errors.Is(err, context.Canceled) {
					m.log.Warn("connection lost", zap.String("conn", lc.id), zap.Error(err))
				}
				m.dispatcher.Dispatch(session.ConnectionLost{})
			}
			return
		}

		var env wire.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			m.log.Warn("bad frame", zap.Error(err))
			continue
		}

		action, err := wire.Decode(env)
		if err != nil {
			m.log.Warn("undecodable event", zap.String("event", env.Type), zap.Error(err))
			continue
		}
		if action == nil {
			m.log.Debug("unknown event skipped", zap.String("event", env.Type))
			continue
		}
		m.dispatcher.Dispatch(action)
	}
}

// dropIfCurrent clears the live connection if lc still owns it. A stale read
// loop from a replaced connection must not report anything.
func (m *Manager) dropIfCurrent(lc *liveConn) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != lc {
		return false
	}
	m.current = nil
	return true
}
