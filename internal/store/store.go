// Package store runs the dispatch loop that owns the Session. All mutation
// goes through Dispatch; actions are applied one at a time in dispatch
// order, so reducer invocations never interleave.
package store

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/misteriogame/misterio-client/internal/session"
)

type Msg interface{ isStoreMsg() }

type dispatchMsg struct {
	action session.Action
}

type subscribeMsg struct {
	id     string
	outbox chan Snapshot
}

type unsubscribeMsg struct{ id string }

type getViewMsg struct {
	reply chan View
}

type shutdownMsg struct{}

func (dispatchMsg) isStoreMsg()    {}
func (subscribeMsg) isStoreMsg()   {}
func (unsubscribeMsg) isStoreMsg() {}
func (getViewMsg) isStoreMsg()     {}
func (shutdownMsg) isStoreMsg()    {}

// Snapshot is what subscribers receive after every applied action.
type Snapshot struct {
	Version int
	State   session.Session
}

// View reflects the store internals without data races.
type View struct {
	Version        int
	NumSubscribers int
	State          session.Session
}

type Store struct {
	inbox   chan Msg
	state   session.Session
	version int
	subs    map[string]chan Snapshot
	ctx     context.Context
	cancel  context.CancelFunc
	closed  atomic.Bool
	done    chan struct{}
	log     *zap.Logger
}

func New(parent context.Context, log *zap.Logger) *Store {
	ctx, cancel := context.WithCancel(parent)
	s := &Store{
		inbox:  make(chan Msg, 64),
		state:  session.NewEmptySession(),
		subs:   make(map[string]chan Snapshot),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		log:    log,
	}
	go s.loop()
	return s
}

// Dispatch submits one action. Calling it on a closed store is a wiring bug
// and panics rather than silently dropping the action. The done channel
// covers the race with a concurrent Close: a late dispatch must fail fast,
// never block on a loop that has already exited.
func (s *Store) Dispatch(a session.Action) {
	if s == nil {
		panic("store: Dispatch on nil Store")
	}
	if s.closed.Load() {
		panic("store: Dispatch after Close")
	}
	select {
	case s.inbox <- dispatchMsg{action: a}:
	case <-s.done:
		panic("store: Dispatch after Close")
	}
}

// Subscribe registers an outbox for snapshots. The current state is sent
// immediately so new subscribers never start blind.
func (s *Store) Subscribe(id string, outbox chan Snapshot) {
	if s.closed.Load() {
		panic("store: Subscribe after Close")
	}
	select {
	case s.inbox <- subscribeMsg{id: id, outbox: outbox}:
	case <-s.done:
		panic("store: Subscribe after Close")
	}
}

func (s *Store) Unsubscribe(id string) {
	if s.closed.Load() {
		return
	}
	select {
	case s.inbox <- unsubscribeMsg{id: id}:
	case <-s.done:
	}
}

func (s *Store) View() View {
	if s.closed.Load() {
		panic("store: View after Close")
	}
	reply := make(chan View, 1)
	select {
	case s.inbox <- getViewMsg{reply: reply}:
	case <-s.done:
		panic("store: View after Close")
	}
	select {
	case v := <-reply:
		return v
	case <-s.done:
		panic("store: View after Close")
	}
}

func (s *Store) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.inbox <- shutdownMsg{}
}

func (s *Store) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case dispatchMsg:
				s.state = session.Reduce(s.state, msg.action)
				s.version++
				s.log.Debug("action applied",
					zap.Int("version", s.version),
					zap.String("event", s.state.LastEvent))
				s.broadcast(Snapshot{Version: s.version, State: s.state})

			case subscribeMsg:
				s.subs[msg.id] = msg.outbox
				msg.outbox <- Snapshot{Version: s.version, State: s.state}

			case unsubscribeMsg:
				delete(s.subs, msg.id)

			case getViewMsg:
				msg.reply <- View{
					Version:        s.version,
					NumSubscribers: len(s.subs),
					State:          s.state,
				}

			case shutdownMsg:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Store) shutdown() {
	s.closed.Store(true)
	close(s.done)
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.cancel()
}

func (s *Store) broadcast(snap Snapshot) {
	for id, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Subscriber is slow/full - drop them.
			s.log.Warn("dropping slow subscriber", zap.String("id", id))
			close(ch)
			delete(s.subs, id)
		}
	}
}
