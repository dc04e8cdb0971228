package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/mapview"
	"github.com/ChicagoDave/solaris/pkg/scene"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

const (
	writeWait = 5 * time.Second
	// maxMessageSize bounds inbound event frames.
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// The server is a local tool; any page may drive it.
		return true
	},
}

// Inbound event types.
const (
	eventPointerDown  = "pointerdown"
	eventPointerMove  = "pointermove"
	eventPointerUp    = "pointerup"
	eventPointerLeave = "pointerleave"
	eventWheel        = "wheel"
	eventClick        = "click"
	eventSelect       = "select"
)

// Outbound message types.
const (
	msgHello  = "hello"
	msgFrame  = "frame"
	msgSelect = "select"
	msgError  = "error"
)

// event is a pointer or selection event from the page. X and Y are client
// pixels relative to the map element, W and H its client size.
type event struct {
	Type      string             `json:"type"`
	X         float64            `json:"x"`
	Y         float64            `json:"y"`
	W         float64            `json:"w"`
	H         float64            `json:"h"`
	Delta     float64            `json:"delta"`
	Selection viewport.Selection `json:"selection"`
}

// message is pushed to the page.
type message struct {
	Type      string             `json:"type"`
	Session   string             `json:"session,omitempty"`
	Viewport  viewport.Viewport  `json:"viewport"`
	Selection viewport.Selection `json:"selection"`
	Hover     viewport.Selection `json:"hover"`
	Tilt      scene.Tilt         `json:"tilt"`
	Animating bool               `json:"animating"`
	Panel     *mapview.Panel     `json:"panel,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// hub tracks live sessions.
type hub struct {
	mu       sync.Mutex
	sessions map[string]context.CancelFunc
}

func newHub() *hub {
	return &hub{sessions: make(map[string]context.CancelFunc)}
}

func (h *hub) add(id string, cancel context.CancelFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[id] = cancel
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, cancel := range h.sessions {
		cancel()
		delete(h.sessions, id)
	}
}

// session is one connected page with its own view of the map. The view is
// only touched by the run loop.
type session struct {
	id       string
	conn     *websocket.Conn
	view     *mapview.View
	log      *zap.SugaredLogger
	interval time.Duration
	dirty    bool
	moving   bool
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	s.sessions.add(id, cancel)
	defer func() {
		cancel()
		s.sessions.remove(id)
		conn.Close()
	}()

	sess := &session{
		id:       id,
		conn:     conn,
		log:      s.log.With("session", id),
		interval: s.frameInterval,
	}
	sess.view = mapview.New(s.atlas, sess.selected)
	sess.log.Infow("session opened", "remote", r.RemoteAddr, "live", s.sessions.count())
	sess.run(ctx)
	sess.log.Infow("session closed")
}

// selected is the view's OnSelect callback. The session owns the selection,
// so it accepts every selection made on the map.
func (sess *session) selected(sel viewport.Selection) {
	sess.view.SetSelection(sel)
	sess.dirty = true
	if err := sess.send(sess.selectMessage()); err != nil {
		sess.log.Debugw("send select", "error", err)
	}
}

func (sess *session) run(ctx context.Context) {
	events := make(chan event)
	go sess.readLoop(ctx, events)

	ticker := time.NewTicker(sess.interval)
	defer ticker.Stop()
	last := time.Now()

	if err := sess.send(sess.frame(msgHello)); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			sess.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			sess.apply(ev)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			animating := sess.view.Tick(dt)
			// One frame after the animation stops reports it at rest.
			if !animating && !sess.dirty && !sess.moving {
				continue
			}
			sess.dirty = false
			sess.moving = animating
			if err := sess.send(sess.frame(msgFrame)); err != nil {
				sess.log.Debugw("send frame", "error", err)
				return
			}
		}
	}
}

func (sess *session) readLoop(ctx context.Context, events chan<- event) {
	defer close(events)
	sess.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warnw("websocket read", "error", err)
			}
			return
		}
		var ev event
		if err := json.Unmarshal(data, &ev); err != nil {
			sess.log.Debugw("malformed event", "error", err)
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// apply routes one page event to the view.
func (sess *session) apply(ev event) {
	v := sess.view
	p := v.Controller().ClientToCanvas(geo.Pt(ev.X, ev.Y), ev.W, ev.H)
	switch ev.Type {
	case eventPointerDown:
		v.PointerDown(p)
	case eventPointerMove:
		v.PointerMove(p)
	case eventPointerUp:
		v.PointerUp()
	case eventPointerLeave:
		v.PointerLeave()
	case eventWheel:
		v.Wheel(p, ev.Delta)
	case eventClick:
		v.Click(p)
	case eventSelect:
		sess.selected(ev.Selection)
	default:
		sess.send(message{Type: msgError, Error: "unknown event " + ev.Type})
		return
	}
	sess.dirty = true
}

func (sess *session) frame(kind string) message {
	v := sess.view
	return message{
		Type:      kind,
		Session:   sess.id,
		Viewport:  v.Controller().Current(),
		Selection: v.Selection(),
		Hover:     v.Hover(),
		Tilt:      v.Tilt(),
		Animating: v.Controller().Animating(),
	}
}

func (sess *session) selectMessage() message {
	m := sess.frame(msgSelect)
	panel := sess.view.Panel()
	m.Panel = &panel
	return m
}

func (sess *session) send(m message) error {
	sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return sess.conn.WriteJSON(m)
}
