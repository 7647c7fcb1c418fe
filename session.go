package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

const sendBuffer = 32

// Session is the ephemeral identity of one websocket connection. It is
// created on connect, destroyed on disconnect, and belongs to at most
// one room at a time. The room field is only touched under the Engine
// mutex.
type Session struct {
	id    string
	name  string
	room  string
	conn  *websocket.Conn
	send  chan any
	guard *rateGuard
}

func newSession(conn *websocket.Conn) *Session {
	id := uuid.NewString()
	return &Session{
		id:    id,
		name:  "Player-" + id[:4],
		conn:  conn,
		send:  make(chan any, sendBuffer),
		guard: newRateGuard(actionCooldown, chatCooldown, createJoinCooldown),
	}
}

// push queues an outbound message without blocking. A session that
// cannot keep up loses frames rather than stalling the engine.
func (s *Session) push(msg any) {
	select {
	case s.send <- msg:
	default:
	}
}

func (s *Session) readPump(e *Engine) {
	defer func() {
		e.Disconnect(s)
		_ = s.conn.Close()
	}()

	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}
		e.Dispatch(s, msg)
	}
}

func (s *Session) writePump() {
	defer s.conn.Close()

	for msg := range s.send {
		if err := s.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// Dispatch routes one inbound action through the rate guard and into
// the engine. Rate-limited create/join report a reason; every other
// denial is silent.
func (e *Engine) Dispatch(s *Session, msg clientMessage) {
	switch msg.Type {
	case "setName":
		if !s.guard.allow(rateAction) {
			return
		}
		e.SetName(s, msg.Name)
	case "createRoom":
		if !s.guard.allow(rateCreateJoin) {
			s.push(reasonMessage{Type: "createError", Reason: "Slow down a bit before creating again."})
			return
		}
		e.CreateRoom(s, msg.IsPrivate, msg.Passcode)
	case "joinRoom":
		if !s.guard.allow(rateCreateJoin) {
			s.push(reasonMessage{Type: "joinError", Reason: "Slow down a bit before joining again."})
			return
		}
		e.JoinRoom(s, msg.Room, msg.Passcode)
	case "listRooms":
		if !s.guard.allow(rateAction) {
			return
		}
		e.ListRooms(s)
	case "startGame":
		if !s.guard.allow(rateAction) {
			return
		}
		e.StartGame(s)
	case "pickJob":
		if !s.guard.allow(rateAction) {
			return
		}
		e.PickJob(s, msg.Job)
	case "submitTraits":
		if !s.guard.allow(rateAction) {
			return
		}
		e.SubmitTraits(s, msg.Traits)
	case "revealTrait":
		if !s.guard.allow(rateAction) {
			return
		}
		e.RevealTrait(s, msg.Trait)
	case "assignTwist":
		if !s.guard.allow(rateAction) {
			return
		}
		e.AssignTwist(s, msg.TargetID, msg.Twist)
	case "endTurn":
		if !s.guard.allow(rateAction) {
			return
		}
		e.EndTurn(s)
	case "selectWinner":
		if !s.guard.allow(rateAction) {
			return
		}
		e.SelectWinner(s, msg.WinnerID)
	case "nextRound":
		if !s.guard.allow(rateAction) {
			return
		}
		e.NextRound(s)
	case "chat":
		if !s.guard.allow(rateChat) {
			return
		}
		e.Chat(s, msg.Message)
	default:
		// unknown types are dropped
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, e *Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "SERVE: Upgrade error from %s: %v", realIP(r), err)
			return
		}

		s := newSession(conn)
		e.Connect(s)

		go s.writePump()
		s.readPump(e)
	}
}
