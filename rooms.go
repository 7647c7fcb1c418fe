package main

import (
	"context"
	"crypto/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/julienschmidt/httprouter"
)

const (
	codeLength     = 4
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ" // no I or O; too easy to misread
	roomListLimit  = 50
	minPasscodeLen = 2
	minPlayers     = 2
)

type Phase string

const (
	phaseLobby        Phase = "lobby"
	phaseChooseJob    Phase = "chooseJob"
	phaseChooseTraits Phase = "chooseTraits"
	phaseReveal       Phase = "reveal"
	phaseAssignTwists Phase = "assignTwists" // legacy alternate path, see assignTwist
	phaseJudge        Phase = "judge"
)

// Player is the per-room view of a session: display name, private hand
// and running score. Score persists across rounds, not across rooms.
type Player struct {
	Name  string
	Hand  []string
	Score int
}

// Submission is a candidate's locked choice of exactly three traits.
// The traits leave the candidate's hand the moment it is created.
type Submission struct {
	Traits []string
	Winner bool
}

type decks struct {
	jobs   []string
	traits []string
	twists []string
}

// Room is the authoritative state of one game. All access goes through
// the Engine mutex; nothing here locks on its own.
type Room struct {
	code      string
	isPrivate bool
	passHash  string
	hostID    string

	players map[string]*Player
	seats   []string // live roster in join order
	order   []string // roster snapshot taken at round start

	phase          Phase
	round          int
	interviewerIdx int
	interviewerID  string
	currentJob     string

	decks       decks
	jobOptions  []string
	twistBank   []string
	submissions map[string]*Submission
	twists      map[string]string // candidate id -> assigned twist

	stageOrder []string
	stageIndex int
	currentID  string // on-stage candidate, empty outside reveal
	revealed   map[string][]string

	createdAt  time.Time
	lastActive time.Time
}

func newRoom(code string, isPrivate bool, passHash, hostID string) *Room {
	now := time.Now()
	return &Room{
		code:        code,
		isPrivate:   isPrivate,
		passHash:    passHash,
		hostID:      hostID,
		players:     make(map[string]*Player),
		phase:       phaseLobby,
		submissions: make(map[string]*Submission),
		twists:      make(map[string]string),
		revealed:    make(map[string][]string),
		createdAt:   now,
		lastActive:  now,
	}
}

func (r *Room) touch() {
	r.lastActive = time.Now()
}

// Engine owns every live room and every connected session. One mutex
// serializes all inbound actions end to end, so per-room mutation is
// atomic by construction; broadcasts only enqueue onto session send
// buffers and never block under the lock.
type Engine struct {
	cfg *Config

	mu       sync.Mutex
	rooms    map[string]*Room
	sessions map[string]*Session
}

func newEngine(cfg *Config) *Engine {
	return &Engine{
		cfg:      cfg,
		rooms:    make(map[string]*Room),
		sessions: make(map[string]*Session),
	}
}

// registerInterviewGame wires the game into the router and starts the
// idle-room sweep.
func registerInterviewGame(ctx context.Context, cfg *Config, mux *httprouter.Router) {
	e := newEngine(cfg)

	go e.sweepLoop(ctx)

	mux.GET(cfg.prefix+"/ws", serveWS(cfg, e))
	mux.GET(cfg.prefix+"/room/:code/qr", serveRoomQR(cfg, e))
}

func (e *Engine) Connect(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sessions[s.id] = s
	s.push(roomListMessage{Type: "roomList", Rooms: e.roomListLocked()})

	logf(e.cfg, "GAMES: Session %s connected", s.id)
}

// Disconnect runs through the same serialized path as every gameplay
// action, so it cannot race with an in-flight message for the same room.
func (e *Engine) Disconnect(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.leaveLocked(s)
	delete(e.sessions, s.id)
	close(s.send)

	logf(e.cfg, "GAMES: Session %s disconnected", s.id)
}

func (e *Engine) SetName(s *Session, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	clean := sanitizeName(name)
	if clean == "" {
		return
	}
	s.name = clean
}

func (e *Engine) CreateRoom(s *Session, isPrivate bool, passcode string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.rooms) >= e.cfg.maxRooms {
		s.push(reasonMessage{Type: "createError", Reason: "Room capacity reached. Try again later."})
		return
	}

	pass := strings.TrimSpace(passcode)
	if isPrivate && len(pass) < minPasscodeLen {
		s.push(reasonMessage{Type: "createError", Reason: "Private rooms need a passcode (min 2 chars)."})
		return
	}

	var passHash string
	if isPrivate {
		hash, err := argon2id.CreateHash(pass, argon2id.DefaultParams)
		if err != nil {
			s.push(reasonMessage{Type: "createError", Reason: "Could not create the room. Try again."})
			return
		}
		passHash = hash
	}

	e.leaveLocked(s)

	code := e.makeCodeLocked()
	r := newRoom(code, isPrivate, passHash, s.id)
	r.players[s.id] = &Player{Name: s.name}
	r.seats = []string{s.id}
	e.rooms[code] = r
	s.room = code

	logf(e.cfg, "GAMES: %q created room %s", s.name, code)

	s.push(roomCreatedMessage{Type: "roomCreated", Room: code})
	e.broadcastLobbyLocked(r)
	e.broadcastRoomListLocked()
}

func (e *Engine) JoinRoom(s *Session, code, passcode string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	code = strings.ToUpper(sanitize(strings.TrimSpace(code)))

	r := e.rooms[code]
	if r == nil {
		s.push(reasonMessage{Type: "joinError", Reason: "Room not found."})
		return
	}
	if r.isPrivate {
		match, err := argon2id.ComparePasswordAndHash(strings.TrimSpace(passcode), r.passHash)
		if err != nil || !match {
			s.push(reasonMessage{Type: "joinError", Reason: "Wrong passcode."})
			return
		}
	}
	if r.phase != phaseLobby {
		s.push(reasonMessage{Type: "joinError", Reason: "That game already started."})
		return
	}
	if len(r.seats) >= e.cfg.maxPlayers {
		s.push(reasonMessage{Type: "joinError", Reason: "Room is full."})
		return
	}

	e.leaveLocked(s)

	r.players[s.id] = &Player{Name: s.name}
	r.seats = append(r.seats, s.id)
	r.order = slices.Clone(r.seats)
	s.room = code
	r.touch()

	logf(e.cfg, "GAMES: %q joined room %s", s.name, code)

	s.push(joinedMessage{Type: "joined", Room: code, IsHost: s.id == r.hostID})
	e.broadcastLobbyLocked(r)
	e.broadcastRoomListLocked()
}

func (e *Engine) ListRooms(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s.push(roomListMessage{Type: "roomList", Rooms: e.roomListLocked()})
}

func (e *Engine) roomOfLocked(s *Session) *Room {
	if s.room == "" {
		return nil
	}
	return e.rooms[s.room]
}

// leaveLocked removes the session from whatever room it occupies,
// running the full recovery path: host handoff, interviewer-departure
// round restart, and on-stage candidate advancement.
func (e *Engine) leaveLocked(s *Session) {
	code := s.room
	s.room = ""
	if code == "" {
		return
	}

	r := e.rooms[code]
	if r == nil {
		return
	}
	p := r.players[s.id]
	if p == nil {
		return
	}

	wasInterviewer := s.id == r.interviewerID
	wasOnStage := r.phase == phaseReveal && s.id == r.currentID
	name := p.Name

	delete(r.players, s.id)
	r.seats = slices.DeleteFunc(r.seats, func(id string) bool { return id == s.id })
	delete(r.submissions, s.id)
	delete(r.twists, s.id)
	delete(r.revealed, s.id)

	e.chatLocked(r, systemName, name+" left.")

	if len(r.seats) == 0 {
		delete(e.rooms, code)
		e.broadcastRoomListLocked()
		logf(e.cfg, "GAMES: Room %s emptied and removed", code)
		return
	}

	if r.hostID == s.id {
		r.hostID = r.seats[0]
		e.chatLocked(r, systemName, r.players[r.hostID].Name+" is the new host.")
	}

	r.order = slices.Clone(r.seats)

	if wasInterviewer {
		r.interviewerIdx = r.interviewerIdx % len(r.order)
		e.prepareRoundLocked(r)
		e.chatLocked(r, systemName, "New round – Interviewer: "+r.players[r.interviewerID].Name)
	}

	if wasOnStage {
		r.stageOrder = slices.DeleteFunc(r.stageOrder, func(id string) bool { return id == s.id })
		if len(r.stageOrder) == 0 {
			r.phase = phaseJudge
			r.currentID = ""
		} else {
			if r.stageIndex >= len(r.stageOrder) {
				r.stageIndex = len(r.stageOrder) - 1
			}
			r.currentID = r.stageOrder[r.stageIndex]
		}
	}

	r.touch()
	e.broadcastLobbyLocked(r)
	e.broadcastGameLocked(r)
	e.broadcastRoomListLocked()
}

func (e *Engine) makeCodeLocked() string {
	buf := make([]byte, codeLength)
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}

		out := make([]byte, codeLength)
		for i := range out {
			out[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
		}
		code := string(out)

		if _, exists := e.rooms[code]; !exists {
			return code
		}
	}
}

func (e *Engine) roomListLocked() []roomSummary {
	list := make([]roomSummary, 0, len(e.rooms))
	for code, r := range e.rooms {
		if r.isPrivate {
			continue
		}
		list = append(list, roomSummary{
			Code:      code,
			Players:   len(r.seats),
			Phase:     r.phase,
			Round:     r.round,
			CreatedAt: r.createdAt.UnixMilli(),
		})
	}

	slices.SortFunc(list, func(a, b roomSummary) int {
		switch {
		case a.CreatedAt > b.CreatedAt:
			return -1
		case a.CreatedAt < b.CreatedAt:
			return 1
		default:
			return strings.Compare(a.Code, b.Code)
		}
	})

	if len(list) > roomListLimit {
		list = list[:roomListLimit]
	}
	return list
}

func (e *Engine) hasRoom(code string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.rooms[code]
	return ok
}

// sweep is the only source of room garbage collection; there is no
// explicit close-room action.
func (e *Engine) sweep() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := time.Now().Add(-e.cfg.roomIdleTimeout)
	for code, r := range e.rooms {
		if len(r.seats) == 0 || r.lastActive.Before(cutoff) {
			delete(e.rooms, code)
			logf(e.cfg, "GAMES: Reaped room %s", code)
		}
	}

	e.broadcastRoomListLocked()
}

func (e *Engine) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweep()
		}
	}
}

func (e *Engine) broadcastRoomListLocked() {
	msg := roomListMessage{Type: "roomList", Rooms: e.roomListLocked()}
	for _, s := range e.sessions {
		s.push(msg)
	}
}

func (e *Engine) broadcastLobbyLocked(r *Room) {
	msg := lobbyView(r)
	for _, id := range r.seats {
		if s := e.sessions[id]; s != nil {
			s.push(msg)
		}
	}
}

func (e *Engine) broadcastGameLocked(r *Room) {
	for _, id := range r.seats {
		if s := e.sessions[id]; s != nil {
			s.push(gameView(r, id))
		}
	}
}

func (e *Engine) chatLocked(r *Room, name, msg string) {
	cm := chatMessage{Type: "chat", Name: name, Msg: msg}
	for _, id := range r.seats {
		if s := e.sessions[id]; s != nil {
			s.push(cm)
		}
	}
}
