package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		maxPlayers:      12,
		maxRooms:        200,
		roomIdleTimeout: 45 * time.Minute,
		sweepInterval:   time.Minute,
	}
}

func newTestEngine() *Engine {
	return newEngine(testConfig())
}

// newTestSession builds a session with no websocket behind it; outbound
// messages pile up in the send buffer where tests can inspect them.
func newTestSession(name string) *Session {
	id := uuid.NewString()
	return &Session{
		id:    id,
		name:  name,
		send:  make(chan any, 256),
		guard: newRateGuard(time.Nanosecond, time.Nanosecond, time.Nanosecond),
	}
}

func drain(s *Session) {
	for {
		select {
		case <-s.send:
		default:
			return
		}
	}
}

// lastMessage empties the session's send buffer and returns the most
// recent message of type T.
func lastMessage[T any](s *Session) (T, bool) {
	var out T
	found := false
	for {
		select {
		case m := <-s.send:
			if v, ok := m.(T); ok {
				out = v
				found = true
			}
		default:
			return out, found
		}
	}
}

// setupRoom connects three sessions and gathers them into one public
// room, host first.
func setupRoom(t *testing.T, e *Engine) (host, p2, p3 *Session, r *Room) {
	t.Helper()

	host = newTestSession("P1")
	p2 = newTestSession("P2")
	p3 = newTestSession("P3")
	e.Connect(host)
	e.Connect(p2)
	e.Connect(p3)

	e.CreateRoom(host, false, "")
	created, ok := lastMessage[roomCreatedMessage](host)
	require.True(t, ok)

	e.JoinRoom(p2, created.Room, "")
	e.JoinRoom(p3, created.Room, "")

	r = e.rooms[created.Room]
	require.NotNil(t, r)
	require.Len(t, r.seats, 3)

	drain(host)
	drain(p2)
	drain(p3)

	return host, p2, p3, r
}

// startedRoom returns a room advanced past start-game, with the host
// as interviewer in round one.
func startedRoom(t *testing.T, e *Engine) (host, p2, p3 *Session, r *Room) {
	t.Helper()

	host, p2, p3, r = setupRoom(t, e)
	e.StartGame(host)
	require.Equal(t, phaseChooseJob, r.phase)

	return host, p2, p3, r
}

// submitFirstThree locks the first three cards of the player's hand.
func submitFirstThree(t *testing.T, e *Engine, s *Session, r *Room) []string {
	t.Helper()

	hand := r.players[s.id].Hand
	require.GreaterOrEqual(t, len(hand), submissionSize)

	picks := append([]string(nil), hand[:submissionSize]...)
	e.SubmitTraits(s, picks)
	require.NotNil(t, r.submissions[s.id])

	return picks
}

// revealAll reveals every locked trait of the current candidate.
func revealAll(t *testing.T, e *Engine, s *Session, r *Room) {
	t.Helper()

	sub := r.submissions[s.id]
	require.NotNil(t, sub)
	for _, trait := range sub.Traits {
		e.RevealTrait(s, trait)
	}
	require.Len(t, r.revealed[s.id], submissionSize)
}
