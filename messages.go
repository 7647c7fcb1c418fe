package main

import (
	"strings"
)

const (
	maxNameLen = 24
	maxChatLen = 300

	systemName = "SYSTEM"
)

// Messages coming from clients. Every inbound action is one of these,
// discriminated by Type; unknown types are dropped at the boundary.
type clientMessage struct {
	Type      string   `json:"type"`                // see dispatch in session.go
	Name      string   `json:"name,omitempty"`      // setName
	Room      string   `json:"room,omitempty"`      // joinRoom
	Passcode  string   `json:"passcode,omitempty"`  // createRoom / joinRoom
	IsPrivate bool     `json:"isPrivate,omitempty"` // createRoom
	Job       string   `json:"job,omitempty"`       // pickJob
	Traits    []string `json:"traits,omitempty"`    // submitTraits
	Trait     string   `json:"trait,omitempty"`     // revealTrait
	TargetID  string   `json:"targetId,omitempty"`  // assignTwist
	Twist     string   `json:"twist,omitempty"`     // assignTwist
	WinnerID  string   `json:"winnerId,omitempty"`  // selectWinner
	Message   string   `json:"message,omitempty"`   // chat
}

type roomCreatedMessage struct {
	Type string `json:"type"` // "roomCreated"
	Room string `json:"room"`
}

type joinedMessage struct {
	Type   string `json:"type"` // "joined"
	Room   string `json:"room"`
	IsHost bool   `json:"isHost"`
}

// reasonMessage carries a human-readable reason for create/join failures.
// Game-logic rejections never produce one; they are silent.
type reasonMessage struct {
	Type   string `json:"type"` // "createError" | "joinError"
	Reason string `json:"reason"`
}

type roomSummary struct {
	Code      string `json:"code"`
	Players   int    `json:"players"`
	Phase     Phase  `json:"phase"`
	Round     int    `json:"round"`
	CreatedAt int64  `json:"createdAt"`
}

type roomListMessage struct {
	Type  string        `json:"type"` // "roomList"
	Rooms []roomSummary `json:"rooms"`
}

type chatMessage struct {
	Type string `json:"type"` // "chat"
	Name string `json:"name"`
	Msg  string `json:"msg"`
}

type lobbyPlayer struct {
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
	Score  int    `json:"score"`
}

type lobbyStateMessage struct {
	Type    string                 `json:"type"` // "lobbyState"
	Players map[string]lobbyPlayer `json:"players"`
}

// sanitize strips control characters and escapes angle brackets, so
// names and chat lines are safe to interpolate into markup.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r < 0x20:
			// control characters are dropped outright
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func sanitizeName(s string) string {
	return sanitize(truncate(strings.TrimSpace(s), maxNameLen))
}

func sanitizeChat(s string) string {
	return sanitize(truncate(s, maxChatLen))
}
