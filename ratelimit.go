package main

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	actionCooldown     = 250 * time.Millisecond
	chatCooldown       = 1200 * time.Millisecond
	createJoinCooldown = 1500 * time.Millisecond
)

type rateKind int

const (
	rateAction rateKind = iota
	rateChat
	rateCreateJoin
)

// rateGuard gates each message kind behind a per-session cooldown.
// A denied call leaves no trace; the whole action is dropped, never
// queued or retried.
type rateGuard struct {
	action     *rate.Limiter
	chat       *rate.Limiter
	createJoin *rate.Limiter
}

func newRateGuard(action, chat, createJoin time.Duration) *rateGuard {
	return &rateGuard{
		action:     rate.NewLimiter(rate.Every(action), 1),
		chat:       rate.NewLimiter(rate.Every(chat), 1),
		createJoin: rate.NewLimiter(rate.Every(createJoin), 1),
	}
}

func (g *rateGuard) allow(kind rateKind) bool {
	switch kind {
	case rateChat:
		return g.chat.Allow()
	case rateCreateJoin:
		return g.createJoin.Allow()
	default:
		return g.action.Allow()
	}
}
