package main

import (
	"slices"
)

type publicSubmission struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Traits []string `json:"traits"` // revealed traits only
	Twist  string   `json:"twist,omitempty"`
	Winner bool     `json:"winner"`
}

type gamePlayer struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type gameStateMessage struct {
	Type                  string                      `json:"type"` // "gameState"
	Phase                 Phase                       `json:"phase"`
	Round                 int                         `json:"round"`
	InterviewerID         string                      `json:"interviewerId"`
	InterviewerName       string                      `json:"interviewerName"`
	CurrentJob            string                      `json:"currentJob,omitempty"`
	Submissions           map[string]publicSubmission `json:"submissions"`
	Players               map[string]gamePlayer       `json:"players"`
	CurrentCandidateID    string                      `json:"currentCandidateId,omitempty"`
	CurrentCandidateTwist string                      `json:"currentCandidateTwist,omitempty"`
	CanAssignTwist        bool                        `json:"canAssignTwist"`
	CanEndTurn            bool                        `json:"canEndTurn"`
	Revealed              map[string][]string         `json:"revealed"`

	// recipient-specific fields
	MyID          string   `json:"myId"`
	IsInterviewer bool     `json:"isInterviewer"`
	JobOptions    []string `json:"jobOptions,omitempty"`
	TwistBank     []string `json:"twistBank,omitempty"`
	Hand          []string `json:"hand"`
	MyAllTraits   []string `json:"myAllTraits,omitempty"`
	Submitted     bool     `json:"submitted"`
}

// lobbyView is the lightweight pre-game roster snapshot.
func lobbyView(r *Room) lobbyStateMessage {
	players := make(map[string]lobbyPlayer, len(r.players))
	for id, p := range r.players {
		players[id] = lobbyPlayer{
			Name:   p.Name,
			IsHost: id == r.hostID,
			Score:  p.Score,
		}
	}
	return lobbyStateMessage{Type: "lobbyState", Players: players}
}

// gameView builds the personalized snapshot for one recipient. The
// shared portion exposes only revealed traits per submission; the
// recipient-specific portion adds their own hand, the interviewer's job
// options during chooseJob, the twist bank while a twist decision is
// still open, and the on-stage candidate's full locked traits so they
// alone can choose their reveal order.
//
// Everything is deep-copied: snapshots are serialized on a different
// goroutine than the one mutating room state.
func gameView(r *Room, recipientID string) gameStateMessage {
	subs := make(map[string]publicSubmission, len(r.submissions))
	for pid, sub := range r.submissions {
		name := "Left"
		if p := r.players[pid]; p != nil {
			name = p.Name
		}
		subs[pid] = publicSubmission{
			ID:     pid,
			Name:   name,
			Traits: slices.Clone(r.revealed[pid]),
			Twist:  r.twists[pid],
			Winner: sub.Winner,
		}
	}

	players := make(map[string]gamePlayer, len(r.players))
	for id, p := range r.players {
		players[id] = gamePlayer{Name: p.Name, Score: p.Score}
	}

	revealed := make(map[string][]string, len(r.revealed))
	for pid, traits := range r.revealed {
		revealed[pid] = slices.Clone(traits)
	}

	curID := r.currentID
	curRevealed := len(r.revealed[curID])
	curTwist := r.twists[curID]

	interviewerName := "—"
	if p := r.players[r.interviewerID]; p != nil {
		interviewerName = p.Name
	}

	msg := gameStateMessage{
		Type:                  "gameState",
		Phase:                 r.phase,
		Round:                 r.round,
		InterviewerID:         r.interviewerID,
		InterviewerName:       interviewerName,
		CurrentJob:            r.currentJob,
		Submissions:           subs,
		Players:               players,
		CurrentCandidateID:    curID,
		CurrentCandidateTwist: curTwist,
		CanAssignTwist:        r.phase == phaseReveal && curID != "" && curRevealed == submissionSize && curTwist == "",
		CanEndTurn:            r.phase == phaseReveal && curID != "" && curTwist != "",
		Revealed:              revealed,
		MyID:                  recipientID,
		IsInterviewer:         recipientID == r.interviewerID,
		Hand:                  []string{},
		Submitted:             r.submissions[recipientID] != nil,
	}

	if msg.IsInterviewer && r.phase == phaseChooseJob {
		msg.JobOptions = slices.Clone(r.jobOptions)
	}

	// the bank is hidden once the current candidate has a twist
	if msg.IsInterviewer && r.phase == phaseReveal && curID != "" && curTwist == "" && len(r.twistBank) > 0 {
		msg.TwistBank = slices.Clone(r.twistBank)
	}

	if !msg.IsInterviewer && r.phase == phaseChooseTraits {
		if p := r.players[recipientID]; p != nil {
			msg.Hand = slices.Clone(p.Hand)
		}
	}

	if curID != "" && recipientID == curID {
		if sub := r.submissions[curID]; sub != nil {
			msg.MyAllTraits = slices.Clone(sub.Traits)
		}
	}

	return msg
}
