package main

import (
	"fmt"
	"slices"
)

const (
	jobOptionCount = 5
	handSize       = 6
	submissionSize = 3
)

// prepareRoundLocked (re)enters chooseJob: snapshots the roster order,
// picks the interviewer by rotation index, rebuilds all three decks and
// deals out job options, hands and the twist bank. Called on start, on
// every round advance and when the interviewer disconnects mid-round.
func (e *Engine) prepareRoundLocked(r *Room) {
	if len(r.seats) == 0 {
		return
	}

	r.order = slices.Clone(r.seats)
	r.interviewerID = r.order[r.interviewerIdx%len(r.order)]

	r.phase = phaseChooseJob
	r.round++
	r.submissions = make(map[string]*Submission)
	r.twists = make(map[string]string)
	r.currentJob = ""

	r.stageOrder = nil
	r.stageIndex = 0
	r.currentID = ""
	r.revealed = make(map[string][]string)

	r.decks.jobs = shuffleCards(jobPool)
	r.decks.traits = shuffleCards(traitPool)
	r.decks.twists = shuffleCards(twistPool)

	r.jobOptions, r.decks.jobs = deal(r.decks.jobs, jobOptionCount, jobPool)

	// one twist reserved per candidate
	r.twistBank, r.decks.twists = deal(r.decks.twists, len(r.seats)-1, twistPool)

	for _, id := range r.seats {
		p := r.players[id]
		if id == r.interviewerID {
			p.Hand = nil
			continue
		}
		p.Hand, r.decks.traits = deal(r.decks.traits, handSize, traitPool)
	}

	r.touch()
}

// candidates is every seated player except the interviewer, in join order.
func (r *Room) candidates() []string {
	out := make([]string, 0, len(r.seats))
	for _, id := range r.seats {
		if id != r.interviewerID {
			out = append(out, id)
		}
	}
	return out
}

func (e *Engine) StartGame(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || r.hostID != s.id || r.phase != phaseLobby {
		return
	}
	if len(r.seats) < minPlayers {
		s.push(reasonMessage{Type: "createError", Reason: "Need at least 2 players to start."})
		return
	}

	r.interviewerIdx = 0
	e.prepareRoundLocked(r)

	e.chatLocked(r, systemName, fmt.Sprintf("Round %d – Interviewer: %s", r.round, r.players[r.interviewerID].Name))
	e.broadcastGameLocked(r)
	e.broadcastRoomListLocked()
}

func (e *Engine) PickJob(s *Session, job string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || s.id != r.interviewerID || r.phase != phaseChooseJob {
		return
	}
	if !slices.Contains(r.jobOptions, job) {
		return
	}

	r.currentJob = job
	r.phase = phaseChooseTraits
	// one-shot: clearing the options closes the door on a racing second pick
	r.jobOptions = nil

	r.touch()
	e.broadcastGameLocked(r)
}

func (e *Engine) SubmitTraits(s *Session, picks []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || r.phase != phaseChooseTraits || s.id == r.interviewerID {
		return
	}
	if r.submissions[s.id] != nil {
		return
	}
	if len(picks) != submissionSize {
		return
	}

	seen := make(map[string]struct{}, len(picks))
	for _, t := range picks {
		seen[t] = struct{}{}
	}
	if len(seen) != submissionSize {
		return
	}

	p := r.players[s.id]
	if p == nil {
		return
	}
	for _, t := range picks {
		if !slices.Contains(p.Hand, t) {
			return
		}
	}

	// remove from hand to lock
	p.Hand = slices.DeleteFunc(p.Hand, func(c string) bool {
		_, picked := seen[c]
		return picked
	})
	r.submissions[s.id] = &Submission{Traits: slices.Clone(picks)}

	// once every candidate is in, the spotlight phase begins
	candidates := r.candidates()
	allIn := len(candidates) >= 1
	for _, id := range candidates {
		if r.submissions[id] == nil {
			allIn = false
			break
		}
	}
	if allIn {
		r.stageOrder = candidates
		r.stageIndex = 0
		r.currentID = candidates[0]
		r.revealed = make(map[string][]string)
		r.phase = phaseReveal
	}

	r.touch()
	e.broadcastGameLocked(r)
}

func (e *Engine) RevealTrait(s *Session, trait string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || r.phase != phaseReveal {
		return
	}
	if s.id != r.currentID {
		return
	}

	sub := r.submissions[s.id]
	if sub == nil {
		return
	}
	if !slices.Contains(sub.Traits, trait) {
		return
	}

	already := r.revealed[s.id]
	if len(already) >= submissionSize || slices.Contains(already, trait) {
		return
	}

	r.revealed[s.id] = append(already, trait)

	r.touch()
	e.broadcastGameLocked(r)
}

// AssignTwist hands one twist from the bank to a fully-revealed
// candidate. The legacy assignTwists phase skips the stage spotlight
// and reveal-count gate, and advances to judge once everyone with a
// submission has a twist.
func (e *Engine) AssignTwist(s *Session, targetID, twist string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || s.id != r.interviewerID {
		return
	}

	isReveal := r.phase == phaseReveal
	isLegacyAssign := r.phase == phaseAssignTwists
	if !isReveal && !isLegacyAssign {
		return
	}

	if targetID == "" || twist == "" {
		return
	}
	if r.submissions[targetID] == nil {
		return
	}
	if !slices.Contains(r.twistBank, twist) {
		return
	}
	if _, assigned := r.twists[targetID]; assigned {
		return
	}

	if isReveal {
		if targetID != r.currentID {
			return
		}
		if len(r.revealed[targetID]) != submissionSize {
			return
		}
	}

	r.twists[targetID] = twist

	i := slices.Index(r.twistBank, twist)
	r.twistBank = slices.Delete(r.twistBank, i, i+1)

	if isLegacyAssign {
		allTwisted := len(r.submissions) > 0
		for id := range r.submissions {
			if _, ok := r.twists[id]; !ok {
				allTwisted = false
				break
			}
		}
		if allTwisted {
			r.phase = phaseJudge
		}
	}

	r.touch()
	e.broadcastGameLocked(r)
}

func (e *Engine) EndTurn(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || r.phase != phaseReveal || s.id != r.interviewerID {
		return
	}

	pid := r.currentID
	if pid == "" {
		return
	}
	if _, assigned := r.twists[pid]; !assigned {
		return
	}

	r.stageIndex++
	if r.stageIndex >= len(r.stageOrder) {
		r.phase = phaseJudge
		r.currentID = ""
	} else {
		r.currentID = r.stageOrder[r.stageIndex]
	}

	r.touch()
	e.broadcastGameLocked(r)
}

func (e *Engine) SelectWinner(s *Session, winnerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || s.id != r.interviewerID || r.phase != phaseJudge {
		return
	}

	winner := r.submissions[winnerID]
	if winner == nil {
		return
	}

	for _, sub := range r.submissions {
		sub.Winner = false
	}
	winner.Winner = true

	name := "Someone"
	if p := r.players[winnerID]; p != nil {
		p.Score++
		name = p.Name
	}

	r.touch()
	e.broadcastGameLocked(r)
	e.chatLocked(r, systemName, name+" wins the round!")
}

func (e *Engine) NextRound(s *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil || s.id != r.interviewerID {
		return
	}

	r.interviewerIdx = (r.interviewerIdx + 1) % len(r.seats)
	e.prepareRoundLocked(r)

	e.chatLocked(r, systemName, fmt.Sprintf("Round %d – Interviewer: %s", r.round, r.players[r.interviewerID].Name))
	e.broadcastGameLocked(r)
}

func (e *Engine) Chat(s *Session, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.roomOfLocked(s)
	if r == nil {
		return
	}

	from := "Player"
	if p := r.players[s.id]; p != nil {
		from = p.Name
	}

	r.touch()
	e.chatLocked(r, from, sanitizeChat(msg))
}
