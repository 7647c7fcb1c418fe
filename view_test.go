package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLobbyViewRoster(t *testing.T) {
	e := newTestEngine()
	host, p2, _, r := setupRoom(t, e)

	view := lobbyView(r)
	require.Len(t, view.Players, 3)
	assert.True(t, view.Players[host.id].IsHost)
	assert.False(t, view.Players[p2.id].IsHost)
	assert.Equal(t, "P2", view.Players[p2.id].Name)
	assert.Zero(t, view.Players[p2.id].Score)
}

func TestGameViewJobOptionsOnlyForInterviewer(t *testing.T) {
	e := newTestEngine()
	host, p2, _, r := startedRoom(t, e)

	hostView := gameView(r, host.id)
	assert.True(t, hostView.IsInterviewer)
	assert.Len(t, hostView.JobOptions, jobOptionCount)

	candidateView := gameView(r, p2.id)
	assert.False(t, candidateView.IsInterviewer)
	assert.Empty(t, candidateView.JobOptions)

	// options disappear for everyone once the job is picked
	e.PickJob(host, r.jobOptions[0])
	assert.Empty(t, gameView(r, host.id).JobOptions)
}

func TestGameViewHandsArePrivate(t *testing.T) {
	e := newTestEngine()
	host, p2, p3, r := startedRoom(t, e)
	e.PickJob(host, r.jobOptions[0])

	p2View := gameView(r, p2.id)
	assert.ElementsMatch(t, r.players[p2.id].Hand, p2View.Hand)

	// nobody else's hand leaks into the snapshot
	p3View := gameView(r, p3.id)
	assert.ElementsMatch(t, r.players[p3.id].Hand, p3View.Hand)
	hostView := gameView(r, host.id)
	assert.Empty(t, hostView.Hand)

	// hands are only surfaced during chooseTraits
	submitFirstThree(t, e, p2, r)
	submitFirstThree(t, e, p3, r)
	require.Equal(t, phaseReveal, r.phase)
	assert.Empty(t, gameView(r, p3.id).Hand)
}

func TestGameViewHidesUnrevealedTraits(t *testing.T) {
	e := newTestEngine()
	host, p2, p3, r := startedRoom(t, e)
	e.PickJob(host, r.jobOptions[0])
	locked := submitFirstThree(t, e, p2, r)
	submitFirstThree(t, e, p3, r)

	// before any reveal the submission shows no traits to anyone
	p3View := gameView(r, p3.id)
	require.Contains(t, p3View.Submissions, p2.id)
	assert.Empty(t, p3View.Submissions[p2.id].Traits)
	assert.True(t, p3View.Submitted)

	// only the on-stage candidate sees their own full locked set
	p2View := gameView(r, p2.id)
	assert.ElementsMatch(t, locked, p2View.MyAllTraits)
	assert.Empty(t, p3View.MyAllTraits)
	assert.Empty(t, gameView(r, host.id).MyAllTraits)

	e.RevealTrait(p2, locked[0])
	p3View = gameView(r, p3.id)
	assert.Equal(t, []string{locked[0]}, p3View.Submissions[p2.id].Traits)
	assert.Equal(t, []string{locked[0]}, p3View.Revealed[p2.id])
}

func TestGameViewTwistBankGating(t *testing.T) {
	e := newTestEngine()
	host, p2, p3, r := startedRoom(t, e)
	e.PickJob(host, r.jobOptions[0])
	submitFirstThree(t, e, p2, r)
	submitFirstThree(t, e, p3, r)

	// the bank is interviewer-only
	assert.Len(t, gameView(r, host.id).TwistBank, 2)
	assert.Empty(t, gameView(r, p2.id).TwistBank)

	hostView := gameView(r, host.id)
	assert.False(t, hostView.CanAssignTwist)
	assert.False(t, hostView.CanEndTurn)

	revealAll(t, e, p2, r)
	hostView = gameView(r, host.id)
	assert.True(t, hostView.CanAssignTwist)
	assert.False(t, hostView.CanEndTurn)

	e.AssignTwist(host, p2.id, r.twistBank[0])
	hostView = gameView(r, host.id)
	assert.Empty(t, hostView.TwistBank, "bank hides once the decision is made")
	assert.False(t, hostView.CanAssignTwist)
	assert.True(t, hostView.CanEndTurn)
	assert.Equal(t, r.twists[p2.id], hostView.CurrentCandidateTwist)

	// twist shows up on the public submission for everyone
	p3View := gameView(r, p3.id)
	assert.Equal(t, r.twists[p2.id], p3View.Submissions[p2.id].Twist)
}

func TestGameViewWinnerFlag(t *testing.T) {
	e := newTestEngine()
	host, p2, p3, r := startedRoom(t, e)
	e.PickJob(host, r.jobOptions[0])
	submitFirstThree(t, e, p2, r)
	submitFirstThree(t, e, p3, r)
	revealAll(t, e, p2, r)
	e.AssignTwist(host, p2.id, r.twistBank[0])
	e.EndTurn(host)
	revealAll(t, e, p3, r)
	e.AssignTwist(host, p3.id, r.twistBank[0])
	e.EndTurn(host)
	e.SelectWinner(host, p2.id)

	view := gameView(r, p3.id)
	assert.True(t, view.Submissions[p2.id].Winner)
	assert.False(t, view.Submissions[p3.id].Winner)
	assert.Equal(t, 1, view.Players[p2.id].Score)
}

func TestGameViewSnapshotIsDetached(t *testing.T) {
	e := newTestEngine()
	host, p2, p3, r := startedRoom(t, e)
	e.PickJob(host, r.jobOptions[0])
	submitFirstThree(t, e, p2, r)
	submitFirstThree(t, e, p3, r)
	e.RevealTrait(p2, r.submissions[p2.id].Traits[0])

	view := gameView(r, p3.id)
	before := len(view.Revealed[p2.id])

	e.RevealTrait(p2, r.submissions[p2.id].Traits[1])

	// the snapshot must not chase live room state
	assert.Len(t, view.Revealed[p2.id], before)
}
