package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	apperrors "github.com/Blazehunterx/ironmatch-sub000/pkg/errors"
)

func newDuelFixture(t *testing.T) (*DuelService, *fixedClock) {
	db := setupTestDB(t)
	createTestUser(t, db, "challenger")
	createTestUser(t, db, "opponent")
	createTestUser(t, db, "stranger")

	clock := &fixedClock{t: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}
	svc := NewDuelService(db, nil, nil)
	svc.now = clock.Now
	return svc, clock
}

func createPendingDuel(t *testing.T, svc *DuelService) *models.Duel {
	t.Helper()
	duel, err := svc.Create("challenger", CreateDuelInput{
		OpponentID: "opponent",
		Type:       models.DuelTypeReps,
		Exercise:   "pull-ups",
		Target:     "most reps in 7 days",
	})
	assert.NoError(t, err)
	return duel
}

func TestDuelCreate(t *testing.T) {
	svc, clock := newDuelFixture(t)

	duel := createPendingDuel(t, svc)
	assert.Equal(t, models.DuelStatusPending, duel.Status)
	assert.Equal(t, clock.Now().Add(48*time.Hour), duel.AcceptDeadline)
	assert.Equal(t, defaultXPReward, duel.XPReward)
	assert.Equal(t, "opponent", duel.OpponentName) // cached display name
}

func TestDuelCreate_InvalidInput(t *testing.T) {
	svc, _ := newDuelFixture(t)

	_, err := svc.Create("challenger", CreateDuelInput{OpponentID: "opponent", Type: "TUG_OF_WAR", Exercise: "x"})
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	_, err = svc.Create("challenger", CreateDuelInput{OpponentID: "challenger", Type: models.DuelTypeReps, Exercise: "x"})
	assert.Error(t, err)
}

func TestDuelAccept(t *testing.T) {
	svc, clock := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	clock.Advance(time.Hour)
	accepted, err := svc.Accept(duel.ID, "opponent")
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusActive, accepted.Status)
	assert.NotNil(t, accepted.AcceptedAt)
}

func TestDuelAccept_OnlyOpponent(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	_, err := svc.Accept(duel.ID, "stranger")
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 403, appErr.Code)

	_, err = svc.Accept(duel.ID, "challenger")
	assert.Error(t, err)
}

func TestDuelAccept_AlreadyActiveIsInvalidTransition(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	_, err := svc.Accept(duel.ID, "opponent")
	assert.NoError(t, err)

	_, err = svc.Accept(duel.ID, "opponent")
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 409, appErr.Code)
}

func TestDuelExpiry_ExactlyAtDeadlineNeverBefore(t *testing.T) {
	svc, clock := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	// One second before the deadline the duel is still pending
	clock.Advance(48*time.Hour - time.Second)
	got, err := svc.Get(duel.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusPending, got.Status)

	// At exactly T+48h it expires
	clock.Advance(time.Second)
	got, err = svc.Get(duel.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusExpired, got.Status)

	// And can no longer be accepted
	_, err = svc.Accept(duel.ID, "opponent")
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 409, appErr.Code)
}

func TestDuelDecline(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	declined, err := svc.Decline(duel.ID, "opponent")
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusExpired, declined.Status)
	assert.True(t, declined.Declined)

	// Terminal: no further transitions
	_, err = svc.Accept(duel.ID, "opponent")
	assert.Error(t, err)
}

func TestDuelSubmitProgress(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	// Rejected while pending
	_, err := svc.SubmitProgress(duel.ID, "challenger", 10, "")
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 409, appErr.Code)

	_, err = svc.Accept(duel.ID, "opponent")
	assert.NoError(t, err)

	// Negative proof value
	_, err = svc.SubmitProgress(duel.ID, "challenger", -1, "")
	appErr = err.(*apperrors.AppError)
	assert.Equal(t, 422, appErr.Code)

	// Valid updates, with and without proof media
	updated, err := svc.SubmitProgress(duel.ID, "challenger", 12, "https://cdn.example.com/proof.mp4")
	assert.NoError(t, err)
	assert.Equal(t, float64(12), updated.ChallengerProgress)
	assert.Equal(t, "https://cdn.example.com/proof.mp4", updated.ChallengerProof.MediaURL)

	updated, err = svc.SubmitProgress(duel.ID, "opponent", 8, "")
	assert.NoError(t, err)
	assert.Equal(t, float64(8), updated.OpponentProgress)

	// Progress is monotonically non-decreasing
	_, err = svc.SubmitProgress(duel.ID, "challenger", 5, "")
	appErr = err.(*apperrors.AppError)
	assert.Equal(t, 400, appErr.Code)

	// Non-participant
	_, err = svc.SubmitProgress(duel.ID, "stranger", 3, "")
	assert.Error(t, err)
}

func TestDuelResolve_WinnerGetsXP(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	svc.Accept(duel.ID, "opponent")
	svc.SubmitProgress(duel.ID, "challenger", 20, "")
	svc.SubmitProgress(duel.ID, "opponent", 15, "")

	resolved, err := svc.Resolve(duel.ID, "challenger")
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusCompleted, resolved.Status)
	assert.False(t, resolved.Draw)
	assert.Equal(t, "challenger", *resolved.WinnerID)

	var winner models.User
	svc.db.First(&winner, "id = ?", "challenger")
	assert.Equal(t, defaultXPReward, winner.XP)
	assert.Equal(t, 1, winner.DuelsWon)

	var loser models.User
	svc.db.First(&loser, "id = ?", "opponent")
	assert.Equal(t, 0, loser.XP)
}

func TestDuelResolve_EqualProgressIsDraw(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	svc.Accept(duel.ID, "opponent")
	svc.SubmitProgress(duel.ID, "challenger", 10, "")
	svc.SubmitProgress(duel.ID, "opponent", 10, "")

	resolved, err := svc.Resolve(duel.ID, "challenger")
	assert.NoError(t, err)
	assert.True(t, resolved.Draw)
	assert.Nil(t, resolved.WinnerID)

	// Draw splits the reward
	var challenger, opponent models.User
	svc.db.First(&challenger, "id = ?", "challenger")
	svc.db.First(&opponent, "id = ?", "opponent")
	assert.Equal(t, defaultXPReward/2, challenger.XP)
	assert.Equal(t, defaultXPReward/2, opponent.XP)
}

func TestDuelResolve_OddRewardDrawPaysOutFully(t *testing.T) {
	svc, _ := newDuelFixture(t)
	duel, err := svc.Create("challenger", CreateDuelInput{
		OpponentID: "opponent",
		Type:       models.DuelTypeReps,
		Exercise:   "pull-ups",
		XPReward:   51,
	})
	assert.NoError(t, err)

	svc.Accept(duel.ID, "opponent")
	svc.SubmitProgress(duel.ID, "challenger", 10, "")
	svc.SubmitProgress(duel.ID, "opponent", 10, "")

	resolved, err := svc.Resolve(duel.ID, "challenger")
	assert.NoError(t, err)
	assert.True(t, resolved.Draw)

	// No XP is lost to integer halving; the odd point lands on the challenger
	var challenger, opponent models.User
	svc.db.First(&challenger, "id = ?", "challenger")
	svc.db.First(&opponent, "id = ?", "opponent")
	assert.Equal(t, 26, challenger.XP)
	assert.Equal(t, 25, opponent.XP)
	assert.Equal(t, 51, challenger.XP+opponent.XP)
}

func TestDuelAutoCompleteAtSevenDays(t *testing.T) {
	svc, clock := newDuelFixture(t)
	duel := createPendingDuel(t, svc)

	svc.Accept(duel.ID, "opponent")
	svc.SubmitProgress(duel.ID, "opponent", 30, "")

	// Just before the completion window the duel stays active
	clock.Advance(7*24*time.Hour - time.Minute)
	got, err := svc.Get(duel.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusActive, got.Status)

	// At the window end it resolves from whatever progress exists
	clock.Advance(time.Minute)
	got, err = svc.Get(duel.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DuelStatusCompleted, got.Status)
	assert.Equal(t, "opponent", *got.WinnerID)

	_, err = svc.Resolve(duel.ID, "challenger")
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 409, appErr.Code)
}

func TestDuelListForUser(t *testing.T) {
	svc, _ := newDuelFixture(t)
	createPendingDuel(t, svc)
	createPendingDuel(t, svc)

	duels, err := svc.ListForUser("opponent")
	assert.NoError(t, err)
	assert.Len(t, duels, 2)

	duels, err = svc.ListForUser("stranger")
	assert.NoError(t, err)
	assert.Len(t, duels, 0)
}
