package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	apperrors "github.com/Blazehunterx/ironmatch-sub000/pkg/errors"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/utils"
)

const (
	acceptWindow     = 48 * time.Hour
	defaultXPReward  = 50
	duelStreakTarget = 5 // wins before the duel-streak hidden quests reveal
)

// DuelService drives the duel state machine:
//
//	PENDING -> ACTIVE    (opponent accepts within 48h)
//	PENDING -> EXPIRED   (window elapses, or opponent declines)
//	ACTIVE  -> COMPLETED (7-day window elapses, or manual resolution)
//
// Expiry is evaluated lazily on every read and write; there is no
// background scheduler. Invalid edges fail with InvalidTransition.
type DuelService struct {
	db     *gorm.DB
	lb     *LeaderboardService
	quests *QuestService

	now func() time.Time
}

func NewDuelService(db *gorm.DB, lb *LeaderboardService, quests *QuestService) *DuelService {
	return &DuelService{db: db, lb: lb, quests: quests, now: time.Now}
}

type CreateDuelInput struct {
	OpponentID string          `json:"opponentId" binding:"required"`
	Type       models.DuelType `json:"type" binding:"required"`
	Exercise   string          `json:"exercise" binding:"required"`
	Target     string          `json:"target"`
	XPReward   int             `json:"xpReward"`
}

// Create opens a challenge in PENDING with a 48-hour acceptance window.
// Fairness is advisory and checked by the caller; it never blocks creation.
func (s *DuelService) Create(challengerID string, input CreateDuelInput) (*models.Duel, error) {
	if !models.ValidDuelType(input.Type) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown duel type %q", input.Type))
	}
	if input.OpponentID == challengerID {
		return nil, apperrors.InvalidInput("cannot duel yourself")
	}
	if input.XPReward < 0 {
		return nil, apperrors.InvalidInput("xp reward cannot be negative")
	}

	var challenger, opponent models.User
	if err := s.db.First(&challenger, "id = ?", challengerID).Error; err != nil {
		return nil, apperrors.NotFound("Challenger not found")
	}
	if err := s.db.First(&opponent, "id = ?", input.OpponentID).Error; err != nil {
		return nil, apperrors.NotFound("Opponent not found")
	}

	reward := input.XPReward
	if reward == 0 {
		reward = defaultXPReward
	}

	now := s.now()
	duel := models.Duel{
		ID:               utils.GenerateID(),
		CreatedAt:        now,
		ChallengerID:     challenger.ID,
		ChallengerName:   challenger.Username,
		ChallengerAvatar: challenger.Avatar,
		OpponentID:       opponent.ID,
		OpponentName:     opponent.Username,
		OpponentAvatar:   opponent.Avatar,
		Type:             input.Type,
		Exercise:         input.Exercise,
		Target:           input.Target,
		Status:           models.DuelStatusPending,
		XPReward:         reward,
		AcceptDeadline:   now.Add(acceptWindow),
	}

	if err := s.db.Create(&duel).Error; err != nil {
		return nil, err
	}

	logger.Info().Str("duel_id", duel.ID).Str("challenger", challenger.ID).Str("opponent", opponent.ID).Msg("duel created")
	return &duel, nil
}

// Get loads a duel and applies lazy time transitions before returning it.
func (s *DuelService) Get(id string) (*models.Duel, error) {
	var duel models.Duel
	if err := s.db.First(&duel, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFound("Duel not found")
	}

	if err := s.refresh(&duel); err != nil {
		return nil, err
	}
	return &duel, nil
}

// ListForUser returns all duels the user participates in, refreshed.
func (s *DuelService) ListForUser(userID string) ([]models.Duel, error) {
	var duels []models.Duel
	if err := s.db.Where("challenger_id = ? OR opponent_id = ?", userID, userID).
		Order("created_at desc").Find(&duels).Error; err != nil {
		return nil, err
	}

	for i := range duels {
		if err := s.refresh(&duels[i]); err != nil {
			return nil, err
		}
	}
	return duels, nil
}

// Accept moves a pending duel to ACTIVE. Only the challenged opponent may
// accept, and only while the acceptance window is open.
func (s *DuelService) Accept(id, userID string) (*models.Duel, error) {
	duel, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if duel.OpponentID != userID {
		return nil, apperrors.Forbidden("Only the challenged user can accept")
	}
	if duel.Status != models.DuelStatusPending {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot accept a %s duel", duel.Status))
	}

	now := s.now()
	duel.Status = models.DuelStatusActive
	duel.AcceptedAt = &now

	if err := s.db.Save(duel).Error; err != nil {
		return nil, err
	}

	logger.Info().Str("duel_id", duel.ID).Msg("duel accepted")
	return duel, nil
}

// Decline terminates a pending duel without resolution.
func (s *DuelService) Decline(id, userID string) (*models.Duel, error) {
	duel, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if duel.OpponentID != userID {
		return nil, apperrors.Forbidden("Only the challenged user can decline")
	}
	if duel.Status != models.DuelStatusPending {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot decline a %s duel", duel.Status))
	}

	duel.Status = models.DuelStatusExpired
	duel.Declined = true

	if err := s.db.Save(duel).Error; err != nil {
		return nil, err
	}
	return duel, nil
}

// SubmitProgress records a participant's progress, optionally with proof.
// Accepted only while ACTIVE. Progress is an absolute value and must not
// decrease; the reported value must be non-negative.
func (s *DuelService) SubmitProgress(id, userID string, value float64, mediaURL string) (*models.Duel, error) {
	duel, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if duel.Status != models.DuelStatusActive {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot submit progress to a %s duel", duel.Status))
	}
	if value < 0 {
		return nil, apperrors.InvalidProof("proof value must be a non-negative number")
	}

	now := s.now()
	proof := models.DuelProof{MediaURL: mediaURL, Value: value, SubmittedAt: &now}

	switch userID {
	case duel.ChallengerID:
		if value < duel.ChallengerProgress {
			return nil, apperrors.InvalidInput("progress cannot decrease")
		}
		duel.ChallengerProgress = value
		if mediaURL != "" {
			duel.ChallengerProof = proof
		}
	case duel.OpponentID:
		if value < duel.OpponentProgress {
			return nil, apperrors.InvalidInput("progress cannot decrease")
		}
		duel.OpponentProgress = value
		if mediaURL != "" {
			duel.OpponentProof = proof
		}
	default:
		return nil, apperrors.Forbidden("Not a participant in this duel")
	}

	if err := s.db.Save(duel).Error; err != nil {
		return nil, err
	}
	return duel, nil
}

// Resolve completes an active duel immediately instead of waiting for the
// 7-day window. Either participant may trigger it.
func (s *DuelService) Resolve(id, userID string) (*models.Duel, error) {
	duel, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if userID != duel.ChallengerID && userID != duel.OpponentID {
		return nil, apperrors.Forbidden("Not a participant in this duel")
	}
	if duel.Status != models.DuelStatusActive {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot resolve a %s duel", duel.Status))
	}

	if err := s.complete(duel); err != nil {
		return nil, err
	}
	return duel, nil
}

// refresh applies time-driven transitions. PENDING expires exactly at the
// acceptance deadline, never before; ACTIVE completes at the completion
// deadline with whatever progress exists at that instant.
func (s *DuelService) refresh(duel *models.Duel) error {
	now := s.now()

	switch duel.Status {
	case models.DuelStatusPending:
		if !now.Before(duel.AcceptDeadline) {
			duel.Status = models.DuelStatusExpired
			return s.db.Save(duel).Error
		}
	case models.DuelStatusActive:
		if deadline := duel.CompletionDeadline(); !deadline.IsZero() && !now.Before(deadline) {
			return s.complete(duel)
		}
	}
	return nil
}

// complete resolves winner/draw from current progress and pays out XP:
// full reward to the winner, split evenly on a draw. A draw is explicit,
// never a silently assigned winner.
func (s *DuelService) complete(duel *models.Duel) error {
	now := s.now()
	duel.Status = models.DuelStatusCompleted
	duel.ResolvedAt = &now

	var message string
	switch {
	case duel.ChallengerProgress > duel.OpponentProgress:
		duel.WinnerID = &duel.ChallengerID
		message = fmt.Sprintf("%s won the %s duel", duel.ChallengerName, duel.Exercise)
	case duel.OpponentProgress > duel.ChallengerProgress:
		duel.WinnerID = &duel.OpponentID
		message = fmt.Sprintf("%s won the %s duel", duel.OpponentName, duel.Exercise)
	default:
		duel.Draw = true
		message = fmt.Sprintf("The %s duel ended in a draw", duel.Exercise)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(duel).Error; err != nil {
			return err
		}

		if duel.Draw {
			// Total payout always equals XPReward; an odd point goes to
			// the challenger.
			half := duel.XPReward / 2
			if err := grantXP(tx, s.lb, duel.ChallengerID, duel.XPReward-half); err != nil {
				return err
			}
			if err := grantXP(tx, s.lb, duel.OpponentID, half); err != nil {
				return err
			}
		} else {
			if err := grantXP(tx, s.lb, *duel.WinnerID, duel.XPReward); err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", *duel.WinnerID).
				Update("duels_won", gorm.Expr("duels_won + 1")).Error; err != nil {
				return err
			}
		}

		activity := models.UserActivity{
			ID:        utils.GenerateID(),
			Type:      models.ActivityDuelResolved,
			ActorID:   duel.ChallengerID,
			TargetID:  duel.ID,
			Message:   message,
			CreatedAt: now,
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return err
	}

	// Win streak feeds the duel-champion hidden quests
	if duel.WinnerID != nil && s.quests != nil {
		var winner models.User
		if err := s.db.First(&winner, "id = ?", *duel.WinnerID).Error; err == nil {
			if winner.DuelsWon >= duelStreakTarget {
				if _, err := s.quests.UnlockHidden(winner.ID, models.TriggerDuelChampion); err != nil {
					logger.Warn().Err(err).Str("user_id", winner.ID).Msg("hidden quest unlock failed")
				}
			}
		}
	}

	logger.Info().Str("duel_id", duel.ID).Bool("draw", duel.Draw).Msg("duel resolved")
	return nil
}
