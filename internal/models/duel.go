package models

import "time"

type DuelStatus string

const (
	DuelStatusPending   DuelStatus = "PENDING"
	DuelStatusActive    DuelStatus = "ACTIVE"
	DuelStatusCompleted DuelStatus = "COMPLETED"
	DuelStatusExpired   DuelStatus = "EXPIRED"
)

// Terminal reports whether no further transitions are possible.
func (s DuelStatus) Terminal() bool {
	return s == DuelStatusCompleted || s == DuelStatusExpired
}

type DuelType string

const (
	DuelTypeReps         DuelType = "REPS"
	DuelTypeWeight       DuelType = "WEIGHT"
	DuelTypeWorkoutCount DuelType = "WORKOUT_COUNT"
	DuelTypeCustom       DuelType = "CUSTOM"
)

// ValidDuelType rejects malformed duel types at the input boundary.
func ValidDuelType(t DuelType) bool {
	switch t {
	case DuelTypeReps, DuelTypeWeight, DuelTypeWorkoutCount, DuelTypeCustom:
		return true
	}
	return false
}

// DuelProof is an optional per-side proof record attached to a progress
// update. Embedded twice in Duel with column prefixes.
type DuelProof struct {
	MediaURL    string     `json:"mediaUrl"`
	Value       float64    `json:"value"`
	SubmittedAt *time.Time `json:"submittedAt"`
}

// Duel is a timed head-to-head challenge. The cached names/avatars are UI
// convenience only, not authoritative identity.
type Duel struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ChallengerID     string `gorm:"index" json:"challengerId"`
	ChallengerName   string `json:"challengerName"`
	ChallengerAvatar string `json:"challengerAvatar"`
	OpponentID       string `gorm:"index" json:"opponentId"`
	OpponentName     string `json:"opponentName"`
	OpponentAvatar   string `json:"opponentAvatar"`

	Type     DuelType `gorm:"type:text" json:"type"`
	Exercise string   `json:"exercise"`
	Target   string   `json:"target"`

	Status DuelStatus `gorm:"type:text;default:'PENDING';index" json:"status"`

	// Monotonically non-decreasing while the duel is active
	ChallengerProgress float64 `gorm:"default:0" json:"challengerProgress"`
	OpponentProgress   float64 `gorm:"default:0" json:"opponentProgress"`

	ChallengerProof DuelProof `gorm:"embedded;embeddedPrefix:challenger_proof_" json:"challengerProof"`
	OpponentProof   DuelProof `gorm:"embedded;embeddedPrefix:opponent_proof_" json:"opponentProof"`

	XPReward int `gorm:"default:50" json:"xpReward"`

	// Acceptance deadline: CreatedAt + 48h. Completion deadline (once
	// accepted): AcceptedAt + 7d.
	AcceptDeadline time.Time  `json:"acceptDeadline"`
	AcceptedAt     *time.Time `json:"acceptedAt"`
	ResolvedAt     *time.Time `json:"resolvedAt"`

	WinnerID *string `json:"winnerId"`
	Draw     bool    `gorm:"default:false" json:"draw"`
	Declined bool    `gorm:"default:false" json:"declined"`
}

// CompletionDeadline is the instant an active duel auto-resolves. Zero time
// while the duel hasn't been accepted.
func (d *Duel) CompletionDeadline() time.Time {
	if d.AcceptedAt == nil {
		return time.Time{}
	}
	return d.AcceptedAt.Add(7 * 24 * time.Hour)
}
