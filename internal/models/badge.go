package models

import "time"

// UserBadge is an idempotent achievement marker: at most one row exists per
// (user, badgeType) pair.
type UserBadge struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BadgeType string    `json:"badgeType"`
	EarnedAt  time.Time `json:"earnedAt"`
}
