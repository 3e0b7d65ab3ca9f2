package models

import "time"

// UserProgress tracks a user's completion percentage for one module.
// There is exactly one row per (user, module) pair.
type UserProgress struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ModuleID    string     `json:"moduleId"`
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// UpdateProgressRequest is the payload for PUT /api/modules/:id/progress
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required,min=0,max=100"`
}

// DeriveCompletion computes the completed flag and completion timestamp for a
// progress value: completed iff progress >= 100, completedAt set iff completed.
func DeriveCompletion(progress int, now time.Time) (bool, *time.Time) {
	if progress >= 100 {
		return true, &now
	}
	return false, nil
}
