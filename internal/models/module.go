package models

import "time"

// Module difficulty tiers
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Module is a learning unit with a difficulty tier and lesson count
type Module struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Difficulty     string    `json:"difficulty"`
	Icon           *string   `json:"icon"`
	Lessons        int       `json:"lessons"`
	EstimatedHours *int      `json:"estimatedHours"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ModuleInput is the validated payload for creating or replacing a module
type ModuleInput struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=5000"`
	Difficulty     string  `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Icon           *string `json:"icon" binding:"omitempty,max=100"`
	Lessons        int     `json:"lessons" binding:"min=0"`
	EstimatedHours *int    `json:"estimatedHours" binding:"omitempty,min=0"`
}
