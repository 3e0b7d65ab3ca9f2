package models

import "time"

// Mentor is a user-linked profile offering bookable sessions.
// Rating is stored on a 0-100 scale and displayed as 0-5 stars.
type Mentor struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Expertise     []string  `json:"expertise"`
	Bio           *string   `json:"bio"`
	HourlyRate    *int      `json:"hourlyRate"`
	Rating        int       `json:"rating"`
	TotalSessions int       `json:"totalSessions"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Stars converts the stored 0-100 rating to a 0-5 star scale
func (m *Mentor) Stars() float64 {
	return float64(m.Rating) / 20.0
}

// MentorWithUser is a mentor profile flattened with its user row
type MentorWithUser struct {
	Mentor
	User User `json:"user"`
}

// MentorInput is the validated payload for creating a mentor profile.
// The user id is taken from the session, never from the body.
type MentorInput struct {
	Expertise   []string `json:"expertise" binding:"omitempty,dive,max=100"`
	Bio         *string  `json:"bio" binding:"omitempty,max=5000"`
	HourlyRate  *int     `json:"hourlyRate" binding:"omitempty,min=0"`
	IsAvailable *bool    `json:"isAvailable"`
}
