package models

import "time"

// Mentor session statuses. Transitions are caller-driven; no state machine is
// enforced server-side.
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// MentorSession is a booked session between a mentor and a student
type MentorSession struct {
	ID          string    `json:"id"`
	MentorID    string    `json:"mentorId"`
	StudentID   string    `json:"studentId"`
	Topic       *string   `json:"topic"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MentorSessionWithMentor is a session joined with the mentor and their user
type MentorSessionWithMentor struct {
	MentorSession
	Mentor MentorWithUser `json:"mentor"`
}

// BookSessionRequest is the payload for POST /api/mentor-sessions
type BookSessionRequest struct {
	MentorID    string    `json:"mentorId" binding:"required"`
	Topic       *string   `json:"topic" binding:"omitempty,max=200"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Duration    int       `json:"duration" binding:"omitempty,min=15,max=480"`
}
