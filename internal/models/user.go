package models

import "time"

// User roles
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// User represents a registered user
type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email"`
	PasswordHash    *string   `json:"-"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpsertUser is the input for creating or updating a user keyed on id
type UpsertUser struct {
	ID              string
	Email           *string
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Role            string
}

// UserStats is the dashboard aggregate for a single user
type UserStats struct {
	CompletedModules int `json:"completedModules"`
	Badges           int `json:"badges"`
	StudyHours       int `json:"studyHours"`
	MentorSessions   int `json:"mentorSessions"`
}

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"firstName" binding:"omitempty,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,max=100"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
