package models

import (
	"encoding/json"
	"time"
)

// Session is a row in the sessions table. The serialized payload holds
// whatever the authentication layer needs between requests; today that is
// just the user id and login time.
type Session struct {
	SID    string
	Sess   json.RawMessage
	Expire time.Time
}

// SessionPayload is the shape serialized into Session.Sess
type SessionPayload struct {
	UserID   string    `json:"userId"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Payload deserializes the session payload
func (s *Session) Payload() (*SessionPayload, error) {
	var p SessionPayload
	if err := json.Unmarshal(s.Sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Expired reports whether the session is past its expiry
func (s *Session) Expired(now time.Time) bool {
	return !s.Expire.After(now)
}
