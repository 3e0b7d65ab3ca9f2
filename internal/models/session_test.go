package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expire  time.Time
		expired bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"past expiry", now.Add(-time.Hour), true},
		{"exactly now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{SID: "s1", Expire: tt.expire}
			assert.Equal(t, tt.expired, s.Expired(now))
		})
	}
}

func TestSession_Payload(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(SessionPayload{UserID: "user-1", IssuedAt: issued})
	require.NoError(t, err)

	s := &Session{SID: "s1", Sess: raw}

	payload, err := s.Payload()
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.True(t, payload.IssuedAt.Equal(issued))
}

func TestSession_PayloadInvalidJSON(t *testing.T) {
	s := &Session{SID: "s1", Sess: json.RawMessage("{not json")}

	_, err := s.Payload()
	assert.Error(t, err)
}
