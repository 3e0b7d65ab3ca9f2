package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMentorService_BookSession(t *testing.T) {
	mentorRepo := new(MockMentorRepository)
	service := services.NewMentorService(mentorRepo)
	ctx := context.Background()

	scheduledAt := time.Now().Add(24 * time.Hour)
	mentorRepo.On("CreateMentorSession", ctx, mock.MatchedBy(func(s *models.MentorSession) bool {
		return s.MentorID == "men1" && s.StudentID == "u1" &&
			s.Duration == 60 && s.Status == models.SessionStatusScheduled
	})).Return(&models.MentorSession{
		ID:          "s1",
		MentorID:    "men1",
		StudentID:   "u1",
		ScheduledAt: scheduledAt,
		Duration:    60,
		Status:      models.SessionStatusScheduled,
	}, nil).Once()

	// Duration omitted falls back to one hour
	session, err := service.BookSession(ctx, "u1", &models.BookSessionRequest{
		MentorID:    "men1",
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, session.Duration)
	mentorRepo.AssertExpectations(t)
}

func TestMentorService_BookSession_PastTime(t *testing.T) {
	mentorRepo := new(MockMentorRepository)
	service := services.NewMentorService(mentorRepo)

	_, err := service.BookSession(context.Background(), "u1", &models.BookSessionRequest{
		MentorID:    "men1",
		ScheduledAt: time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	mentorRepo.AssertNotCalled(t, "CreateMentorSession")
}

func TestMentorService_BookSession_UnknownMentor(t *testing.T) {
	mentorRepo := new(MockMentorRepository)
	service := services.NewMentorService(mentorRepo)
	ctx := context.Background()

	mentorRepo.On("CreateMentorSession", ctx, mock.AnythingOfType("*models.MentorSession")).
		Return(nil, apperrors.NotFoundError("mentor")).Once()

	_, err := service.BookSession(ctx, "u1", &models.BookSessionRequest{
		MentorID:    "ghost",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
