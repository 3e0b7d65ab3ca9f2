package services

import (
	"context"
	"time"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"go.uber.org/zap"
)

const defaultSessionMinutes = 60

// MentorService handles the mentor directory and session bookings
type MentorService struct {
	mentorRepo repository.MentorRepositoryInterface
}

// NewMentorService creates a new mentor service
func NewMentorService(mentorRepo repository.MentorRepositoryInterface) *MentorService {
	return &MentorService{mentorRepo: mentorRepo}
}

var _ MentorServiceInterface = (*MentorService)(nil)

func (s *MentorService) GetMentors(ctx context.Context) ([]*models.MentorWithUser, error) {
	return s.mentorRepo.GetMentors(ctx)
}

func (s *MentorService) GetMentor(ctx context.Context, id string) (*models.MentorWithUser, error) {
	return s.mentorRepo.GetMentor(ctx, id)
}

func (s *MentorService) CreateMentor(ctx context.Context, userID string, input *models.MentorInput) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.CreateMentor(ctx, userID, input)
	if err != nil {
		logger.Error("Failed to create mentor profile", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}
	logger.Info("Mentor profile created",
		zap.String("mentor_id", mentor.ID),
		zap.String("user_id", userID))
	return mentor, nil
}

func (s *MentorService) GetMentorSessions(ctx context.Context, studentID string) ([]*models.MentorSessionWithMentor, error) {
	return s.mentorRepo.GetMentorSessions(ctx, studentID)
}

// BookSession books a mentoring session for a student. Bookings in the past
// are rejected; the duration falls back to one hour when omitted.
func (s *MentorService) BookSession(ctx context.Context, studentID string, req *models.BookSessionRequest) (*models.MentorSession, error) {
	if req.ScheduledAt.Before(time.Now()) {
		metrics.SessionBookings.WithLabelValues("invalid").Inc()
		return nil, apperrors.InvalidInputError("scheduledAt", "must be in the future")
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultSessionMinutes
	}

	session, err := s.mentorRepo.CreateMentorSession(ctx, &models.MentorSession{
		MentorID:    req.MentorID,
		StudentID:   studentID,
		Topic:       req.Topic,
		ScheduledAt: req.ScheduledAt,
		Duration:    duration,
		Status:      models.SessionStatusScheduled,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.SessionBookings.WithLabelValues("not_found").Inc()
		} else {
			metrics.SessionBookings.WithLabelValues("error").Inc()
			logger.Error("Failed to book mentor session", zap.Error(err), zap.String("student_id", studentID))
		}
		return nil, err
	}

	metrics.SessionBookings.WithLabelValues("success").Inc()
	logger.Info("Mentor session booked",
		zap.String("session_id", session.ID),
		zap.String("mentor_id", session.MentorID),
		zap.String("student_id", studentID),
		zap.Time("scheduled_at", session.ScheduledAt))
	return session, nil
}
