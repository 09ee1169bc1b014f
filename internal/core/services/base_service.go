package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_settlement_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	EventRepo portsrepo.EventReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a caller error with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// FindActiveEvent loads an event and hides inactive ones behind ErrNotFound.
func (s *BaseService) FindActiveEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.EventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load event", slog.String("event_id", eventID))
		}
		return nil, err
	}
	if !event.IsActive {
		return nil, fmt.Errorf("%w: event '%s'", apperrors.ErrNotFound, eventID)
	}
	return event, nil
}

// AuthorizeEventOwner checks that userID owns the active event eventID.
func (s *BaseService) AuthorizeEventOwner(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	event, err := s.FindActiveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerUserID != userID {
		err := fmt.Errorf("%w: user '%s' does not own event '%s'", apperrors.ErrForbidden, userID, eventID)
		s.LogWarn(ctx, err, "User not authorized for event", slog.String("event_id", eventID))
		return nil, err
	}
	return event, nil
}
