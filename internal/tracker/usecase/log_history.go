package usecase

import (
	"context"
	"log/slog"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/tracker/entity"
)

type LogHistoryInput struct {
	UserID string `validate:"required"`
}

// LogHistory returns every daily log for the user in ascending date order.
func (s *Usecase) LogHistory(ctx context.Context, in LogHistoryInput) ([]entity.DailyLog, error) {
	ctx, span := s.startSpan(ctx, "LogHistory")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	logs, err := s.repoDB.ListLogsByUser(ctx, in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list daily logs", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return logs, nil
}
