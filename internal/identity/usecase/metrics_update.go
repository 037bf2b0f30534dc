package usecase

import (
	"context"
	"log/slog"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type MetricsUpdateInput struct {
	Weight        float64 `validate:"required,gt=0"`
	Height        float64 `validate:"required,gt=0"`
	Age           int     `validate:"required,gt=0,lt=150"`
	ActivityLevel string  `validate:"required,alphaspace"`
	HealthGoal    string  `validate:"required,alphaspace"`
}

func (s *Usecase) MetricsUpdate(ctx context.Context, in MetricsUpdateInput) error {
	ctx, span := s.startSpan(ctx, "MetricsUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	metrics := entity.UserMetrics{
		Weight:        in.Weight,
		Height:        in.Height,
		Age:           in.Age,
		ActivityLevel: in.ActivityLevel,
		HealthGoal:    in.HealthGoal,
	}
	if err := s.repoDB.UpdateUserMetrics(ctx, user.ID, metrics); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user metrics", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	// the health module regenerates the plan from this event
	if err := s.repoMessaging.PublishUserMetricsUpdated(ctx, UserMetricsUpdatedEvent{
		UserID:        user.ID,
		Weight:        in.Weight,
		Height:        in.Height,
		Age:           in.Age,
		ActivityLevel: in.ActivityLevel,
		HealthGoal:    in.HealthGoal,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user metrics updated", "user_id", user.ID, "error", err)
	}

	return nil
}
