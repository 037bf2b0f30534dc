package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type PlanGetInput struct {
	UserID string `validate:"required"`
}

// PlanGet returns the stored plan when it was computed today and already
// carries meal suggestions. Anything else, a missing plan, a plan from a
// previous day, or a legacy plan without suggestions, triggers a rebuild.
func (s *Usecase) PlanGet(ctx context.Context, in PlanGetInput) (*entity.HealthPlan, error) {
	ctx, span := s.startSpan(ctx, "PlanGet")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	plan, err := s.repoDB.GetPlanByUser(ctx, in.UserID)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get plan by user", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if plan != nil && len(plan.MealSuggestions) > 0 && plan.LastUpdated == s.clock.Now().Format(time.DateOnly) {
		return plan, nil
	}

	return s.rebuildPlan(ctx, in.UserID)
}

// rebuildPlan replaces the stored plan wholesale. Delete-then-insert keeps the
// document free of stale fields from older plan shapes.
func (s *Usecase) rebuildPlan(ctx context.Context, userID string) (*entity.HealthPlan, error) {
	profile, err := s.repoDB.GetUserProfile(ctx, userID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user profile not found", "user_id", userID)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user profile", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	plan, err := s.computePlan(*profile, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.DeletePlanByUser(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete plan by user", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.SavePlan(ctx, plan); err != nil {
		slog.ErrorContext(ctx, "failed to repo save plan", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &plan, nil
}
