package usecase

import (
	"context"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type PlanRegenerateInput struct {
	UserID string `validate:"required"`
}

// PlanRegenerate recomputes the plan unconditionally, regardless of how fresh
// the stored one is. Used after profile metric changes.
func (s *Usecase) PlanRegenerate(ctx context.Context, in PlanRegenerateInput) (*entity.HealthPlan, error) {
	ctx, span := s.startSpan(ctx, "PlanRegenerate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	return s.rebuildPlan(ctx, in.UserID)
}
