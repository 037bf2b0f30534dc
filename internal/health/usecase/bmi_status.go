package usecase

import (
	"context"
)

type BmiStatusInput struct {
	UserID string `validate:"required"`
}

type BmiStatusOutput struct {
	BMI      float64
	Category string
}

// BmiStatus reads the BMI off the current plan, refreshing the plan first when
// it is stale.
func (s *Usecase) BmiStatus(ctx context.Context, in BmiStatusInput) (*BmiStatusOutput, error) {
	ctx, span := s.startSpan(ctx, "BmiStatus")
	defer span.End()

	plan, err := s.PlanGet(ctx, PlanGetInput(in))
	if err != nil {
		return nil, err
	}

	return &BmiStatusOutput{BMI: plan.CalculatedBMI, Category: plan.BMICategory}, nil
}
