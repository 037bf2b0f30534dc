package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/tracker/entity"
)

type MealSaveInput struct {
	UserID   string  `validate:"required"`
	Date     string  `validate:"omitempty,datetime=2006-01-02"`
	MealType string  `validate:"required,oneof=Breakfast Lunch Snack Dinner"`
	Calories int     `validate:"required,gt=0"`
	Protein  float64 `validate:"gte=0"`
	Carbs    float64 `validate:"gte=0"`
	Fats     float64 `validate:"gte=0"`
	Notes    string  `validate:"max=500"`
}

func (s *Usecase) MealSave(ctx context.Context, in MealSaveInput) (*entity.Meal, error) {
	ctx, span := s.startSpan(ctx, "MealSave")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	date := in.Date
	if date == "" {
		date = s.clock.Now().Format(time.DateOnly)
	}

	meal := entity.Meal{
		ID:       s.oid.Generate(),
		UserID:   in.UserID,
		Date:     date,
		MealType: in.MealType,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Notes:    in.Notes,
	}

	if err := s.repoDB.CreateMeal(ctx, meal); err != nil {
		slog.ErrorContext(ctx, "failed to repo create meal", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &meal, nil
}

type MealListInput struct {
	UserID string `validate:"required"`
}

func (s *Usecase) MealList(ctx context.Context, in MealListInput) ([]entity.Meal, error) {
	ctx, span := s.startSpan(ctx, "MealList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	meals, err := s.repoDB.ListMealsByUser(ctx, in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list meals", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return meals, nil
}

type MealDeleteInput struct {
	UserID string `validate:"required"`
	MealID string `validate:"required"`
}

// MealDelete removes the meal only when it belongs to the caller.
func (s *Usecase) MealDelete(ctx context.Context, in MealDeleteInput) error {
	ctx, span := s.startSpan(ctx, "MealDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	meal, err := s.repoDB.GetMealByID(ctx, in.MealID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Meal not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get meal", "meal_id", in.MealID, "error", err)
		return goerror.NewServer(err)
	}

	if meal.UserID != in.UserID {
		slog.WarnContext(ctx, "meal delete rejected for non-owner", "meal_id", in.MealID, "user_id", in.UserID)
		return goerror.NewBusiness("Meal not found", goerror.CodeNotFound)
	}

	if err := s.repoDB.DeleteMeal(ctx, in.MealID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete meal", "meal_id", in.MealID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
