package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/tracker/entity"
)

type WorkoutSaveInput struct {
	UserID         string `validate:"required"`
	Date           string `validate:"omitempty,datetime=2006-01-02"`
	ExerciseType   string `validate:"required,max=100"`
	Duration       int    `validate:"required,gt=0"`
	CaloriesBurned int    `validate:"gte=0"`
	Notes          string `validate:"max=500"`
}

func (s *Usecase) WorkoutSave(ctx context.Context, in WorkoutSaveInput) (*entity.Workout, error) {
	ctx, span := s.startSpan(ctx, "WorkoutSave")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	date := in.Date
	if date == "" {
		date = s.clock.Now().Format(time.DateOnly)
	}

	workout := entity.Workout{
		ID:             s.oid.Generate(),
		UserID:         in.UserID,
		Date:           date,
		ExerciseType:   in.ExerciseType,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
	}

	if err := s.repoDB.CreateWorkout(ctx, workout); err != nil {
		slog.ErrorContext(ctx, "failed to repo create workout", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &workout, nil
}

type WorkoutListInput struct {
	UserID string `validate:"required"`
}

func (s *Usecase) WorkoutList(ctx context.Context, in WorkoutListInput) ([]entity.Workout, error) {
	ctx, span := s.startSpan(ctx, "WorkoutList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	workouts, err := s.repoDB.ListWorkoutsByUser(ctx, in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list workouts", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return workouts, nil
}

type WorkoutDeleteInput struct {
	UserID    string `validate:"required"`
	WorkoutID string `validate:"required"`
}

// WorkoutDelete removes the workout only when it belongs to the caller.
func (s *Usecase) WorkoutDelete(ctx context.Context, in WorkoutDeleteInput) error {
	ctx, span := s.startSpan(ctx, "WorkoutDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	workout, err := s.repoDB.GetWorkoutByID(ctx, in.WorkoutID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Workout not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get workout", "workout_id", in.WorkoutID, "error", err)
		return goerror.NewServer(err)
	}

	if workout.UserID != in.UserID {
		slog.WarnContext(ctx, "workout delete rejected for non-owner", "workout_id", in.WorkoutID, "user_id", in.UserID)
		return goerror.NewBusiness("Workout not found", goerror.CodeNotFound)
	}

	if err := s.repoDB.DeleteWorkout(ctx, in.WorkoutID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete workout", "workout_id", in.WorkoutID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
