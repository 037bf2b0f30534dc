package inbound

import (
	"context"

	"github.com/healthmate/healthmate/internal/pkg/router"
	"github.com/healthmate/healthmate/internal/tracker/entity"
	"github.com/healthmate/healthmate/internal/tracker/usecase"
)

type uc interface {
	LogUpsert(ctx context.Context, in usecase.LogUpsertInput) (*entity.DailyLog, error)
	LogHistory(ctx context.Context, in usecase.LogHistoryInput) ([]entity.DailyLog, error)
	Streak(ctx context.Context, in usecase.StreakInput) (*usecase.StreakOutput, error)

	WorkoutSave(ctx context.Context, in usecase.WorkoutSaveInput) (*entity.Workout, error)
	WorkoutList(ctx context.Context, in usecase.WorkoutListInput) ([]entity.Workout, error)
	WorkoutDelete(ctx context.Context, in usecase.WorkoutDeleteInput) error

	MealSave(ctx context.Context, in usecase.MealSaveInput) (*entity.Meal, error)
	MealList(ctx context.Context, in usecase.MealListInput) ([]entity.Meal, error)
	MealDelete(ctx context.Context, in usecase.MealDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Daily logs
	r.POST("/api/v1/tracker/logs", end.LogUpsert)
	r.GET("/api/v1/tracker/logs", end.LogHistory)
	r.GET("/api/v1/tracker/streak", end.Streak)

	// Workouts
	r.POST("/api/v1/tracker/workouts", end.WorkoutSave)
	r.GET("/api/v1/tracker/workouts", end.WorkoutList)
	r.DELETE("/api/v1/tracker/workouts/{id}", end.WorkoutDelete)

	// Meals
	r.POST("/api/v1/tracker/meals", end.MealSave)
	r.GET("/api/v1/tracker/meals", end.MealList)
	r.DELETE("/api/v1/tracker/meals/{id}", end.MealDelete)
}
