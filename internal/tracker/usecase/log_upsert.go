package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/tracker/entity"
)

type LogUpsertInput struct {
	UserID             string  `validate:"required"`
	Date               string  `validate:"omitempty,datetime=2006-01-02"`
	Weight             float64 `validate:"required,gt=0"`
	CaloriesBurned     int     `validate:"gte=0"`
	WaterIntake        float64 `validate:"gte=0"`
	SleepDuration      float64 `validate:"gte=0"`
	Notes              string  `validate:"max=500"`
	DailyCalorieTarget int     `validate:"gte=0"`
	DailyWaterTarget   float64 `validate:"gte=0"`
	DailySleepTarget   float64 `validate:"gte=0"`
}

// LogUpsert records the day's metrics, one document per user and date. The
// logged weight also becomes the user's current weight, which feeds the next
// plan regeneration.
func (s *Usecase) LogUpsert(ctx context.Context, in LogUpsertInput) (*entity.DailyLog, error) {
	ctx, span := s.startSpan(ctx, "LogUpsert")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	date := in.Date
	if date == "" {
		date = s.clock.Now().Format(time.DateOnly)
	}

	log := entity.DailyLog{
		UserID:             in.UserID,
		Date:               date,
		Weight:             in.Weight,
		CaloriesBurned:     in.CaloriesBurned,
		WaterIntake:        in.WaterIntake,
		SleepDuration:      in.SleepDuration,
		Notes:              in.Notes,
		DailyCalorieTarget: in.DailyCalorieTarget,
		DailyWaterTarget:   in.DailyWaterTarget,
		DailySleepTarget:   in.DailySleepTarget,
	}

	existing, err := s.repoDB.GetLogByUserAndDate(ctx, in.UserID, date)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		log.ID = s.oid.Generate()
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get daily log", "user_id", in.UserID, "date", date, "error", err)
		return nil, goerror.NewServer(err)
	default:
		log.ID = existing.ID
	}

	if err := s.repoDB.UpsertLog(ctx, log); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert daily log", "user_id", in.UserID, "date", date, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserWeight(ctx, in.UserID, in.Weight); err != nil {
		slog.WarnContext(ctx, "failed to sync user weight from daily log", "user_id", in.UserID, "error", err)
	} else if err := s.repoMessaging.PublishUserWeightUpdated(ctx, UserWeightUpdatedEvent{
		UserID: in.UserID,
		Weight: in.Weight,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish user weight updated", "user_id", in.UserID, "error", err)
	}

	return &log, nil
}
