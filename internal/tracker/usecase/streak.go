package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/tracker/entity"
	"github.com/samber/lo"
)

type StreakInput struct {
	UserID string `validate:"required"`
}

type StreakOutput struct {
	Days int
}

// Streak counts consecutive logged days walking backwards from today, or from
// yesterday when today has no log yet, so an unfinished day does not break the
// chain.
func (s *Usecase) Streak(ctx context.Context, in StreakInput) (*StreakOutput, error) {
	ctx, span := s.startSpan(ctx, "Streak")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	logs, err := s.repoDB.ListLogsByUser(ctx, in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list daily logs", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	logged := lo.SliceToMap(logs, func(l entity.DailyLog) (string, struct{}) {
		return l.Date, struct{}{}
	})

	today := s.clock.Now()
	start := today
	if _, ok := logged[today.Format(time.DateOnly)]; !ok {
		start = today.AddDate(0, 0, -1)
		if _, ok := logged[start.Format(time.DateOnly)]; !ok {
			return &StreakOutput{Days: 0}, nil
		}
	}

	days := 0
	for current := start; ; current = current.AddDate(0, 0, -1) {
		if _, ok := logged[current.Format(time.DateOnly)]; !ok {
			break
		}
		days++
	}

	return &StreakOutput{Days: days}, nil
}
