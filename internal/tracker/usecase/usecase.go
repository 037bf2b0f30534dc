package usecase

import (
	"context"

	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"github.com/healthmate/healthmate/internal/tracker/entity"
	"go.opentelemetry.io/otel/trace"
)

type UserWeightUpdatedEvent struct {
	UserID string
	Weight float64
}

type repoMessaging interface {
	PublishUserWeightUpdated(ctx context.Context, msg UserWeightUpdatedEvent) error
}

type repoDB interface {
	GetLogByUserAndDate(ctx context.Context, userID, date string) (*entity.DailyLog, error)
	UpsertLog(ctx context.Context, log entity.DailyLog) error
	ListLogsByUser(ctx context.Context, userID string) ([]entity.DailyLog, error)
	UpdateUserWeight(ctx context.Context, userID string, weight float64) error

	CreateWorkout(ctx context.Context, workout entity.Workout) error
	ListWorkoutsByUser(ctx context.Context, userID string) ([]entity.Workout, error)
	GetWorkoutByID(ctx context.Context, id string) (*entity.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error

	CreateMeal(ctx context.Context, meal entity.Meal) error
	ListMealsByUser(ctx context.Context, userID string) ([]entity.Meal, error)
	GetMealByID(ctx context.Context, id string) (*entity.Meal, error)
	DeleteMeal(ctx context.Context, id string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	oid           uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	OID           uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		oid:           dep.OID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("tracker.usecase").Start(ctx, name)
}
