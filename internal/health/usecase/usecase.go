package usecase

import (
	"context"

	"github.com/healthmate/healthmate/internal/health/entity"
	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	GetPlanByUser(ctx context.Context, userID string) (*entity.HealthPlan, error)
	SavePlan(ctx context.Context, plan entity.HealthPlan) error
	DeletePlanByUser(ctx context.Context, userID string) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	oid       uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	OID        uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		oid:       dep.OID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("health.usecase").Start(ctx, name)
}
