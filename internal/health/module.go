// Package health derives per-user health plans (BMI, calorie and macro
// targets, meal suggestions) and serves daily tips.
package health

import (
	"context"

	"github.com/healthmate/healthmate/internal/health/inbound"
	"github.com/healthmate/healthmate/internal/health/outbound/db"
	"github.com/healthmate/healthmate/internal/health/usecase"
	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/goroutine"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/pkg/router"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependency struct {
	Ctx        context.Context
	Database   *mongo.Database            `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbPlans := db.NewDB(dep.Database, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbPlans,
		Validator:  dep.Validator,
		Config:     dep.Config,
		OID:        dep.OID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
