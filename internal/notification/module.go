// Package notification delivers transactional email for events published by
// the other modules, currently the OTP emails.
package notification

import (
	"context"

	"github.com/healthmate/healthmate/internal/notification/inbound"
	"github.com/healthmate/healthmate/internal/notification/outbound/db"
	"github.com/healthmate/healthmate/internal/notification/outbound/email"
	"github.com/healthmate/healthmate/internal/notification/usecase"
	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/goroutine"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/mail"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependency struct {
	Ctx        context.Context
	Database   *mongo.Database            `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
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

	dbLogs := db.NewDB(dep.Database, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbLogs,
		RepoMail:   repoMail,
		Validator:  dep.Validator,
		Config:     dep.Config,
		OID:        dep.OID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
