// Package identity manages accounts: registration and verification, login,
// OTP-gated recovery flows, and profile upkeep.
package identity

import (
	"github.com/redis/go-redis/v9"
	"github.com/healthmate/healthmate/internal/identity/inbound"
	"github.com/healthmate/healthmate/internal/identity/outbound/db"
	"github.com/healthmate/healthmate/internal/identity/outbound/mq"
	"github.com/healthmate/healthmate/internal/identity/usecase"
	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/hash"
	"github.com/healthmate/healthmate/internal/pkg/idempotency"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/jwt"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/pkg/otp"
	"github.com/healthmate/healthmate/internal/pkg/router"
	"github.com/healthmate/healthmate/internal/pkg/storage"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependency struct {
	Database    *mongo.Database            `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	OID         uid.StringID               `validate:"required"`
	HMAC        hash.Hash                  `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Otp         otp.Registry               `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbUsers := db.NewDB(dep.Database, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbUsers,
		RepoMessaging: repoMsg,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Storage:       dep.Storage,
		HMAC:          dep.HMAC,
		Bcrypt:        dep.Bcrypt,
		UUID:          dep.UUID,
		OID:           dep.OID,
		Otp:           dep.Otp,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
