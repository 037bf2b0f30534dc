package usecase

import (
	"context"
	"log/slog"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/hash"
	"github.com/healthmate/healthmate/internal/pkg/idempotency"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/jwt"
	"github.com/healthmate/healthmate/internal/pkg/otp"
	"github.com/healthmate/healthmate/internal/pkg/storage"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type OtpRequestedEvent struct {
	Email   string
	Code    string
	Purpose entity.OtpPurpose
}

type UserMetricsUpdatedEvent struct {
	UserID        string
	Weight        float64
	Height        float64
	Age           int
	ActivityLevel string
	HealthGoal    string
}

type repoMessaging interface {
	PublishOtpRequested(ctx context.Context, msg OtpRequestedEvent) error
	PublishUserMetricsUpdated(ctx context.Context, msg UserMetricsUpdatedEvent) error
}

type repoDB interface {
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	CreateUser(ctx context.Context, user entity.User) error
	UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) error
	UpdateUserPassword(ctx context.Context, email, passwordHash string) error
	UpdateUserUsername(ctx context.Context, email, username string) error
	UpdateUserMetrics(ctx context.Context, id string, m entity.UserMetrics) error
	UpdateUserAvatar(ctx context.Context, id string, avatarURL string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	storage       storage.Storage
	hmac          hash.Hash
	bcrypt        hash.Hash
	uuid          uid.StringID
	oid           uid.StringID
	otp           otp.Registry
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Storage       storage.Storage
	HMAC          hash.Hash
	Bcrypt        hash.Hash
	UUID          uid.StringID
	OID           uid.StringID
	Otp           otp.Registry
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		storage:       dep.Storage,
		hmac:          dep.HMAC,
		bcrypt:        dep.Bcrypt,
		uuid:          dep.UUID,
		oid:           dep.OID,
		otp:           dep.Otp,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) currentUser(ctx context.Context) (*entity.User, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if err != nil {
		slog.WarnContext(ctx, "authenticated user not found", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return user, nil
}
