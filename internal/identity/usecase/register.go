package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type RegisterInput struct {
	Username      string  `validate:"required,min=3,max=30,alphanum"`
	Email         string  `validate:"required,email"`
	Password      string  `validate:"required,password"`
	Age           int     `validate:"required,gt=0,lt=150"`
	Height        float64 `validate:"required,gt=0"`
	Weight        float64 `validate:"required,gt=0"`
	ActivityLevel string  `validate:"required,alphaspace"`
	HealthGoal    string  `validate:"required,alphaspace"`
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	taken, err := s.repoDB.ExistsByUsername(ctx, in.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check username", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}
	if taken {
		return goerror.NewBusiness("Username is already taken", goerror.CodeConflict)
	}

	used, err := s.repoDB.ExistsByEmail(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}
	if used {
		return goerror.NewBusiness("Email is already in use", goerror.CodeConflict)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	now := s.clock.Now()
	newUser := entity.User{
		ID:            s.oid.Generate(),
		Username:      in.Username,
		Email:         in.Email,
		Password:      string(hashedPassword),
		Age:           in.Age,
		Height:        in.Height,
		Weight:        in.Weight,
		ActivityLevel: in.ActivityLevel,
		HealthGoal:    in.HealthGoal,
		Status:        entity.UserStatusUnverified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", newUser.Email, "error", err)
		return goerror.NewServer(err)
	}

	code := s.otp.Generate(newUser.Email)
	if err := s.repoMessaging.PublishOtpRequested(ctx, OtpRequestedEvent{
		Email:   newUser.Email,
		Code:    code,
		Purpose: entity.OtpPurposeEmailVerification,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp requested", "email", newUser.Email, "error", err)
	}

	return nil
}
