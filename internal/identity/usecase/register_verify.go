package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type RegisterVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

func (s *Usecase) RegisterVerify(ctx context.Context, in RegisterVerifyInput) error {
	ctx, span := s.startSpan(ctx, "RegisterVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.otp.Validate(in.Email, in.Code) {
		slog.WarnContext(ctx, "register verification code rejected", "email", in.Email)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if user.Status == entity.UserStatusActive {
		return nil
	}

	if err := s.repoDB.UpdateUserStatus(ctx, user.ID, entity.UserStatusActive); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user status", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
