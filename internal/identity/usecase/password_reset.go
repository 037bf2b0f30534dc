package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Email       string `validate:"required,email"`
	Code        string `validate:"required,len=6,numeric"`
	NewPassword string `validate:"required,password"`
}

func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.otp.IsValid(in.Email, in.Code) {
		slog.WarnContext(ctx, "password reset code rejected", "email", in.Email)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserPassword(ctx, in.Email, string(hashedPassword)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user password", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	// burn the code only after the reset took effect
	s.otp.Validate(in.Email, in.Code)

	return nil
}
