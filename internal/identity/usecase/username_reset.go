package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type UsernameResetInput struct {
	Email       string `validate:"required,email"`
	Code        string `validate:"required,len=6,numeric"`
	NewUsername string `validate:"required,min=3,max=30,alphanum"`
}

func (s *Usecase) UsernameReset(ctx context.Context, in UsernameResetInput) error {
	ctx, span := s.startSpan(ctx, "UsernameReset")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.NewUsername = strings.TrimSpace(in.NewUsername)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.otp.IsValid(in.Email, in.Code) {
		slog.WarnContext(ctx, "username reset code rejected", "email", in.Email)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	taken, err := s.repoDB.ExistsByUsername(ctx, in.NewUsername)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check username", "username", in.NewUsername, "error", err)
		return goerror.NewServer(err)
	}
	if taken {
		return goerror.NewBusiness("Username is already taken", goerror.CodeConflict)
	}

	_, err = s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserUsername(ctx, in.Email, in.NewUsername); err != nil {
		slog.ErrorContext(ctx, "failed to repo update username", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	s.otp.Validate(in.Email, in.Code)

	return nil
}
