package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type CheckUsernameInput struct {
	Username string `validate:"required,min=3,max=30,alphanum"`
}

type CheckEmailInput struct {
	Email string `validate:"required,email"`
}

type AvailabilityOutput struct {
	Available bool
}

func (s *Usecase) CheckUsername(ctx context.Context, in CheckUsernameInput) (*AvailabilityOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckUsername")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	taken, err := s.repoDB.ExistsByUsername(ctx, in.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check username", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AvailabilityOutput{Available: !taken}, nil
}

func (s *Usecase) CheckEmail(ctx context.Context, in CheckEmailInput) (*AvailabilityOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckEmail")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	used, err := s.repoDB.ExistsByEmail(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AvailabilityOutput{Available: !used}, nil
}
