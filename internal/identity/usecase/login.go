package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	AccessToken string
	UserID      string
	Username    string
	Email       string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	username := strings.TrimSpace(in.Username)
	user, err := s.repoDB.GetUserByUsername(ctx, username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "username", username)
		return nil, goerror.NewBusiness("Invalid username or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if user.Status == entity.UserStatusUnverified {
		slog.WarnContext(ctx, "user account is unverified", "user_id", user.ID)
		return nil, goerror.NewBusiness("Email not verified", goerror.CodeForbidden)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid username or password", goerror.CodeUnauthorized)
	}

	acToken, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccessToken: acToken,
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
	}, nil
}
