package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/idempotency"
)

type OtpSendInput struct {
	Email   string `validate:"required,email"`
	Purpose string `validate:"required"`
}

func (s *Usecase) OtpSend(ctx context.Context, in OtpSendInput) error {
	ctx, span := s.startSpan(ctx, "OtpSend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	purpose := entity.OtpPurposeFromString(in.Purpose)
	if !purpose.IsValid() {
		return goerror.NewInvalidInput(nil, "purpose", "purpose is not recognized")
	}

	registered, err := s.repoDB.ExistsByEmail(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if purpose == entity.OtpPurposeEmailVerification && registered {
		return goerror.NewBusiness("Email is already in use", goerror.CodeConflict)
	}
	if purpose != entity.OtpPurposeEmailVerification && !registered {
		return goerror.NewBusiness("Email not found", goerror.CodeNotFound)
	}

	// one in-flight request per email+purpose; raw emails never become redis keys
	guard, err := s.hmac.Hash(in.Email + ":" + purpose.String())
	if err != nil {
		return goerror.NewServer(err)
	}

	err = s.idemp.Exec(ctx, "identity:otp:"+string(guard), func(ctx context.Context) error {
		code := s.otp.Generate(in.Email)
		return s.repoMessaging.PublishOtpRequested(ctx, OtpRequestedEvent{
			Email:   in.Email,
			Code:    code,
			Purpose: purpose,
		})
	}, idempotency.WithLockDuration(s.cfg.GetSecond("modules.identity.otp_resend_guard_seconds")),
		idempotency.WithStateTTL(s.cfg.GetSecond("modules.identity.otp_resend_guard_seconds")))

	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		return goerror.NewBusiness("OTP was recently sent, please wait before retrying", goerror.CodeTooManyRequest)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp", "email", in.Email, "purpose", purpose.String(), "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
