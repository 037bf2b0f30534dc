package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/healthmate/healthmate/internal/notification/entity"
	"github.com/healthmate/healthmate/internal/pkg/mail"
	"github.com/sethvargo/go-retry"
)

// otpEmailTemplate is the OTP email body. The copy tells users the code lasts
// one minute even though the registry keeps it for five; product owns that
// wording, do not change it here.
const otpEmailTemplate = "<div style='font-family: Arial, sans-serif; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px; max-width: 500px; margin: 0 auto;'>" +
	"<h2 style='color: #6366f1; text-align: center;'>HealthMate</h2>" +
	"<h3 style='text-align: center; color: #333;'>%s</h3>" +
	"<p style='font-size: 16px; color: #555;'>Your One-Time Password (OTP) is:</p>" +
	"<h1 style='text-align: center; color: #10b981; letter-spacing: 5px; background: #f3f4f6; padding: 10px; border-radius: 5px;'>%s</h1>" +
	"<p style='font-size: 14px; color: #ef4444; text-align: center;'>This OTP expires in <strong>1 minute</strong>.</p>" +
	"<p style='font-size: 12px; color: #999; text-align: center;'>If you did not request this, please ignore this email.</p>" +
	"</div>"

type ConsumeOtpRequestedInput struct {
	Email   string `validate:"required,email"`
	Code    string `validate:"required,len=6,numeric"`
	Purpose string `validate:"required"`
}

func otpSubject(purpose string) string {
	switch purpose {
	case "password_reset":
		return "Password Reset OTP - HealthMate"
	case "username_recovery":
		return "Username Recovery OTP - HealthMate"
	case "email_verification":
		return "Verify Your Email - HealthMate"
	default:
		return "HealthMate OTP"
	}
}

func (s *Usecase) ConsumeOtpRequested(ctx context.Context, in ConsumeOtpRequestedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOtpRequested")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	subject := otpSubject(in.Purpose)
	log := entity.EmailLog{
		ID:        s.oid.Generate(),
		Email:     in.Email,
		Purpose:   in.Purpose,
		Subject:   subject,
		Status:    entity.DeliveryStatusQueued,
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	}
	if err := s.repoDB.CreateEmailLog(ctx, log); err != nil {
		slog.ErrorContext(ctx, "failed to repo create email log", "email", in.Email, "error", err)
		return err
	}

	msg := mail.Message{
		To:       []string{in.Email},
		Subject:  subject,
		HTMLBody: fmt.Sprintf(otpEmailTemplate, subject, in.Code),
	}

	b := retry.NewExponential(500 * time.Millisecond)
	b = retry.WithMaxRetries(3, b)

	sendErr := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.repoMail.Send(ctx, msg); err != nil {
			slog.WarnContext(ctx, "otp email send attempt failed", "log_id", log.ID, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})

	if sendErr != nil {
		if err := s.repoDB.UpdateEmailLogStatus(ctx, log.ID, entity.DeliveryStatusFailed, sendErr.Error()); err != nil {
			slog.ErrorContext(ctx, "failed to repo update email log status failed", "log_id", log.ID, "error", err)
		}
		slog.ErrorContext(ctx, "failed to send otp email", "log_id", log.ID, "email", in.Email, "error", sendErr)
		return sendErr
	}

	if err := s.repoDB.UpdateEmailLogStatus(ctx, log.ID, entity.DeliveryStatusSent, ""); err != nil {
		slog.ErrorContext(ctx, "failed to repo update email log status sent", "log_id", log.ID, "error", err)
	}

	return nil
}
