package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
)

type OtpVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

// OtpVerify is a non-consuming check, the code stays usable for the follow-up
// reset call.
func (s *Usecase) OtpVerify(ctx context.Context, in OtpVerifyInput) error {
	ctx, span := s.startSpan(ctx, "OtpVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.otp.IsValid(in.Email, in.Code) {
		slog.WarnContext(ctx, "otp verification code rejected", "email", in.Email)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	return nil
}
