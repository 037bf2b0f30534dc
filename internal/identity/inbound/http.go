package inbound

import (
	"context"

	"github.com/healthmate/healthmate/internal/identity/usecase"
	"github.com/healthmate/healthmate/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	Register(ctx context.Context, in usecase.RegisterInput) error
	RegisterVerify(ctx context.Context, in usecase.RegisterVerifyInput) error

	CheckUsername(ctx context.Context, in usecase.CheckUsernameInput) (*usecase.AvailabilityOutput, error)
	CheckEmail(ctx context.Context, in usecase.CheckEmailInput) (*usecase.AvailabilityOutput, error)

	OtpSend(ctx context.Context, in usecase.OtpSendInput) error
	OtpVerify(ctx context.Context, in usecase.OtpVerifyInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	UsernameReset(ctx context.Context, in usecase.UsernameResetInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	MetricsUpdate(ctx context.Context, in usecase.MetricsUpdateInput) error
	ProfileUpdateAvatar(ctx context.Context, in usecase.ProfileUpdateAvatarInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Auth & Registration
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/register/verify", end.RegisterVerify)

	// Availability checks
	r.GET("/api/v1/identity/availability/username", end.CheckUsername)
	r.GET("/api/v1/identity/availability/email", end.CheckEmail)

	// OTP flows & account recovery
	r.POST("/api/v1/identity/otp/send", end.OtpSend)
	r.POST("/api/v1/identity/otp/verify", end.OtpVerify)
	r.POST("/api/v1/identity/password/reset", end.PasswordReset)
	r.POST("/api/v1/identity/username/recover", end.UsernameReset)

	// User Profile (need authenticated)
	r.GET("/api/v1/identity/profile", end.Profile)
	r.PUT("/api/v1/identity/profile/metrics", end.MetricsUpdate)
	r.PUT("/api/v1/identity/profile/avatar", end.ProfileUpdateAvatar)
}
