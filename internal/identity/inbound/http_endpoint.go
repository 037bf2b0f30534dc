package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/healthmate/healthmate/internal/identity/usecase"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account and recovery workflows.
type HTTPEndpoint struct {
	uc uc
}

// Login authenticates a user and returns a bearer token.
// @Summary Authenticate user
// @Description Validates username and password and returns a JWT access token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		TokenType:   "Bearer",
		UserID:      resp.UserID,
		Username:    resp.Username,
		Email:       resp.Email,
	}, nil
}

// Register creates a new account with physical stats and sends a verification code.
// @Summary Register user
// @Description Creates an unverified account and emails a one-time verification code.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse "Registration accepted"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username or email already in use"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		Age:           req.Age,
		Height:        req.Height,
		Weight:        req.Weight,
		ActivityLevel: req.ActivityLevel,
		HealthGoal:    req.HealthGoal,
	}); err != nil {
		return nil, err
	}

	return RegisterResponse{}, nil
}

// RegisterVerify confirms the emailed verification code and activates the account.
// @Summary Verify registration
// @Description Consumes the one-time verification code and marks the account active.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body RegisterVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse "Account activated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register/verify [post]
func (h *HTTPEndpoint) RegisterVerify(r *router.Request) (any, error) {
	var req RegisterVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegisterVerify(r.Context(), usecase.RegisterVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return RegisterVerifyResponse{}, nil
}

// CheckUsername reports whether a username is still available.
// @Summary Check username availability
// @Tags Identity, Registration
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} router.successResponse{data=AvailabilityResponse} "Availability result"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/availability/username [get]
func (h *HTTPEndpoint) CheckUsername(r *router.Request) (any, error) {
	resp, err := h.uc.CheckUsername(r.Context(), usecase.CheckUsernameInput{
		Username: r.GetQuery("username"),
	})
	if err != nil {
		return nil, err
	}

	return AvailabilityResponse{Available: resp.Available}, nil
}

// CheckEmail reports whether an email is still available.
// @Summary Check email availability
// @Tags Identity, Registration
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} router.successResponse{data=AvailabilityResponse} "Availability result"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/availability/email [get]
func (h *HTTPEndpoint) CheckEmail(r *router.Request) (any, error) {
	resp, err := h.uc.CheckEmail(r.Context(), usecase.CheckEmailInput{
		Email: r.GetQuery("email"),
	})
	if err != nil {
		return nil, err
	}

	return AvailabilityResponse{Available: resp.Available}, nil
}

// OtpSend issues a one-time code for signup verification or account recovery.
// @Summary Send OTP
// @Description Generates a one-time code for the given purpose and emails it.
// @Tags Identity, Recovery
// @Accept json
// @Produce json
// @Param request body OtpSendRequest true "OTP request payload"
// @Success 200 {object} router.successResponse "OTP sent"
// @Failure 404 {object} router.errorResponse "Email not found"
// @Failure 409 {object} router.errorResponse "Email already in use"
// @Failure 429 {object} router.errorResponse "OTP recently sent"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/otp/send [post]
func (h *HTTPEndpoint) OtpSend(r *router.Request) (any, error) {
	var req OtpSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpSend(r.Context(), usecase.OtpSendInput{
		Email:   req.Email,
		Purpose: req.Purpose,
	}); err != nil {
		return nil, err
	}

	return OtpSendResponse{}, nil
}

// OtpVerify checks a one-time code without consuming it.
// @Summary Verify OTP
// @Tags Identity, Recovery
// @Accept json
// @Produce json
// @Param request body OtpVerifyRequest true "OTP verification payload"
// @Success 200 {object} router.successResponse "Code is valid"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/identity/otp/verify [post]
func (h *HTTPEndpoint) OtpVerify(r *router.Request) (any, error) {
	var req OtpVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpVerify(r.Context(), usecase.OtpVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return OtpVerifyResponse{}, nil
}

// PasswordReset sets a new password after OTP verification.
// @Summary Reset password
// @Tags Identity, Recovery
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Password reset payload"
// @Success 200 {object} router.successResponse "Password updated"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// UsernameReset sets a new username after OTP verification.
// @Summary Recover username
// @Tags Identity, Recovery
// @Accept json
// @Produce json
// @Param request body UsernameResetRequest true "Username reset payload"
// @Success 200 {object} router.successResponse "Username updated"
// @Failure 409 {object} router.errorResponse "Username already taken"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/username/recover [post]
func (h *HTTPEndpoint) UsernameReset(r *router.Request) (any, error) {
	var req UsernameResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.UsernameReset(r.Context(), usecase.UsernameResetInput{
		Email:       req.Email,
		Code:        req.Code,
		NewUsername: req.NewUsername,
	}); err != nil {
		return nil, err
	}

	return UsernameResetResponse{}, nil
}

// Profile retrieves the current user's account details.
// @Summary Get profile
// @Description Returns profile information for the authenticated user.
// @Tags Identity, Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/identity/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:            resp.ID,
		Username:      resp.Username,
		Email:         resp.Email,
		Age:           resp.Age,
		Height:        resp.Height,
		Weight:        resp.Weight,
		ActivityLevel: resp.ActivityLevel,
		HealthGoal:    resp.HealthGoal,
		AvatarURL:     resp.AvatarURL,
		CreatedAt:     resp.CreatedAt,
	}, nil
}

// MetricsUpdate updates the user's physical stats and triggers a plan refresh.
// @Summary Update metrics
// @Description Updates weight, height, age, activity level and health goal.
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body MetricsUpdateRequest true "Metrics payload"
// @Success 200 {object} router.successResponse "Metrics updated"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/profile/metrics [put]
func (h *HTTPEndpoint) MetricsUpdate(r *router.Request) (any, error) {
	var req MetricsUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.MetricsUpdate(r.Context(), usecase.MetricsUpdateInput{
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		ActivityLevel: req.ActivityLevel,
		HealthGoal:    req.HealthGoal,
	}); err != nil {
		return nil, err
	}

	return MetricsUpdateResponse{}, nil
}

// ProfileUpdateAvatar uploads a new avatar image.
// @Summary Update avatar
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} router.successResponse "Avatar updated"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Unsupported or oversized file"
// @Router /api/v1/identity/profile/avatar [put]
func (h *HTTPEndpoint) ProfileUpdateAvatar(r *router.Request) (any, error) {
	ctx := r.Context()

	file, err := r.StreamSingleFile("avatar")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	if err := h.uc.ProfileUpdateAvatar(ctx, usecase.ProfileUpdateAvatarInput{
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	}); err != nil {
		return nil, err
	}

	return AvatarUpdateResponse{}, nil
}
