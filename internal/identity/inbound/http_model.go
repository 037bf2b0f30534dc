package inbound

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

type RegisterRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Age           int     `json:"age"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activity_level"`
	HealthGoal    string  `json:"health_goal"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "Registration successful. Please check your email for the verification code."
}

type RegisterVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type RegisterVerifyResponse struct{}

func (RegisterVerifyResponse) Message() string {
	return "Account verified successfully!"
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type OtpSendRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type OtpSendResponse struct{}

func (OtpSendResponse) Message() string {
	return "OTP sent to your email!"
}

type OtpVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type OtpVerifyResponse struct{}

func (OtpVerifyResponse) Message() string {
	return "Valid"
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password reset successfully!"
}

type UsernameResetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewUsername string `json:"new_username"`
}

type UsernameResetResponse struct{}

func (UsernameResetResponse) Message() string {
	return "Username reset successfully!"
}

type ProfileResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Age           int       `json:"age"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	ActivityLevel string    `json:"activity_level"`
	HealthGoal    string    `json:"health_goal"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type MetricsUpdateRequest struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	ActivityLevel string  `json:"activity_level"`
	HealthGoal    string  `json:"health_goal"`
}

type MetricsUpdateResponse struct{}

func (MetricsUpdateResponse) Message() string {
	return "Metrics updated and plan regenerated!"
}

type AvatarUpdateResponse struct{}

func (AvatarUpdateResponse) Message() string {
	return "Avatar updated successfully!"
}
