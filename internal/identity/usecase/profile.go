package usecase

import (
	"context"
	"time"
)

type ProfileOutput struct {
	ID            string
	Username      string
	Email         string
	Age           int
	Height        float64
	Weight        float64
	ActivityLevel string
	HealthGoal    string
	AvatarURL     string
	CreatedAt     time.Time
}

// Profile returns the authenticated user's account, the password hash never
// leaves the usecase.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Age:           user.Age,
		Height:        user.Height,
		Weight:        user.Weight,
		ActivityLevel: user.ActivityLevel,
		HealthGoal:    user.HealthGoal,
		AvatarURL:     user.AvatarURL,
		CreatedAt:     user.CreatedAt,
	}, nil
}
