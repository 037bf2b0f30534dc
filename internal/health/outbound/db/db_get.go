package db

import (
	"context"

	"github.com/healthmate/healthmate/internal/health/entity"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DB) GetUserProfile(ctx context.Context, userID string) (_ *entity.UserProfile, err error) {
	ctx, span := s.startSpan(ctx, "GetUserProfile")
	defer func() { s.endSpan(span, err) }()

	var profile entity.UserProfile
	if err = s.mapError(s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *DB) GetPlanByUser(ctx context.Context, userID string) (_ *entity.HealthPlan, err error) {
	ctx, span := s.startSpan(ctx, "GetPlanByUser")
	defer func() { s.endSpan(span, err) }()

	var plan entity.HealthPlan
	if err = s.mapError(s.plans.FindOne(ctx, bson.M{"userId": userID}).Decode(&plan)); err != nil {
		return nil, err
	}

	return &plan, nil
}
