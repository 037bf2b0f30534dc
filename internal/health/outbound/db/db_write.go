package db

import (
	"context"

	"github.com/healthmate/healthmate/internal/health/entity"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DB) SavePlan(ctx context.Context, plan entity.HealthPlan) (err error) {
	ctx, span := s.startSpan(ctx, "SavePlan")
	defer func() { s.endSpan(span, err) }()

	_, err = s.plans.InsertOne(ctx, plan)
	err = s.mapError(err)
	return err
}

// DeletePlanByUser removes every plan document for the user. Not finding one
// is fine, the caller is about to insert a fresh plan anyway.
func (s *DB) DeletePlanByUser(ctx context.Context, userID string) (err error) {
	ctx, span := s.startSpan(ctx, "DeletePlanByUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.plans.DeleteMany(ctx, bson.M{"userId": userID})
	err = s.mapError(err)
	return err
}
