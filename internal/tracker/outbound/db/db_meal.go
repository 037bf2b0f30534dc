package db

import (
	"context"

	"github.com/healthmate/healthmate/internal/tracker/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *DB) CreateMeal(ctx context.Context, meal entity.Meal) (err error) {
	ctx, span := s.startSpan(ctx, "CreateMeal")
	defer func() { s.endSpan(span, err) }()

	_, err = s.meals.InsertOne(ctx, meal)
	err = s.mapError(err)
	return err
}

func (s *DB) ListMealsByUser(ctx context.Context, userID string) (_ []entity.Meal, err error) {
	ctx, span := s.startSpan(ctx, "ListMealsByUser")
	defer func() { s.endSpan(span, err) }()

	cursor, err := s.meals.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, s.mapError(err)
	}

	var meals []entity.Meal
	if err = s.mapError(cursor.All(ctx, &meals)); err != nil {
		return nil, err
	}

	return meals, nil
}

func (s *DB) GetMealByID(ctx context.Context, id string) (_ *entity.Meal, err error) {
	ctx, span := s.startSpan(ctx, "GetMealByID")
	defer func() { s.endSpan(span, err) }()

	var meal entity.Meal
	if err = s.mapError(s.meals.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)); err != nil {
		return nil, err
	}

	return &meal, nil
}

func (s *DB) DeleteMeal(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteMeal")
	defer func() { s.endSpan(span, err) }()

	_, err = s.meals.DeleteOne(ctx, bson.M{"_id": id})
	err = s.mapError(err)
	return err
}
