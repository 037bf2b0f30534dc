package db

import (
	"context"

	"github.com/healthmate/healthmate/internal/tracker/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *DB) CreateWorkout(ctx context.Context, workout entity.Workout) (err error) {
	ctx, span := s.startSpan(ctx, "CreateWorkout")
	defer func() { s.endSpan(span, err) }()

	_, err = s.workouts.InsertOne(ctx, workout)
	err = s.mapError(err)
	return err
}

func (s *DB) ListWorkoutsByUser(ctx context.Context, userID string) (_ []entity.Workout, err error) {
	ctx, span := s.startSpan(ctx, "ListWorkoutsByUser")
	defer func() { s.endSpan(span, err) }()

	cursor, err := s.workouts.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, s.mapError(err)
	}

	var workouts []entity.Workout
	if err = s.mapError(cursor.All(ctx, &workouts)); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (s *DB) GetWorkoutByID(ctx context.Context, id string) (_ *entity.Workout, err error) {
	ctx, span := s.startSpan(ctx, "GetWorkoutByID")
	defer func() { s.endSpan(span, err) }()

	var workout entity.Workout
	if err = s.mapError(s.workouts.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)); err != nil {
		return nil, err
	}

	return &workout, nil
}

func (s *DB) DeleteWorkout(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteWorkout")
	defer func() { s.endSpan(span, err) }()

	_, err = s.workouts.DeleteOne(ctx, bson.M{"_id": id})
	err = s.mapError(err)
	return err
}
