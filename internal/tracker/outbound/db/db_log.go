package db

import (
	"context"
	"time"

	"github.com/healthmate/healthmate/internal/tracker/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *DB) GetLogByUserAndDate(ctx context.Context, userID, date string) (_ *entity.DailyLog, err error) {
	ctx, span := s.startSpan(ctx, "GetLogByUserAndDate")
	defer func() { s.endSpan(span, err) }()

	var log entity.DailyLog
	if err = s.mapError(s.logs.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&log)); err != nil {
		return nil, err
	}

	return &log, nil
}

func (s *DB) UpsertLog(ctx context.Context, log entity.DailyLog) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertLog")
	defer func() { s.endSpan(span, err) }()

	filter := bson.M{"userId": log.UserID, "date": log.Date}
	_, err = s.logs.ReplaceOne(ctx, filter, log, options.Replace().SetUpsert(true))
	err = s.mapError(err)
	return err
}

func (s *DB) ListLogsByUser(ctx context.Context, userID string) (_ []entity.DailyLog, err error) {
	ctx, span := s.startSpan(ctx, "ListLogsByUser")
	defer func() { s.endSpan(span, err) }()

	cursor, err := s.logs.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, s.mapError(err)
	}

	var logs []entity.DailyLog
	if err = s.mapError(cursor.All(ctx, &logs)); err != nil {
		return nil, err
	}

	return logs, nil
}

func (s *DB) UpdateUserWeight(ctx context.Context, userID string, weight float64) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserWeight")
	defer func() { s.endSpan(span, err) }()

	set := bson.M{"weight": weight, "updatedAt": time.Now()}
	_, err = s.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	err = s.mapError(err)
	return err
}
