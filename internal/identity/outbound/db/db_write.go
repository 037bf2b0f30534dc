package db

import (
	"context"
	"time"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.users.InsertOne(ctx, user)
	err = s.mapError(err)
	return err
}

func (s *DB) UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserStatus")
	defer func() { s.endSpan(span, err) }()

	return s.updateOne(ctx, bson.M{"_id": id}, bson.M{"status": status})
}

func (s *DB) UpdateUserPassword(ctx context.Context, email, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPassword")
	defer func() { s.endSpan(span, err) }()

	return s.updateOne(ctx, bson.M{"email": email}, bson.M{"password": passwordHash})
}

func (s *DB) UpdateUserUsername(ctx context.Context, email, username string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserUsername")
	defer func() { s.endSpan(span, err) }()

	return s.updateOne(ctx, bson.M{"email": email}, bson.M{"username": username})
}

func (s *DB) UpdateUserMetrics(ctx context.Context, id string, m entity.UserMetrics) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserMetrics")
	defer func() { s.endSpan(span, err) }()

	return s.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"weight":        m.Weight,
		"height":        m.Height,
		"age":           m.Age,
		"activityLevel": m.ActivityLevel,
		"healthGoal":    m.HealthGoal,
	})
}

func (s *DB) UpdateUserAvatar(ctx context.Context, id string, avatarURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserAvatar")
	defer func() { s.endSpan(span, err) }()

	return s.updateOne(ctx, bson.M{"_id": id}, bson.M{"avatarUrl": avatarURL})
}

func (s *DB) updateOne(ctx context.Context, filter, set bson.M) error {
	set["updatedAt"] = time.Now()

	result, err := s.users.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return s.mapError(err)
	}
	if result.MatchedCount == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
