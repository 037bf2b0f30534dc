package db

import (
	"context"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DB) GetUserByID(ctx context.Context, id string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	if err = s.mapError(s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	if err = s.mapError(s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *DB) GetUserByUsername(ctx context.Context, username string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	if err = s.mapError(s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *DB) ExistsByEmail(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsByEmail")
	defer func() { s.endSpan(span, err) }()

	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, s.mapError(err)
	}

	return count > 0, nil
}

func (s *DB) ExistsByUsername(ctx context.Context, username string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsByUsername")
	defer func() { s.endSpan(span, err) }()

	count, err := s.users.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, s.mapError(err)
	}

	return count > 0, nil
}
