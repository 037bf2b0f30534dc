package db

import (
	"context"
	"errors"
	"time"

	"github.com/healthmate/healthmate/internal/notification/entity"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const collectionEmailLogs = "email_logs"

type DB struct {
	emailLogs *mongo.Collection
	ins       instrument.Instrumentation
}

func NewDB(database *mongo.Database, ins instrument.Instrumentation) *DB {
	return &DB{
		emailLogs: database.Collection(collectionEmailLogs),
		ins:       ins,
	}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DB) CreateEmailLog(ctx context.Context, log entity.EmailLog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEmailLog")
	defer func() { s.endSpan(span, err) }()

	_, err = s.emailLogs.InsertOne(ctx, log)
	err = s.mapError(err)
	return err
}

func (s *DB) UpdateEmailLogStatus(ctx context.Context, id string, status entity.DeliveryStatus, sendErr string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateEmailLogStatus")
	defer func() { s.endSpan(span, err) }()

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if sendErr != "" {
		set["error"] = sendErr
	}

	result, err := s.emailLogs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return s.mapError(err)
	}
	if result.MatchedCount == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
