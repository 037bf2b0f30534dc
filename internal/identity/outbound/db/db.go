package db

import (
	"context"
	"errors"

	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const collectionUsers = "users"

type DB struct {
	users *mongo.Collection
	ins   instrument.Instrumentation
}

func NewDB(database *mongo.Database, ins instrument.Instrumentation) *DB {
	return &DB{
		users: database.Collection(collectionUsers),
		ins:   ins,
	}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return goerror.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
