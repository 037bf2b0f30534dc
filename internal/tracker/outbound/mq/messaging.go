package mq

import (
	"context"
	"encoding/json"

	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/shared/event"
	"github.com/healthmate/healthmate/internal/tracker/usecase"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

// PublishUserWeightUpdated reuses the metrics-updated destination so the health
// module regenerates the plan with the newly logged weight.
func (m *Messaging) PublishUserWeightUpdated(ctx context.Context, msg usecase.UserWeightUpdatedEvent) error {
	ctx, span := m.ins.Tracer("tracker.outbound.mq").Start(ctx, "PublishUserWeightUpdated")
	defer span.End()

	body, err := json.Marshal(event.UserMetricsUpdatedMessage{
		UserID: msg.UserID,
		Weight: msg.Weight,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.UserMetricsUpdatedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
