package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/healthmate/healthmate/internal/health/usecase"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) UserMetricsUpdatedRegeneration(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("health.inbound.mq").Start(ctx, "UserMetricsUpdatedRegeneration")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: user metrics updated", "msg_body", string(body))

	var payload event.UserMetricsUpdatedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user metrics updated", "msg_body", string(body), "error", err)
		return nil
	}

	if _, err := h.uc.PlanRegenerate(ctx, usecase.PlanRegenerateInput{
		UserID: payload.UserID,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to regenerate plan from user metrics updated", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
