package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/healthmate/healthmate/internal/notification/usecase"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type uc interface {
	ConsumeOtpRequested(ctx context.Context, in usecase.ConsumeOtpRequestedInput) error
}

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

func (h *MQHandler) OtpRequestedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OtpRequestedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp requested notification")

	var payload event.OtpRequestedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp requested notification", "error", err)
		return nil
	}

	if err := h.uc.ConsumeOtpRequested(ctx, usecase.ConsumeOtpRequestedInput{
		Email:   payload.Email,
		Code:    payload.Code,
		Purpose: payload.Purpose,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp requested", "email", payload.Email, "error", err)
		return err
	}

	return nil
}
