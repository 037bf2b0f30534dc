package entity

import "time"

type DeliveryStatus string

const (
	DeliveryStatusQueued DeliveryStatus = "queued"
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// EmailLog records one outbound email attempt end to end.
type EmailLog struct {
	ID        string         `bson:"_id,omitempty"`
	Email     string         `bson:"email"`
	Purpose   string         `bson:"purpose"`
	Subject   string         `bson:"subject"`
	Status    DeliveryStatus `bson:"status"`
	Error     string         `bson:"error,omitempty"`
	CreatedAt time.Time      `bson:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}
