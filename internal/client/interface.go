package client

import (
	"context"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
)

// Result carries the raw outcome of a downstream call. Interpreting the
// body is the caller's concern.
type Result struct {
	StatusCode int
	Body       []byte
}

// AppointmentClient talks to the appointment domain service.
type AppointmentClient interface {
	Book(ctx context.Context, entities domain.ExtractedEntities) (*Result, error)
	List(ctx context.Context) (*Result, error)
}
