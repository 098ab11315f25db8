package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
)

// BaseURLFunc resolves the appointment service base URL at call time,
// so precedence between override, gateway, and fallback is honored per
// request.
type BaseURLFunc func() string

// HTTPAppointmentClient is the REST client for the appointment service.
type HTTPAppointmentClient struct {
	http    *resty.Client
	baseURL BaseURLFunc
}

func NewHTTPAppointmentClient(baseURL BaseURLFunc, timeout time.Duration) *HTTPAppointmentClient {
	return &HTTPAppointmentClient{
		http:    resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}

// Book submits a booking request. Absent entities are serialized as
// JSON null.
func (c *HTTPAppointmentClient) Book(ctx context.Context, entities domain.ExtractedEntities) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entities).
		Post(c.baseURL() + "/book")
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	return &Result{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// List fetches the upcoming appointments.
func (c *HTTPAppointmentClient) List(ctx context.Context) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.baseURL())
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return &Result{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
