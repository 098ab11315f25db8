package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/client"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/intent"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/pkg/log"
)

const (
	greetingReply       = "Hello! How can I help you today?"
	unknownReply        = "I'm not sure how to help with that yet."
	bookingFallback     = "Your appointment request has been submitted."
	noAppointmentsReply = "You have no upcoming appointments."
	appointmentsHeader  = "Here are your upcoming appointments:"

	maxListedAppointments = 5
)

type chatService struct {
	classifier   intent.Classifier
	extractor    intent.EntityExtractor
	appointments client.AppointmentClient
}

// NewChatService creates the chat orchestrator.
func NewChatService(classifier intent.Classifier, extractor intent.EntityExtractor, appointments client.AppointmentClient) ChatService {
	return &chatService{
		classifier:   classifier,
		extractor:    extractor,
		appointments: appointments,
	}
}

func (s *chatService) Reply(ctx context.Context, message string) string {
	detected := s.classifier.Classify(message)
	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldIntent, string(detected)).Msg("intent classified")

	switch detected {
	case domain.IntentGreeting:
		return greetingReply
	case domain.IntentBookAppointment:
		return s.bookAppointment(ctx, message)
	case domain.IntentFetchAppointments:
		return s.fetchAppointments(ctx)
	default:
		return unknownReply
	}
}

// bookAppointment absorbs every downstream failure into a reply string:
// the chat surface stays a 200 even when the appointment service is
// down.
func (s *chatService) bookAppointment(ctx context.Context, message string) string {
	l := log.Ctx(ctx)
	entities := s.extractor.Extract(message)

	res, err := s.appointments.Book(ctx, entities)
	if err != nil {
		l.Warn().Err(err).Msg("booking call failed")
		return fmt.Sprintf("Sorry, something went wrong while booking the appointment: %v", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		l.Warn().Int(log.FieldStatus, res.StatusCode).Msg("booking rejected by appointment service")
		return fmt.Sprintf("Sorry, I couldn't book the appointment right now (status %d).", res.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(res.Body, &body); err != nil {
		l.Warn().Err(err).Msg("unexpected booking response body")
		return fmt.Sprintf("Sorry, something went wrong while booking the appointment: %v", err)
	}
	if body.Message != "" {
		return body.Message
	}
	return bookingFallback
}

func (s *chatService) fetchAppointments(ctx context.Context) string {
	l := log.Ctx(ctx)

	res, err := s.appointments.List(ctx)
	if err != nil {
		l.Warn().Err(err).Msg("appointment list call failed")
		return fmt.Sprintf("Sorry, something went wrong while fetching appointments: %v", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		l.Warn().Int(log.FieldStatus, res.StatusCode).Msg("appointment list rejected")
		return fmt.Sprintf("Couldn't fetch appointments (status %d).", res.StatusCode)
	}

	var appointments []domain.Appointment
	if err := json.Unmarshal(res.Body, &appointments); err != nil {
		l.Warn().Err(err).Msg("unexpected appointment list body")
		return fmt.Sprintf("Sorry, something went wrong while fetching appointments: %v", err)
	}
	if len(appointments) == 0 {
		return noAppointmentsReply
	}

	lines := make([]string, 0, maxListedAppointments)
	for _, appt := range appointments {
		if len(lines) == maxListedAppointments {
			break
		}
		lines = append(lines, fmt.Sprintf("- %v with Dr. %v", appt.Date(), appt.Doctor()))
	}
	return appointmentsHeader + "\n" + strings.Join(lines, "\n")
}
