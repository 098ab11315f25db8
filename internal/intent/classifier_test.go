package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
)

func TestRuleClassifier_Classify(t *testing.T) {
	c := NewRuleClassifier()

	tests := []struct {
		name     string
		message  string
		expected domain.Intent
	}{
		{"plain greeting", "hello", domain.IntentGreeting},
		{"greeting uppercase", "HEY there", domain.IntentGreeting},
		{"greeting mid-sentence", "well hi, I need something", domain.IntentGreeting},
		{"greeting as substring", "this is my shirt", domain.IntentGreeting},
		{"book appointment", "Book an appointment with Dr. Smith tomorrow", domain.IntentBookAppointment},
		{"schedule appt", "please schedule an appt for me", domain.IntentBookAppointment},
		{"book without appointment word", "book a table for two", domain.IntentUnknown},
		{"fetch appointments", "show my appointments", domain.IntentFetchAppointments},
		{"list appts", "list upcoming appts", domain.IntentFetchAppointments},
		{"my appointments", "my appointments please", domain.IntentFetchAppointments},
		{"unknown", "what's the weather", domain.IntentUnknown},
		{"empty", "", domain.IntentUnknown},
		{"whitespace only", "   \t  ", domain.IntentUnknown},
		{"unicode", "予約をお願いします", domain.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.message))
		})
	}
}

func TestRuleClassifier_CaseInsensitive(t *testing.T) {
	c := NewRuleClassifier()

	messages := []string{
		"Book an Appointment",
		"SHOW MY APPOINTMENTS",
		"Hello!",
		"What's The Weather",
	}

	for _, msg := range messages {
		assert.Equal(t, c.Classify(strings.ToLower(msg)), c.Classify(msg), "message %q", msg)
	}
}

func TestRuleClassifier_Deterministic(t *testing.T) {
	c := NewRuleClassifier()

	msg := "  Schedule an appointment with Dr. Lee  "
	first := c.Classify(msg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(msg))
	}
}
