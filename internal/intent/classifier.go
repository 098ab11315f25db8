package intent

import (
	"regexp"
	"strings"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
)

var (
	// Greeting tokens match as plain substrings, not whole words.
	greetingTokens = []string{"hi", "hello", "hey"}

	bookPattern  = regexp.MustCompile(`\b(book|schedule)\b.*\b(appointment|appt)\b`)
	fetchPattern = regexp.MustCompile(`\b(show|list|my)\b.*\b(appointments|appts)\b`)
)

// RuleClassifier classifies messages with ordered pattern rules.
// First match wins; unknown is the catch-all, so classification is
// total and never fails.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (c *RuleClassifier) Classify(message string) domain.Intent {
	text := strings.ToLower(strings.TrimSpace(message))

	for _, token := range greetingTokens {
		if strings.Contains(text, token) {
			return domain.IntentGreeting
		}
	}
	if bookPattern.MatchString(text) {
		return domain.IntentBookAppointment
	}
	if fetchPattern.MatchString(text) || strings.Contains(text, "show my appointments") {
		return domain.IntentFetchAppointments
	}
	return domain.IntentUnknown
}
