package intent

import "github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"

// Classifier maps a raw chat message to exactly one intent.
type Classifier interface {
	Classify(message string) domain.Intent
}

// EntityExtractor pulls booking entities out of a message.
// Implementations range from regex matching to a full NLU model; the
// chat flow only depends on this interface.
type EntityExtractor interface {
	Extract(message string) domain.ExtractedEntities
}
