package intent

import (
	"regexp"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
)

var (
	doctorPattern = regexp.MustCompile(`(?i)with\s+dr\.?\s+([a-zA-Z]+)`)
	datePattern   = regexp.MustCompile(`(?i)\b(today|tomorrow|\d{4}-\d{2}-\d{2})\b`)
)

// RegexExtractor is the naive baseline extractor. Entities it cannot
// find stay nil and are forwarded downstream as-is.
type RegexExtractor struct{}

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

func (e *RegexExtractor) Extract(message string) domain.ExtractedEntities {
	var entities domain.ExtractedEntities

	if m := doctorPattern.FindStringSubmatch(message); m != nil {
		entities.DoctorName = &m[1]
	}
	if m := datePattern.FindStringSubmatch(message); m != nil {
		entities.Date = &m[1]
	}

	return entities
}
