package domain

// Intent is the classified purpose of a chat message, drawn from a
// fixed closed set.
type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentBookAppointment   Intent = "book_appointment"
	IntentFetchAppointments Intent = "fetch_appointments"
	IntentUnknown           Intent = "unknown"
)

// ChatRequest is the inbound /chat payload.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the single reply returned to the caller. It is always
// populated: downstream failures resolve to an apology, never an error.
type ChatResponse struct {
	Response string `json:"response"`
}
