package domain

// ExtractedEntities holds the booking details pulled out of a message.
// Nil fields stay absent and are forwarded to the appointment service
// as JSON null rather than defaulted.
type ExtractedEntities struct {
	DoctorName *string `json:"doctorName"`
	Date       *string `json:"date"`
}

// Appointment is one entry of the appointment service's list response.
// The upstream schema differs between deployments, so fields are looked
// up by alias instead of being pinned to a struct.
type Appointment map[string]any

// Doctor returns the first present doctor identifier.
func (a Appointment) Doctor() any {
	return a.first("doctorName", "doctor", "doctor_id")
}

// Date returns the first present appointment date.
func (a Appointment) Date() any {
	return a.first("date", "appointmentDate")
}

func (a Appointment) first(keys ...string) any {
	for _, k := range keys {
		if v, ok := a[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
