package model

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is constructed per booking request. It is returned to the
// caller but not retained anywhere, so a slot can be booked repeatedly.
type Appointment struct {
	ID           string            `json:"id"`
	PatientName  string            `json:"patientName"`
	PatientPhone string            `json:"patientPhone"`
	DoctorID     string            `json:"doctorId"`
	HospitalID   string            `json:"hospitalId"`
	TimeSlot     TimeSlot          `json:"timeSlot"`
	Reason       string            `json:"reason"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    string            `json:"createdAt"` // RFC3339
}

// BookAppointmentRequest is the booking endpoint payload.
type BookAppointmentRequest struct {
	DoctorID     string    `json:"doctorId"`
	PatientName  string    `json:"patientName"`
	PatientPhone string    `json:"patientPhone"`
	TimeSlot     *TimeSlot `json:"timeSlot"`
	Reason       string    `json:"reason"`
}

// BookingResult is the booking endpoint response.
type BookingResult struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Appointment *Appointment `json:"appointment"`
	Doctor      *Doctor      `json:"doctor"`
	Hospital    *Hospital    `json:"hospital"`
}
