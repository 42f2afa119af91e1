package model

// HospitalList is the wire shape for hospital query responses.
type HospitalList struct {
	Hospitals []Hospital `json:"hospitals"`
}

// DoctorList is the wire shape for doctor query responses.
type DoctorList struct {
	Doctors []Doctor `json:"doctors"`
}
