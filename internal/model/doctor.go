package model

// TimeSlot is a recurring weekly consultation window.
type TimeSlot struct {
	Day       string `json:"day"` // weekday label, e.g. "周一"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// Doctor is immutable reference data. Each doctor belongs to exactly one
// hospital.
type Doctor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	HospitalID   string     `json:"hospitalId"`
	Specialty    string     `json:"specialty"`
	Title        string     `json:"title"` // e.g. "主任医师"
	Availability []TimeSlot `json:"availability"`
	Rating       float64    `json:"rating"`
	Education    []string   `json:"education"`
	Experience   int        `json:"experience"` // years
	Biography    string     `json:"biography"`
	ImageURL     string     `json:"imageUrl,omitempty"`
}

// DoctorQuery are the filters accepted by the doctor query endpoint. Both
// DoctorName (the classifier's entity key) and Query select by name;
// DoctorName wins when both are set.
type DoctorQuery struct {
	Query         string  `json:"query"`
	DoctorName    string  `json:"doctor_name"`
	HospitalID    string  `json:"hospitalId"`
	HospitalName  string  `json:"hospitalName"`
	Specialty     string  `json:"specialty"`
	SpecialtyName string  `json:"specialtyName"`
	MinRating     float64 `json:"minRating"`
	Available     bool    `json:"available"`
	Limit         int     `json:"limit"`
}
