package model

// GeoLocation is a WGS84 coordinate pair.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ContactInfo holds the public contact channels of a hospital.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Hospital is immutable reference data, seeded at process start.
type Hospital struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Specialties []string    `json:"specialties"`
	Rating      float64     `json:"rating"`
	Description string      `json:"description"`
	Location    GeoLocation `json:"location"`
	ContactInfo ContactInfo `json:"contactInfo"`
	ImageURL    string      `json:"imageUrl,omitempty"`
}

// HospitalQuery are the filters accepted by the hospital query endpoint.
// Field names follow the tool wire contract.
type HospitalQuery struct {
	Query         string  `json:"query"`
	Location      string  `json:"location"`
	Specialty     string  `json:"specialty"`
	SpecialtyName string  `json:"specialtyName"`
	MinRating     float64 `json:"minRating"`
	Limit         int     `json:"limit"`
}
