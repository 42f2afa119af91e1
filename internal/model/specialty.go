package model

// Specialty is a static enumeration entry referenced by hospitals and
// doctors.
type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
