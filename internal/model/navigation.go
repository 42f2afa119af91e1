package model

// NavigationStep is one turn instruction of a synthesized route.
type NavigationStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"` // e.g. "5.2公里"
	Duration    string `json:"duration"` // e.g. "15分钟"
}

// NavigationInfo is a synthesized point-to-point route.
type NavigationInfo struct {
	Origin      GeoLocation      `json:"origin"`
	Destination GeoLocation      `json:"destination"`
	Distance    string           `json:"distance"`
	Duration    string           `json:"duration"`
	Steps       []NavigationStep `json:"steps"`
}

// NavigationRequest is the navigation endpoint payload. The classifier
// emits hospital_name while UI clients send hospitalName; both are
// accepted.
type NavigationRequest struct {
	HospitalID        string       `json:"hospitalId"`
	HospitalName      string       `json:"hospitalName"`
	HospitalNameEntity string      `json:"hospital_name"`
	Origin            *GeoLocation `json:"origin"`
}

// EffectiveHospitalName returns whichever hospital-name field was provided.
func (r NavigationRequest) EffectiveHospitalName() string {
	if r.HospitalName != "" {
		return r.HospitalName
	}
	return r.HospitalNameEntity
}
