package model

// IntentType classifies what the user is trying to do.
type IntentType string

const (
	IntentHospitalSearch IntentType = "hospital_search"
	IntentDoctorSearch   IntentType = "doctor_search"
	IntentAppointment    IntentType = "appointment"
	IntentNavigation     IntentType = "navigation"
	IntentGeneralMedical IntentType = "general_medical"
	IntentUnknown        IntentType = "unknown"
)

// ToolType selects the tool handler that serves a classified query.
type ToolType string

const (
	ToolSearch        ToolType = "search"
	ToolHospitalQuery ToolType = "hospital_query"
	ToolDoctorQuery   ToolType = "doctor_query"
	ToolAppointment   ToolType = "appointment"
	ToolNavigation    ToolType = "navigation"
)

// ParseToolType validates a toolType string from the classifier; anything
// unrecognized degrades to search.
func ParseToolType(s string) ToolType {
	switch ToolType(s) {
	case ToolHospitalQuery, ToolDoctorQuery, ToolAppointment, ToolNavigation:
		return ToolType(s)
	default:
		return ToolSearch
	}
}

// Entity keys the classifier is prompted to produce.
const (
	EntitySpecialty    = "specialty"
	EntityHospitalName = "hospital_name"
	EntityDoctorName   = "doctor_name"
	EntityLocation     = "location"
	EntitySymptom      = "symptom"
)

// IntentResult is the normalized classifier output. Ephemeral, produced per
// request.
type IntentResult struct {
	Intent     IntentType        `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   map[string]string `json:"entities"`
	ToolType   ToolType          `json:"toolType"`
}

// DefaultIntentResult is what every failure path of the classifier resolves
// to: treat the query as a general medical question and search the web.
func DefaultIntentResult() IntentResult {
	return IntentResult{
		Intent:     IntentGeneralMedical,
		Confidence: 0.5,
		Entities:   map[string]string{},
		ToolType:   ToolSearch,
	}
}
