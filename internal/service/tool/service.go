// Package tool routes a classified user query to the service that can
// answer it.
package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/appointment"
	"github.com/medassist/medassist-api/internal/service/doctor"
	"github.com/medassist/medassist-api/internal/service/hospital"
	"github.com/medassist/medassist-api/internal/service/navigation"
	apperrors "github.com/medassist/medassist-api/pkg/errors"
	"github.com/medassist/medassist-api/pkg/logger"
	"github.com/medassist/medassist-api/pkg/metrics"
)

// Classifier is the slice of the intent service the router needs.
type Classifier interface {
	Classify(ctx context.Context, query string) model.IntentResult
}

// Searcher runs web searches, both as a tool and as the fallback when
// another tool fails.
type Searcher interface {
	Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error)
}

// Navigator plans a route to a hospital.
type Navigator interface {
	Navigate(req model.NavigationRequest) (*navigation.Result, error)
}

// NotFoundPayload is the structured body returned when navigation cannot
// resolve the hospital. It is a result, not an error, so chat can present
// the suggestions to the user.
type NotFoundPayload struct {
	Error              bool     `json:"error"`
	Message            string   `json:"message"`
	SuggestedHospitals []string `json:"suggestedHospitals"`
}

// Service selects and executes a tool for a raw user query.
type Service struct {
	classifier   Classifier
	hospitals    *hospital.Service
	doctors      *doctor.Service
	appointments *appointment.Service
	navigator    Navigator
	searcher     Searcher
	timeout      time.Duration
	logger       *logger.Logger
	metrics      *metrics.Metrics
}

func NewService(
	classifier Classifier,
	hospitals *hospital.Service,
	doctors *doctor.Service,
	appointments *appointment.Service,
	navigator Navigator,
	searcher Searcher,
	log *logger.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		classifier:   classifier,
		hospitals:    hospitals,
		doctors:      doctors,
		appointments: appointments,
		navigator:    navigator,
		searcher:     searcher,
		timeout:      60 * time.Second,
		logger:       log,
		metrics:      m,
	}
}

// Run classifies query, dispatches to the matching tool and returns its
// result. Any tool failure falls back to a single web search; only a
// failure of the fallback itself surfaces as an error.
func (s *Service) Run(ctx context.Context, query string) (*model.ToolOutcome, error) {
	intentResult := s.classifier.Classify(ctx, query)
	s.logger.WithFields(map[string]interface{}{
		"tool_type": string(intentResult.ToolType),
		"intent":    string(intentResult.Intent),
	}).Info("selected tool")
	if s.metrics != nil {
		s.metrics.ToolSelections.WithLabelValues(string(intentResult.ToolType)).Inc()
	}

	toolCtx, cancel := context.WithTimeout(ctx, s.timeout)
	result, err := s.dispatch(toolCtx, query, intentResult)
	cancel()
	if err == nil {
		return &model.ToolOutcome{
			ToolType:     intentResult.ToolType,
			IntentResult: intentResult,
			Result:       result,
		}, nil
	}

	var notFound *navigation.HospitalNotFoundError
	if intentResult.ToolType == model.ToolNavigation && errors.As(err, &notFound) {
		return &model.ToolOutcome{
			ToolType:     intentResult.ToolType,
			IntentResult: intentResult,
			Result: NotFoundPayload{
				Error:              true,
				Message:            notFound.Message(),
				SuggestedHospitals: notFound.Suggested,
			},
		}, nil
	}

	s.logger.WithFields(map[string]interface{}{
		"tool_type": string(intentResult.ToolType),
		"error":     err.Error(),
	}).Warn("tool failed, falling back to web search")
	if s.metrics != nil {
		s.metrics.ToolFailures.WithLabelValues(string(intentResult.ToolType)).Inc()
		s.metrics.SearchFallbacks.Inc()
	}

	searchResult, searchErr := s.searcher.Search(ctx, model.SearchRequest{Query: query})
	if searchErr != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to execute tool and fallback search: %w", err))
	}
	return &model.ToolOutcome{
		ToolType:     model.ToolSearch,
		IntentResult: model.DefaultIntentResult(),
		Result:       searchResult,
	}, nil
}

func (s *Service) dispatch(ctx context.Context, query string, intentResult model.IntentResult) (interface{}, error) {
	entities := intentResult.Entities
	switch intentResult.ToolType {
	case model.ToolHospitalQuery:
		return model.HospitalList{Hospitals: s.hospitals.Query(model.HospitalQuery{
			Query:     query,
			Location:  entities[model.EntityLocation],
			Specialty: entities[model.EntitySpecialty],
		})}, nil

	case model.ToolDoctorQuery:
		specialty := entities[model.EntitySpecialty]
		// The classifier sometimes emits the literal word "专业" instead
		// of a real specialty name. Treat it as no filter.
		if specialty == "专业" {
			specialty = ""
		}
		return model.DoctorList{Doctors: s.doctors.Query(model.DoctorQuery{
			Query:        query,
			DoctorName:   entities[model.EntityDoctorName],
			HospitalName: entities[model.EntityHospitalName],
			Specialty:    specialty,
		})}, nil

	case model.ToolAppointment:
		return s.bookAppointment(entities)

	case model.ToolNavigation:
		return s.navigator.Navigate(model.NavigationRequest{
			HospitalNameEntity: entities[model.EntityHospitalName],
		})

	default:
		return s.searcher.Search(ctx, model.SearchRequest{Query: query})
	}
}

// bookAppointment resolves the doctor by name first, then books with
// placeholder patient details for anything the query did not specify.
func (s *Service) bookAppointment(entities map[string]string) (*model.BookingResult, error) {
	name := entities[model.EntityDoctorName]
	if name == "" {
		return nil, apperrors.BadRequest("Missing required parameters", nil)
	}
	matches := s.doctors.Query(model.DoctorQuery{DoctorName: name})
	if len(matches) == 0 {
		return nil, apperrors.NotFound("Doctor", fmt.Errorf("no doctor found with name: %s", name))
	}
	return s.appointments.Book(&model.BookAppointmentRequest{
		DoctorID:     matches[0].ID,
		PatientName:  "默认患者",
		PatientPhone: "13800138000",
		TimeSlot: &model.TimeSlot{
			Day:       "周一",
			StartTime: "09:00",
			EndTime:   "10:00",
		},
		Reason: "常规就诊",
	})
}
