package tool

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository/memory"
	"github.com/medassist/medassist-api/internal/service/appointment"
	"github.com/medassist/medassist-api/internal/service/doctor"
	"github.com/medassist/medassist-api/internal/service/hospital"
	"github.com/medassist/medassist-api/internal/service/navigation"
	"github.com/medassist/medassist-api/pkg/logger"
)

type fakeClassifier struct {
	result model.IntentResult
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) model.IntentResult {
	return f.result
}

type fakeSearcher struct {
	calls   int
	lastReq model.SearchRequest
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, req model.SearchRequest) (*model.SearchResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &model.SearchResponse{Results: []model.SearchResult{{Title: "result", URL: "https://example.com", Text: "text"}}}, nil
}

func newService(classifier Classifier, searcher Searcher) *Service {
	hospitalRepo := memory.NewHospitalRepository(memory.SeedHospitals())
	doctorRepo := memory.NewDoctorRepository(memory.SeedDoctors())
	specialtyRepo := memory.NewSpecialtyRepository(memory.SeedSpecialties())

	return NewService(
		classifier,
		hospital.NewService(hospitalRepo, specialtyRepo),
		doctor.NewService(doctorRepo, hospitalRepo, specialtyRepo),
		appointment.NewService(doctorRepo, hospitalRepo),
		navigation.NewService(hospitalRepo),
		searcher,
		logger.NewLogger(&logger.Config{Output: io.Discard}),
		nil,
	)
}

func intentFor(toolType model.ToolType, entities map[string]string) model.IntentResult {
	return model.IntentResult{
		Intent:     model.IntentHospitalSearch,
		Confidence: 0.9,
		Entities:   entities,
		ToolType:   toolType,
	}
}

func TestRunHospitalQuery(t *testing.T) {
	searcher := &fakeSearcher{}
	s := newService(&fakeClassifier{result: intentFor(model.ToolHospitalQuery, map[string]string{"hospital_name": "协和"})}, searcher)

	outcome, err := s.Run(context.Background(), "协和医院怎么样")
	assert.NoError(t, err)
	assert.Equal(t, model.ToolHospitalQuery, outcome.ToolType)
	assert.IsType(t, model.HospitalList{}, outcome.Result)
	assert.Zero(t, searcher.calls)
}

func TestRunDoctorQueryMapsHospitalName(t *testing.T) {
	s := newService(&fakeClassifier{result: intentFor(model.ToolDoctorQuery, map[string]string{"hospital_name": "协和"})}, &fakeSearcher{})

	outcome, err := s.Run(context.Background(), "北京协和医院有哪些医生")
	assert.NoError(t, err)
	doctors := outcome.Result.(model.DoctorList).Doctors
	assert.NotEmpty(t, doctors)
	hospitalID := doctors[0].HospitalID
	for _, d := range doctors {
		assert.Equal(t, hospitalID, d.HospitalID)
	}
}

func TestRunDoctorQueryDiscardsPlaceholderSpecialty(t *testing.T) {
	s := newService(&fakeClassifier{result: intentFor(model.ToolDoctorQuery, map[string]string{
		"doctor_name": "王强",
		"specialty":   "专业",
	})}, &fakeSearcher{})

	outcome, err := s.Run(context.Background(), "王强医生")
	assert.NoError(t, err)
	doctors := outcome.Result.(model.DoctorList).Doctors
	assert.NotEmpty(t, doctors)
	assert.Equal(t, "王强", doctors[0].Name)
}

func TestRunAppointmentWithDefaults(t *testing.T) {
	s := newService(&fakeClassifier{result: intentFor(model.ToolAppointment, map[string]string{"doctor_name": "王强"})}, &fakeSearcher{})

	outcome, err := s.Run(context.Background(), "帮我预约王强医生")
	assert.NoError(t, err)
	result := outcome.Result.(*model.BookingResult)
	assert.True(t, result.Success)
	assert.Equal(t, "默认患者", result.Appointment.PatientName)
	assert.Equal(t, "13800138000", result.Appointment.PatientPhone)
	assert.Equal(t, "周一", result.Appointment.TimeSlot.Day)
	assert.Equal(t, "常规就诊", result.Appointment.Reason)
	assert.Equal(t, "王强", result.Doctor.Name)
}

func TestRunAppointmentUnknownDoctorFallsBackToSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	s := newService(&fakeClassifier{result: intentFor(model.ToolAppointment, map[string]string{"doctor_name": "不存在的医生"})}, searcher)

	outcome, err := s.Run(context.Background(), "帮我预约不存在的医生")
	assert.NoError(t, err)
	assert.Equal(t, model.ToolSearch, outcome.ToolType)
	assert.Equal(t, model.DefaultIntentResult(), outcome.IntentResult)
	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, "帮我预约不存在的医生", searcher.lastReq.Query)
}

func TestRunNavigationNotFoundIsStructuredResult(t *testing.T) {
	searcher := &fakeSearcher{}
	s := newService(&fakeClassifier{result: intentFor(model.ToolNavigation, map[string]string{"hospital_name": "不存在的医院"})}, searcher)

	outcome, err := s.Run(context.Background(), "怎么去不存在的医院")
	assert.NoError(t, err)
	assert.Equal(t, model.ToolNavigation, outcome.ToolType)

	payload := outcome.Result.(NotFoundPayload)
	assert.True(t, payload.Error)
	assert.Contains(t, payload.Message, "不存在的医院")
	assert.Len(t, payload.SuggestedHospitals, 3)
	assert.Zero(t, searcher.calls, "navigation miss must not fall back to search")
}

func TestRunNavigationFound(t *testing.T) {
	s := newService(&fakeClassifier{result: intentFor(model.ToolNavigation, map[string]string{"hospital_name": "协和"})}, &fakeSearcher{})

	outcome, err := s.Run(context.Background(), "怎么去协和医院")
	assert.NoError(t, err)
	result := outcome.Result.(*navigation.Result)
	assert.Contains(t, result.Hospital.Name, "协和")
	assert.Len(t, result.Navigation.Steps, 7)
}

func TestRunDefaultsToSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	s := newService(&fakeClassifier{result: model.DefaultIntentResult()}, searcher)

	outcome, err := s.Run(context.Background(), "高血压吃什么药")
	assert.NoError(t, err)
	assert.Equal(t, model.ToolSearch, outcome.ToolType)
	assert.Equal(t, 1, searcher.calls)
}

func TestRunBothToolAndFallbackFail(t *testing.T) {
	searcher := &fakeSearcher{err: fmt.Errorf("search down")}
	s := newService(&fakeClassifier{result: intentFor(model.ToolAppointment, map[string]string{"doctor_name": "不存在的医生"})}, searcher)

	_, err := s.Run(context.Background(), "帮我预约不存在的医生")
	assert.Error(t, err)
}
