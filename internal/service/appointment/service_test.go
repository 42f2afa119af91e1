package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository/memory"
	"github.com/medassist/medassist-api/pkg/errors"
)

func newService() *Service {
	return NewService(
		memory.NewDoctorRepository(memory.SeedDoctors()),
		memory.NewHospitalRepository(memory.SeedHospitals()),
	)
}

func validRequest() *model.BookAppointmentRequest {
	return &model.BookAppointmentRequest{
		DoctorID:     "d001",
		PatientName:  "张三",
		PatientPhone: "13900000000",
		TimeSlot:     &model.TimeSlot{Day: "周一", StartTime: "09:00", EndTime: "10:00"},
		Reason:       "复诊",
	}
}

func TestBook(t *testing.T) {
	s := newService()
	s.now = func() time.Time { return time.UnixMilli(1700000000000).UTC() }

	result, err := s.Book(validRequest())
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "预约成功", result.Message)
	assert.Equal(t, "a1700000000000", result.Appointment.ID)
	assert.Equal(t, model.AppointmentStatusConfirmed, result.Appointment.Status)
	assert.Equal(t, "d001", result.Doctor.ID)
	assert.Equal(t, result.Doctor.HospitalID, result.Hospital.ID)
	assert.True(t, strings.HasSuffix(result.Appointment.CreatedAt, "Z"))
}

func TestBookMissingParameters(t *testing.T) {
	s := newService()

	for _, mutate := range []func(*model.BookAppointmentRequest){
		func(r *model.BookAppointmentRequest) { r.DoctorID = "" },
		func(r *model.BookAppointmentRequest) { r.PatientName = "" },
		func(r *model.BookAppointmentRequest) { r.PatientPhone = "" },
		func(r *model.BookAppointmentRequest) { r.TimeSlot = nil },
	} {
		req := validRequest()
		mutate(req)
		_, err := s.Book(req)
		assert.EqualError(t, err, "Missing required parameters")
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	s := newService()

	req := validRequest()
	req.DoctorID = "d999"
	_, err := s.Book(req)
	assert.True(t, errors.IsNotFound(err))
}

func TestBookNotPersisted(t *testing.T) {
	s := newService()

	// The same slot can be booked twice; nothing is stored.
	first, err := s.Book(validRequest())
	assert.NoError(t, err)
	second, err := s.Book(validRequest())
	assert.NoError(t, err)
	assert.True(t, first.Success)
	assert.True(t, second.Success)
}
