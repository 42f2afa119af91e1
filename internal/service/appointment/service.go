package appointment

import (
	"fmt"
	"time"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository"
	"github.com/medassist/medassist-api/pkg/errors"
)

// Service books consultations against the reference data.
//
// Appointments are constructed and returned but not stored anywhere, so
// nothing prevents the same slot from being booked twice. That mirrors the
// system this replaces; persistence would be a new requirement.
type Service struct {
	doctors   repository.DoctorRepository
	hospitals repository.HospitalRepository
	now       func() time.Time
}

func NewService(doctors repository.DoctorRepository, hospitals repository.HospitalRepository) *Service {
	return &Service{doctors: doctors, hospitals: hospitals, now: time.Now}
}

// Book validates the request, resolves the doctor and hospital, and
// returns the constructed appointment.
func (s *Service) Book(req *model.BookAppointmentRequest) (*model.BookingResult, error) {
	if req.DoctorID == "" || req.PatientName == "" || req.PatientPhone == "" || req.TimeSlot == nil {
		return nil, errors.BadRequest("Missing required parameters", nil)
	}

	doctor, ok := s.doctors.GetByID(req.DoctorID)
	if !ok {
		return nil, errors.NotFound("Doctor", nil)
	}

	hospital, ok := s.hospitals.GetByID(doctor.HospitalID)
	if !ok {
		return nil, errors.NotFound("Hospital", nil)
	}

	now := s.now()
	appointment := &model.Appointment{
		ID:           fmt.Sprintf("a%d", now.UnixMilli()),
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		DoctorID:     req.DoctorID,
		HospitalID:   doctor.HospitalID,
		TimeSlot:     *req.TimeSlot,
		Reason:       req.Reason,
		Status:       model.AppointmentStatusConfirmed,
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}

	return &model.BookingResult{
		Success:     true,
		Message:     "预约成功",
		Appointment: appointment,
		Doctor:      doctor,
		Hospital:    hospital,
	}, nil
}
