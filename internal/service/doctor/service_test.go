package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository/memory"
)

func newService() *Service {
	return NewService(
		memory.NewDoctorRepository(memory.SeedDoctors()),
		memory.NewHospitalRepository(memory.SeedHospitals()),
		memory.NewSpecialtyRepository(memory.SeedSpecialties()),
	)
}

func TestQueryDoctorNameWinsOverQuery(t *testing.T) {
	s := newService()

	byName := s.Query(model.DoctorQuery{DoctorName: "王强", Query: "张"})
	assert.NotEmpty(t, byName)
	for _, d := range byName {
		assert.Equal(t, "王强", d.Name)
	}
}

func TestQueryByHospitalName(t *testing.T) {
	s := newService()

	doctors := s.Query(model.DoctorQuery{HospitalName: "协和"})
	assert.NotEmpty(t, doctors)
	hospitalID := doctors[0].HospitalID
	for _, d := range doctors {
		assert.Equal(t, hospitalID, d.HospitalID)
	}
}

func TestQueryUnknownHospitalNameYieldsEmpty(t *testing.T) {
	s := newService()

	assert.Empty(t, s.Query(model.DoctorQuery{HospitalName: "不存在的医院"}))
}

func TestQueryBySpecialtyName(t *testing.T) {
	s := newService()

	byName := s.Query(model.DoctorQuery{SpecialtyName: "心脏科"})
	byID := s.Query(model.DoctorQuery{Specialty: "cardiology"})
	assert.Equal(t, byID, byName)
	assert.NotEmpty(t, byName)
}

func TestQueryAvailableReplacesPriorFilters(t *testing.T) {
	s := newService()

	// Available restarts from the full dataset, as every criterion does.
	assert.Equal(t, s.Available(), s.Query(model.DoctorQuery{Specialty: "cardiology", Available: true}))
}

func TestQueryLimit(t *testing.T) {
	s := newService()

	assert.Len(t, s.Query(model.DoctorQuery{Limit: 3}), 3)
}
