package doctor

import (
	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository"
)

// Service answers doctor queries over the reference dataset.
type Service struct {
	repo        repository.DoctorRepository
	hospitals   repository.HospitalRepository
	specialties repository.SpecialtyRepository
}

func NewService(repo repository.DoctorRepository, hospitals repository.HospitalRepository, specialties repository.SpecialtyRepository) *Service {
	return &Service{repo: repo, hospitals: hospitals, specialties: specialties}
}

// Get returns a doctor by id.
func (s *Service) Get(id string) (*model.Doctor, bool) {
	return s.repo.GetByID(id)
}

// Recommended returns the top n doctors by rating.
func (s *Service) Recommended(n int) []model.Doctor {
	return s.repo.Recommended(n)
}

// Available returns doctors with at least one open slot.
func (s *Service) Available() []model.Doctor {
	return s.repo.Available()
}

// Query applies the request filters. Each criterion runs over the full
// dataset, so the last one provided wins. A hospital name that matches no
// hospital yields an empty result, not an error.
func (s *Service) Query(q model.DoctorQuery) []model.Doctor {
	doctors := s.repo.List()

	if q.DoctorName != "" {
		doctors = s.repo.SearchByName(q.DoctorName)
	} else if q.Query != "" {
		doctors = s.repo.SearchByName(q.Query)
	}

	if q.HospitalID != "" {
		doctors = s.repo.ByHospital(q.HospitalID)
	}

	if q.HospitalName != "" {
		if hospitals := s.hospitals.SearchByName(q.HospitalName); len(hospitals) > 0 {
			doctors = s.repo.ByHospital(hospitals[0].ID)
		} else {
			doctors = nil
		}
	}

	if q.Specialty != "" {
		doctors = s.repo.BySpecialty(q.Specialty)
	}

	if q.SpecialtyName != "" {
		if sp, ok := s.specialties.GetByName(q.SpecialtyName); ok {
			doctors = s.repo.BySpecialty(sp.ID)
		}
	}

	if q.MinRating > 0 {
		doctors = s.repo.FilterByMinRating(q.MinRating)
	}

	if q.Available {
		doctors = s.repo.Available()
	}

	if q.Limit > 0 && len(doctors) > q.Limit {
		doctors = doctors[:q.Limit]
	}

	return doctors
}
