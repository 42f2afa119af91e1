package hospital

import (
	"strings"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository"
)

// Service answers hospital queries over the reference dataset.
type Service struct {
	repo        repository.HospitalRepository
	specialties repository.SpecialtyRepository
}

func NewService(repo repository.HospitalRepository, specialties repository.SpecialtyRepository) *Service {
	return &Service{repo: repo, specialties: specialties}
}

// Get returns a hospital by id.
func (s *Service) Get(id string) (*model.Hospital, bool) {
	return s.repo.GetByID(id)
}

// Recommended returns the top n hospitals by rating.
func (s *Service) Recommended(n int) []model.Hospital {
	return s.repo.Recommended(n)
}

// Query applies the request filters. Except for the location filter, each
// criterion runs over the full dataset, so the last one provided wins.
func (s *Service) Query(q model.HospitalQuery) []model.Hospital {
	hospitals := s.repo.List()

	if q.Query != "" {
		hospitals = s.repo.SearchByName(q.Query)
	}

	if q.Location != "" {
		needle := strings.ToLower(q.Location)
		var filtered []model.Hospital
		for _, h := range hospitals {
			if strings.Contains(strings.ToLower(h.Address), needle) ||
				strings.Contains(strings.ToLower(h.Name), needle) {
				filtered = append(filtered, h)
			}
		}
		hospitals = filtered
		// An unknown location still gets a useful answer.
		if len(hospitals) == 0 {
			hospitals = s.repo.Recommended(5)
		}
	}

	if q.Specialty != "" {
		hospitals = s.repo.FilterBySpecialty(q.Specialty)
	}

	if q.SpecialtyName != "" {
		if sp, ok := s.specialties.GetByName(q.SpecialtyName); ok {
			hospitals = s.repo.FilterBySpecialty(sp.ID)
		}
	}

	if q.MinRating > 0 {
		hospitals = s.repo.FilterByMinRating(q.MinRating)
	}

	if q.Limit > 0 && len(hospitals) > q.Limit {
		hospitals = hospitals[:q.Limit]
	}

	return hospitals
}
