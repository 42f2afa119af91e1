package memory

import "github.com/medassist/medassist-api/internal/model"

// SpecialtyRepository implements repository.SpecialtyRepository.
type SpecialtyRepository struct {
	specialties []model.Specialty
}

// NewSpecialtyRepository creates a repository over the given dataset.
func NewSpecialtyRepository(specialties []model.Specialty) *SpecialtyRepository {
	return &SpecialtyRepository{specialties: specialties}
}

func (r *SpecialtyRepository) GetByID(id string) (*model.Specialty, bool) {
	for i := range r.specialties {
		if r.specialties[i].ID == id {
			s := r.specialties[i]
			return &s, true
		}
	}
	return nil, false
}

func (r *SpecialtyRepository) GetByName(name string) (*model.Specialty, bool) {
	for i := range r.specialties {
		if r.specialties[i].Name == name {
			s := r.specialties[i]
			return &s, true
		}
	}
	return nil, false
}

func (r *SpecialtyRepository) List() []model.Specialty {
	out := make([]model.Specialty, len(r.specialties))
	copy(out, r.specialties)
	return out
}
