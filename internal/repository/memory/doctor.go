package memory

import (
	"sort"
	"strings"

	"github.com/medassist/medassist-api/internal/model"
)

// DoctorRepository implements repository.DoctorRepository.
type DoctorRepository struct {
	doctors []model.Doctor
}

// NewDoctorRepository creates a repository over the given dataset.
func NewDoctorRepository(doctors []model.Doctor) *DoctorRepository {
	return &DoctorRepository{doctors: doctors}
}

func (r *DoctorRepository) GetByID(id string) (*model.Doctor, bool) {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			d := r.doctors[i]
			return &d, true
		}
	}
	return nil, false
}

// SearchByName resolves a name in three phases: exact match, substring
// match, then a fuzzy pass for queries that embed the name, possibly with
// the title appended ("亚承主任医师").
func (r *DoctorRepository) SearchByName(name string) []model.Doctor {
	needle := strings.ToLower(name)

	var exact []model.Doctor
	for _, d := range r.doctors {
		if strings.ToLower(d.Name) == needle {
			exact = append(exact, d)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var partial []model.Doctor
	for _, d := range r.doctors {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			partial = append(partial, d)
		}
	}
	if len(partial) > 0 {
		return partial
	}

	var fuzzy []model.Doctor
	for _, d := range r.doctors {
		lowerName := strings.ToLower(d.Name)
		nameWithTitle := strings.ToLower(d.Name + d.Title)
		if strings.Contains(needle, lowerName) || strings.Contains(needle, nameWithTitle) {
			fuzzy = append(fuzzy, d)
		}
	}
	return fuzzy
}

func (r *DoctorRepository) ByHospital(hospitalID string) []model.Doctor {
	var out []model.Doctor
	for _, d := range r.doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

func (r *DoctorRepository) BySpecialty(specialtyID string) []model.Doctor {
	var out []model.Doctor
	for _, d := range r.doctors {
		if d.Specialty == specialtyID {
			out = append(out, d)
		}
	}
	return out
}

func (r *DoctorRepository) FilterByMinRating(minRating float64) []model.Doctor {
	var out []model.Doctor
	for _, d := range r.doctors {
		if d.Rating >= minRating {
			out = append(out, d)
		}
	}
	return out
}

// Recommended returns the top n doctors by rating, stable on ties.
func (r *DoctorRepository) Recommended(n int) []model.Doctor {
	if n <= 0 {
		n = defaultRecommendedCount
	}
	out := r.List()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Available returns doctors with at least one open consultation slot.
func (r *DoctorRepository) Available() []model.Doctor {
	var out []model.Doctor
	for _, d := range r.doctors {
		for _, slot := range d.Availability {
			if slot.Available {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func (r *DoctorRepository) List() []model.Doctor {
	out := make([]model.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out
}
