// Package memory provides repository implementations over the fixed
// in-process reference dataset. The data is seeded once and never mutated,
// so reads need no synchronization.
package memory

import (
	"sort"
	"strings"

	"github.com/medassist/medassist-api/internal/model"
)

const defaultRecommendedCount = 5

// HospitalRepository implements repository.HospitalRepository.
type HospitalRepository struct {
	hospitals []model.Hospital
}

// NewHospitalRepository creates a repository over the given dataset.
func NewHospitalRepository(hospitals []model.Hospital) *HospitalRepository {
	return &HospitalRepository{hospitals: hospitals}
}

func (r *HospitalRepository) GetByID(id string) (*model.Hospital, bool) {
	for i := range r.hospitals {
		if r.hospitals[i].ID == id {
			h := r.hospitals[i]
			return &h, true
		}
	}
	return nil, false
}

// SearchByName matches case-insensitively on any substring of the name.
func (r *HospitalRepository) SearchByName(name string) []model.Hospital {
	needle := strings.ToLower(name)
	var out []model.Hospital
	for _, h := range r.hospitals {
		if strings.Contains(strings.ToLower(h.Name), needle) {
			out = append(out, h)
		}
	}
	return out
}

func (r *HospitalRepository) FilterBySpecialty(specialtyID string) []model.Hospital {
	var out []model.Hospital
	for _, h := range r.hospitals {
		for _, s := range h.Specialties {
			if s == specialtyID {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

func (r *HospitalRepository) FilterByMinRating(minRating float64) []model.Hospital {
	var out []model.Hospital
	for _, h := range r.hospitals {
		if h.Rating >= minRating {
			out = append(out, h)
		}
	}
	return out
}

// Recommended returns the top n hospitals by rating. The sort is stable so
// equally rated hospitals keep their dataset order.
func (r *HospitalRepository) Recommended(n int) []model.Hospital {
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

func (r *HospitalRepository) List() []model.Hospital {
	out := make([]model.Hospital, len(r.hospitals))
	copy(out, r.hospitals)
	return out
}
