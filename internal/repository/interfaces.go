package repository

import (
	"context"
	"io"

	"github.com/medassist/medassist-api/internal/model"
)

// All repository interfaces in one file
type (
	// HospitalRepository serves read-only hospital reference data.
	HospitalRepository interface {
		GetByID(id string) (*model.Hospital, bool)
		SearchByName(name string) []model.Hospital
		FilterBySpecialty(specialtyID string) []model.Hospital
		FilterByMinRating(minRating float64) []model.Hospital
		Recommended(n int) []model.Hospital
		List() []model.Hospital
	}

	// DoctorRepository serves read-only doctor reference data.
	DoctorRepository interface {
		GetByID(id string) (*model.Doctor, bool)
		SearchByName(name string) []model.Doctor
		ByHospital(hospitalID string) []model.Doctor
		BySpecialty(specialtyID string) []model.Doctor
		FilterByMinRating(minRating float64) []model.Doctor
		Recommended(n int) []model.Doctor
		Available() []model.Doctor
		List() []model.Doctor
	}

	// SpecialtyRepository serves the specialty enumeration.
	SpecialtyRepository interface {
		GetByID(id string) (*model.Specialty, bool)
		GetByName(name string) (*model.Specialty, bool)
		List() []model.Specialty
	}

	// ArticleStore persists the article list as a single JSON array blob.
	// Load returns an empty list when the blob does not exist yet.
	ArticleStore interface {
		Load(ctx context.Context) ([]model.Article, error)
		Save(ctx context.Context, articles []model.Article) error
	}

	// FileStore stores uploaded files and returns an accessible URL.
	FileStore interface {
		Put(ctx context.Context, name string, contentType string, r io.Reader) (url string, err error)
	}
)
