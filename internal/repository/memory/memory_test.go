package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/model"
)

func TestHospitalSearchByName(t *testing.T) {
	repo := NewHospitalRepository(SeedHospitals())

	matches := repo.SearchByName("协和")
	assert.NotEmpty(t, matches)
	for _, h := range matches {
		assert.Contains(t, h.Name, "协和")
	}

	assert.Empty(t, repo.SearchByName("不存在的医院"))
}

func TestHospitalRecommendedSortedByRating(t *testing.T) {
	repo := NewHospitalRepository(SeedHospitals())

	top := repo.Recommended(3)
	assert.Len(t, top, 3)
	assert.GreaterOrEqual(t, top[0].Rating, top[1].Rating)
	assert.GreaterOrEqual(t, top[1].Rating, top[2].Rating)

	// Zero count falls back to the default of five.
	assert.Len(t, repo.Recommended(0), 5)
}

func TestHospitalRecommendedGrowsByExtension(t *testing.T) {
	repo := NewHospitalRepository(SeedHospitals())

	// Asking for one more hospital only appends; the existing order holds.
	all := repo.Recommended(len(SeedHospitals()))
	for n := 1; n < len(all); n++ {
		assert.Equal(t, repo.Recommended(n+1)[:n], repo.Recommended(n))
	}
}

func TestHospitalFilterByMinRatingTightens(t *testing.T) {
	repo := NewHospitalRepository(SeedHospitals())

	ids := func(hospitals []model.Hospital) []string {
		out := make([]string, 0, len(hospitals))
		for _, h := range hospitals {
			out = append(out, h.ID)
		}
		return out
	}

	thresholds := []float64{0, 4.0, 4.5, 4.8, 5.0}
	for i := 1; i < len(thresholds); i++ {
		loose := ids(repo.FilterByMinRating(thresholds[i-1]))
		tight := repo.FilterByMinRating(thresholds[i])
		// A stricter threshold never admits a hospital the looser one rejected.
		for _, h := range tight {
			assert.Contains(t, loose, h.ID)
			assert.GreaterOrEqual(t, h.Rating, thresholds[i])
		}
	}
}

func TestHospitalFilterBySpecialty(t *testing.T) {
	repo := NewHospitalRepository(SeedHospitals())

	for _, h := range repo.FilterBySpecialty("cardiology") {
		assert.Contains(t, h.Specialties, "cardiology")
	}
}

func TestDoctorSearchByNameExactBeforeFuzzy(t *testing.T) {
	repo := NewDoctorRepository([]model.Doctor{
		{ID: "d1", Name: "王涛", Title: "主任医师"},
		{ID: "d2", Name: "王涛涛", Title: "副主任医师"},
	})

	// Exact match wins even though a substring match also exists.
	matches := repo.SearchByName("王涛")
	assert.Len(t, matches, 1)
	assert.Equal(t, "d1", matches[0].ID)
}

func TestDoctorSearchByNameSubstring(t *testing.T) {
	repo := NewDoctorRepository(SeedDoctors())

	matches := repo.SearchByName("王")
	assert.NotEmpty(t, matches)
	for _, d := range matches {
		assert.Contains(t, d.Name, "王")
	}
}

func TestDoctorSearchByNameQueryContainsName(t *testing.T) {
	repo := NewDoctorRepository([]model.Doctor{
		{ID: "d1", Name: "李明", Title: "主任医师"},
	})

	// The whole query mentions the doctor, typical of classifier output.
	matches := repo.SearchByName("我想预约李明医生")
	assert.Len(t, matches, 1)
	assert.Equal(t, "d1", matches[0].ID)
}

func TestDoctorAvailable(t *testing.T) {
	repo := NewDoctorRepository([]model.Doctor{
		{ID: "d1", Availability: []model.TimeSlot{{Day: "周一", Available: true}}},
		{ID: "d2", Availability: []model.TimeSlot{{Day: "周一", Available: false}}},
	})

	available := repo.Available()
	assert.Len(t, available, 1)
	assert.Equal(t, "d1", available[0].ID)
}

func TestSpecialtyGetByName(t *testing.T) {
	repo := NewSpecialtyRepository(SeedSpecialties())

	sp, ok := repo.GetByName("心脏科")
	assert.True(t, ok)
	assert.Equal(t, "cardiology", sp.ID)

	_, ok = repo.GetByName("不存在")
	assert.False(t, ok)
}
