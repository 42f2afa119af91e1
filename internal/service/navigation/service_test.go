package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository/memory"
)

func newService() *Service {
	return NewService(memory.NewHospitalRepository(memory.SeedHospitals()))
}

func TestDistanceHaversine(t *testing.T) {
	// Beijing to Shanghai, roughly 1070km.
	beijing := model.GeoLocation{Latitude: 39.9042, Longitude: 116.4074}
	shanghai := model.GeoLocation{Latitude: 31.2304, Longitude: 121.4737}

	d := Distance(beijing, shanghai)
	assert.InDelta(t, 1067, d, 15)

	assert.Zero(t, Distance(beijing, beijing))
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := []struct {
		name string
		a, b model.GeoLocation
	}{
		{"beijing-shanghai", model.GeoLocation{Latitude: 39.9042, Longitude: 116.4074}, model.GeoLocation{Latitude: 31.2304, Longitude: 121.4737}},
		{"close points", model.GeoLocation{Latitude: 39.9042, Longitude: 116.4074}, model.GeoLocation{Latitude: 39.9100, Longitude: 116.4200}},
		{"across equator", model.GeoLocation{Latitude: 1.3521, Longitude: 103.8198}, model.GeoLocation{Latitude: -6.2088, Longitude: 106.8456}},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestRouteShape(t *testing.T) {
	origin := model.GeoLocation{Latitude: 39.9042, Longitude: 116.4074}
	dest := model.GeoLocation{Latitude: 39.95, Longitude: 116.45}

	info := Route(origin, dest)
	assert.Equal(t, origin, info.Origin)
	assert.Equal(t, dest, info.Destination)
	assert.Len(t, info.Steps, 7)
	assert.Equal(t, "从当前位置出发", info.Steps[0].Instruction)
	assert.Equal(t, "在下一个路口右转", info.Steps[2].Instruction)
	assert.Equal(t, "0.1公里", info.Steps[2].Distance)
	assert.Equal(t, "在十字路口左转", info.Steps[4].Instruction)
	assert.Equal(t, "到达目的地", info.Steps[6].Instruction)
	assert.Regexp(t, `^\d+(\.\d)?公里$`, info.Distance)
	assert.Regexp(t, `^\d+分钟$`, info.Duration)
}

func TestNavigateByName(t *testing.T) {
	s := newService()

	result, err := s.Navigate(model.NavigationRequest{HospitalNameEntity: "协和"})
	assert.NoError(t, err)
	assert.Contains(t, result.Hospital.Name, "协和")
	assert.Equal(t, DefaultOrigin, result.Navigation.Origin)
}

func TestNavigateWithExplicitOrigin(t *testing.T) {
	s := newService()
	origin := &model.GeoLocation{Latitude: 40.0, Longitude: 116.5}

	result, err := s.Navigate(model.NavigationRequest{HospitalID: "h001", Origin: origin})
	assert.NoError(t, err)
	assert.Equal(t, *origin, result.Navigation.Origin)
}

func TestNavigateUnknownHospital(t *testing.T) {
	s := newService()

	_, err := s.Navigate(model.NavigationRequest{HospitalName: "不存在的医院"})
	notFound, ok := err.(*HospitalNotFoundError)
	assert.True(t, ok)
	assert.Equal(t, "Hospital not found", notFound.Error())
	assert.Contains(t, notFound.Message(), "不存在的医院")
	assert.Len(t, notFound.Suggested, 3)
}

func TestNavigateUnknownHospitalID(t *testing.T) {
	s := newService()

	_, err := s.Navigate(model.NavigationRequest{HospitalID: "h999"})
	notFound, ok := err.(*HospitalNotFoundError)
	assert.True(t, ok)
	assert.Contains(t, notFound.Message(), "ID为\"h999\"")
}
