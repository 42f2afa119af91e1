package navigation

import (
	"fmt"
	"math"
	"net/http"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/repository"
)

const (
	earthRadiusKM = 6371

	// Synthetic route shape: share of the total distance spent on each
	// segment and the minutes-per-km pace assumed for it.
	mainRoadShare      = 0.4
	mainRoadPace       = 3
	secondaryRoadShare = 0.3
	secondaryRoadPace  = 4
	finalShare         = 0.2
	finalPace          = 3

	overallPace = 3 // minutes per km for the total estimate
)

// DefaultOrigin is used when the caller gives no starting point
// (Beijing city center).
var DefaultOrigin = model.GeoLocation{Latitude: 39.9042, Longitude: 116.4074}

// HospitalNotFoundError carries the suggestions shown to the user when the
// requested hospital cannot be resolved.
type HospitalNotFoundError struct {
	Name      string
	ByID      bool
	Suggested []string
}

func (e *HospitalNotFoundError) Error() string {
	return "Hospital not found"
}

// Message is the user-facing description of the failure.
func (e *HospitalNotFoundError) Message() string {
	if e.ByID {
		return fmt.Sprintf("未找到ID为\"%s\"的医院，请检查医院ID是否正确，或尝试搜索其他医院。", e.Name)
	}
	return fmt.Sprintf("未找到医院\"%s\"，请检查医院名称是否正确，或尝试搜索其他医院。", e.Name)
}

// StatusCode lets the map handler report the miss as a 404.
func (e *HospitalNotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// Result pairs the synthesized route with the resolved hospital.
type Result struct {
	Navigation model.NavigationInfo `json:"navigation"`
	Hospital   model.Hospital       `json:"hospital"`
}

// Service synthesizes routes to hospitals. No real routing engine is
// involved; the step list is deterministic from the great-circle distance.
type Service struct {
	hospitals repository.HospitalRepository
}

func NewService(hospitals repository.HospitalRepository) *Service {
	return &Service{hospitals: hospitals}
}

// Navigate resolves the destination hospital by id or name and builds the
// route from origin (or DefaultOrigin) to it.
func (s *Service) Navigate(req model.NavigationRequest) (*Result, error) {
	var hospital *model.Hospital
	if req.HospitalID != "" {
		if h, ok := s.hospitals.GetByID(req.HospitalID); ok {
			hospital = h
		}
	} else if name := req.EffectiveHospitalName(); name != "" {
		if matches := s.hospitals.SearchByName(name); len(matches) > 0 {
			hospital = &matches[0]
		}
	}

	if hospital == nil {
		name := req.EffectiveHospitalName()
		byID := false
		if name == "" {
			name = req.HospitalID
			byID = true
		}
		var suggested []string
		for _, h := range s.hospitals.Recommended(3) {
			suggested = append(suggested, h.Name)
		}
		return nil, &HospitalNotFoundError{Name: name, ByID: byID, Suggested: suggested}
	}

	origin := DefaultOrigin
	if req.Origin != nil {
		origin = *req.Origin
	}

	return &Result{
		Navigation: Route(origin, hospital.Location),
		Hospital:   *hospital,
	}, nil
}

// Route builds the synthetic seven-step route between two points.
func Route(origin, destination model.GeoLocation) model.NavigationInfo {
	distance := Distance(origin, destination)
	rounded := math.Round(distance*10) / 10

	return model.NavigationInfo{
		Origin:      origin,
		Destination: destination,
		Distance:    fmt.Sprintf("%.1f公里", rounded),
		Duration:    fmt.Sprintf("%d分钟", int(math.Ceil(distance*overallPace))),
		Steps:       steps(distance),
	}
}

// Distance computes the great-circle distance in kilometers using the
// haversine formula.
func Distance(a, b model.GeoLocation) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKM * c
}

func steps(distance float64) []model.NavigationStep {
	segment := func(instruction string, km float64, pace int) model.NavigationStep {
		return model.NavigationStep{
			Instruction: instruction,
			Distance:    fmt.Sprintf("%.1f公里", km),
			Duration:    fmt.Sprintf("%d分钟", int(math.Ceil(km*float64(pace)))),
		}
	}

	return []model.NavigationStep{
		{Instruction: "从当前位置出发", Distance: "0公里", Duration: "0分钟"},
		segment("沿主干道直行", distance*mainRoadShare, mainRoadPace),
		{Instruction: "在下一个路口右转", Distance: "0.1公里", Duration: "1分钟"},
		segment("沿次干道直行", distance*secondaryRoadShare, secondaryRoadPace),
		{Instruction: "在十字路口左转", Distance: "0.1公里", Duration: "1分钟"},
		segment("继续直行", distance*finalShare, finalPace),
		{Instruction: "到达目的地", Distance: "0公里", Duration: "0分钟"},
	}
}
