package v1

import (
	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/shenikar/parade_tracking_system/internal/service"
)

// DTOToPositionFix преобразует входящую точку в доменную модель
func DTOToPositionFix(dto FixRequest) models.PositionFix {
	fix := models.PositionFix{
		Timestamp:  dto.Timestamp,
		RawSpeed:   dto.Speed,
		RawHeading: dto.Heading,
	}
	if dto.Latitude != nil {
		fix.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		fix.Longitude = *dto.Longitude
	}
	return fix
}

func ModelToPositionResponse(p *models.MappedPosition) *PositionResponse {
	if p == nil {
		return nil
	}
	return &PositionResponse{
		Latitude:                p.Latitude,
		Longitude:               p.Longitude,
		Timestamp:               p.Timestamp,
		RouteDistanceMeters:     p.RouteDistanceMeters,
		RouteProgressPercent:    p.RouteProgressPercent,
		EstimatedSpeedMps:       p.EstimatedSpeed,
		EstimatedHeadingDegrees: p.EstimatedHeading,
	}
}

// ModelsToPositionResponses преобразует историю позиций в слайс DTO
func ModelsToPositionResponses(history []models.MappedPosition) []*PositionResponse {
	responses := make([]*PositionResponse, len(history))
	for i := range history {
		responses[i] = ModelToPositionResponse(&history[i])
	}
	return responses
}

func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, inc := range incidents {
		responses[i] = IncidentResponse{
			ID:        inc.ID,
			Type:      string(inc.Type),
			Severity:  string(inc.Severity),
			Message:   inc.Message,
			Timestamp: inc.Timestamp,
		}
	}
	return responses
}

// ModelToBoatResponse преобразует состояние лодки в DTO для ответа
func ModelToBoatResponse(state models.BoatState) *BoatResponse {
	return &BoatResponse{
		ID:              state.ID,
		Name:            state.Name,
		Status:          string(state.Status),
		CurrentPosition: ModelToPositionResponse(state.CurrentPosition),
		Corridor: CorridorResponse{
			InCorridor:      state.Corridor.InCorridor,
			DeviationMeters: state.Corridor.DeviationMeters,
			WarningCount:    state.Corridor.WarningCount,
		},
		Incidents:    ModelsToIncidentResponses(state.Incidents),
		CreatedAt:    state.CreatedAt,
		LastUpdateAt: state.LastUpdateAt,
	}
}

func ModelsToBoatResponses(states []models.BoatState) []*BoatResponse {
	responses := make([]*BoatResponse, len(states))
	for i, st := range states {
		responses[i] = ModelToBoatResponse(st)
	}
	return responses
}

// IngestResultToResponse преобразует итог обработки точки в DTO
func IngestResultToResponse(boatID string, res *service.IngestResult) *FixResponse {
	resp := &FixResponse{
		BoatID:          boatID,
		OnRoute:         res.OnRoute,
		DeviationMeters: res.DeviationMeters,
		Incidents:       ModelsToIncidentResponses(res.Incidents),
	}
	if res.Boat.ID != "" {
		resp.Status = string(res.Boat.Status)
	}
	if res.OnRoute {
		resp.Position = ModelToPositionResponse(res.Boat.CurrentPosition)
	}
	return resp
}

func ModelsToSightingResponses(sightings []*models.Sighting) []*SightingResponse {
	responses := make([]*SightingResponse, len(sightings))
	for i, s := range sightings {
		responses[i] = &SightingResponse{
			ID:                  s.ID,
			Latitude:            s.Latitude,
			Longitude:           s.Longitude,
			OnRoute:             s.OnRoute,
			RouteDistanceMeters: s.RouteDistanceMeters,
			FixedAt:             s.FixedAt,
			ReceivedAt:          s.ReceivedAt,
		}
	}
	return responses
}

func RouteInfoToResponse(info service.RouteInfo) *RouteResponse {
	waypoints := make([]WaypointResponse, len(info.Waypoints))
	for i, wp := range info.Waypoints {
		waypoints[i] = WaypointResponse{
			Latitude:                 wp.Latitude,
			Longitude:                wp.Longitude,
			CumulativeDistanceMeters: wp.CumulativeDistanceMeters,
		}
	}
	return &RouteResponse{
		TotalDistanceMeters: info.TotalDistanceMeters,
		ToleranceMeters:     info.ToleranceMeters,
		SoftThresholdMeters: info.SoftThresholdMeters,
		Waypoints:           waypoints,
	}
}
