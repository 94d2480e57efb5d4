package dto

import "github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"

// CreateGasStationRequest registers a new station.
type CreateGasStationRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Address string `json:"address"`
}

// GasStationResponse is a station as returned to clients.
type GasStationResponse struct {
	GasStationID string               `json:"gasStationID"`
	Name         string               `json:"name"`
	Code         string               `json:"code"`
	Address      string               `json:"address,omitempty"`
	Status       domain.StationStatus `json:"status"`
}

// ToGasStationResponse converts a domain station.
func ToGasStationResponse(s *domain.GasStation) GasStationResponse {
	return GasStationResponse{
		GasStationID: s.GasStationID,
		Name:         s.Name,
		Code:         s.Code,
		Address:      s.Address,
		Status:       s.Status,
	}
}

// ToGasStationResponses converts a slice of stations.
func ToGasStationResponses(stations []domain.GasStation) []GasStationResponse {
	out := make([]GasStationResponse, len(stations))
	for i := range stations {
		out[i] = ToGasStationResponse(&stations[i])
	}
	return out
}
