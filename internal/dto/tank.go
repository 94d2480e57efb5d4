package dto

import (
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// CreateTankRequest registers a tank at a station. Capacity is liters.
type CreateTankRequest struct {
	Name      string `json:"name" binding:"required"`
	ProductID string `json:"productID" binding:"required"`
	Capacity  int64  `json:"capacity" binding:"required,gt=0"`
}

// TankResponse is a tank as returned to clients.
type TankResponse struct {
	TankID       string `json:"tankID"`
	GasStationID string `json:"gasStationID"`
	ProductID    string `json:"productID"`
	Name         string `json:"name"`
	Capacity     int64  `json:"capacity"`
	CurrentStock int64  `json:"currentStock"`
}

// ToTankResponse converts a domain tank.
func ToTankResponse(t *domain.Tank) TankResponse {
	return TankResponse{
		TankID:       t.TankID,
		GasStationID: t.GasStationID,
		ProductID:    t.ProductID,
		Name:         t.Name,
		Capacity:     t.Capacity,
		CurrentStock: t.CurrentStock,
	}
}

// ToTankResponses converts a slice of tanks.
func ToTankResponses(tanks []domain.Tank) []TankResponse {
	out := make([]TankResponse, len(tanks))
	for i := range tanks {
		out[i] = ToTankResponse(&tanks[i])
	}
	return out
}
